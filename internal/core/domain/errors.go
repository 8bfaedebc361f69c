package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandNotFound is returned when an external command cannot be located.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrHistoryWithBuilds is returned when a history-only export is requested together
	// with build strings. Conda cannot report builds for history entries.
	ErrHistoryWithBuilds = zerr.New("cannot include build versions with \"from history\" mode")

	// ErrConflictingTarget is returned when both an environment name and prefix are given.
	ErrConflictingTarget = zerr.New("environment name and prefix are mutually exclusive")

	// ErrExportParseFailed is returned when an environment export cannot be decoded.
	ErrExportParseFailed = zerr.New("failed to parse environment export")

	// ErrExportEncodeFailed is returned when the reconciled environment cannot be encoded.
	ErrExportEncodeFailed = zerr.New("failed to encode environment")

	// ErrUnsupportedEntry is returned for dependency entries that are neither strings
	// nor mappings.
	ErrUnsupportedEntry = zerr.New("unsupported dependency entry")

	// ErrRuntimeVersionFailed is returned when the interpreter version cannot be read.
	ErrRuntimeVersionFailed = zerr.New("failed to determine python version")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOutputWriteFailed is returned when the output file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrOutputReadFailed is returned when an existing output file cannot be read.
	ErrOutputReadFailed = zerr.New("failed to read output file")
)
