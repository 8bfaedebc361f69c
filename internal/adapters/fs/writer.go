// Package fs writes rendered documents to disk.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// filePerm is the mode of newly created output files.
const filePerm = 0o644

// Writer implements ports.OutputWriter. Files whose content fingerprint already
// matches are left untouched.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes data to path unless the file already holds the same content.
func (w *Writer) WriteFile(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if Fingerprint(existing) == Fingerprint(data) {
			return false, nil
		}
	case !errors.Is(err, iofs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputReadFailed.Error()), "path", path)
	}

	// Write to a sibling temp file and rename it into place.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}

	return true, nil
}

// Fingerprint returns the XXHash of data.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
