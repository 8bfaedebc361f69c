// Package shell runs external commands for the exporters.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// stderrTailLines is the number of trailing stderr lines attached to failures.
const stderrTailLines = 20

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and returns its stdout.
// The environment is the system environment with cmd.Env applied on top; a PATH
// override is prepended to the system PATH so the target's executables win.
// stderr is forwarded to the logger line by line.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	if cmd.Name == "" {
		return nil, zerr.With(domain.ErrCommandNotFound, "command", "")
	}

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Name
	if !strings.ContainsRune(cmd.Name, filepath.Separator) {
		lp, err := lookPath(cmd.Name, cmdEnv)
		if err != nil {
			return nil, zerr.With(domain.ErrCommandNotFound, "command", cmd.Name)
		}
		executable = lp
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // command comes from configured tools

	// Keep the name as invoked; exec sets Args[0] to the resolved path.
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Env = cmdEnv

	var stdout bytes.Buffer
	stderr := &logWriter{logger: r.logger}
	c.Stdout = &stdout
	c.Stderr = stderr

	err := c.Run()
	_ = stderr.Close()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		runErr := zerr.Wrap(err, domain.ErrCommandFailed.Error())
		runErr = zerr.With(runErr, "command", cmd.String())
		runErr = zerr.With(runErr, "exit_code", exitCode)
		return nil, zerr.With(runErr, "stderr", stderr.Tail())
	}

	return stdout.Bytes(), nil
}

// logWriter forwards complete lines to the logger and remembers the last few.
type logWriter struct {
	logger ports.Logger
	buf    []byte
	tail   []string
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

// Tail returns the remembered lines joined with newlines.
func (w *logWriter) Tail() string {
	return strings.Join(w.tail, "\n")
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}

	w.tail = append(w.tail, msg)
	if len(w.tail) > stderrTailLines {
		w.tail = w.tail[len(w.tail)-stderrTailLines:]
	}

	if w.logger != nil {
		w.logger.Warn(msg)
	}
}

// resolveEnvironment applies overrides on top of the system environment.
// A PATH override is prepended to the system PATH.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv))
	order := make([]string, 0, len(sysEnv))
	set := func(k, v string) {
		if _, ok := envMap[k]; !ok {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range overrides {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
