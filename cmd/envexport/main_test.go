package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/envexport/internal/app"
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fakes struct {
	exporter *mocks.MockEnvironmentExporter
	lister   *mocks.MockPackageLister
	runtime  *mocks.MockRuntimeInspector
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newFakes(t *testing.T) *fakes {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fakes{
		exporter: mocks.NewMockEnvironmentExporter(ctrl),
		lister:   mocks.NewMockPackageLister(ctrl),
		runtime:  mocks.NewMockRuntimeInspector(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	application := app.New(f.exporter, f.lister, f.runtime, mocks.NewMockOutputWriter(ctrl), f.logger)
	f.provider = func(context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: f.logger}, nil
	}
	return f
}

// TestRun_Success verifies that the document is written to stdout and run returns 0.
func TestRun_Success(t *testing.T) {
	f := newFakes(t)

	f.exporter.EXPECT().Export(gomock.Any(), domain.ExportOptions{}).Return(&domain.Environment{
		Channels:     []string{"defaults"},
		Dependencies: []domain.Entry{domain.PlainEntry("python=3.12.1"), domain.PlainEntry("zlib=1.3")},
	}, nil)
	f.exporter.EXPECT().Export(gomock.Any(), domain.ExportOptions{HistoryOnly: true}).Return(&domain.Environment{
		Dependencies: []domain.Entry{domain.PlainEntry("python=3.12")},
	}, nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--no-local"}, stdout, stderr, f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "channels:\n  - defaults\ndependencies:\n  - python=3.12.1\n", stdout.String())
}

// TestRun_Version verifies that the version command needs no external process.
func TestRun_Version(t *testing.T) {
	f := newFakes(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "envexport version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that a failed export is logged and run returns 1.
func TestRun_ExecutionError(t *testing.T) {
	f := newFakes(t)

	f.exporter.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, errors.New("conda missing"))
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{}, stdout, new(bytes.Buffer), f.provider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
}
