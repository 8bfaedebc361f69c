package python_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envexport/internal/adapters/python"
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInspector_PythonVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockCommandRunner(ctrl)

	mockRunner.EXPECT().
		Run(gomock.Any(), domain.Command{
			Name: "python",
			Args: []string{"-c", "import sys; print(sys.version.split()[0])"},
			Env:  []string{"PATH=/opt/envs/a/bin"},
		}).
		Return([]byte("3.11.4\n"), nil)

	version, err := python.NewInspector(mockRunner, "").
		PythonVersion(context.Background(), domain.Target{Prefix: "/opt/envs/a"})
	require.NoError(t, err)
	assert.Equal(t, "3.11.4", version)
}

func TestInspector_PythonVersion_Errors(t *testing.T) {
	tests := []struct {
		name string
		out  []byte
		err  error
	}{
		{name: "command failure", err: errors.New("exit status 127")},
		{name: "empty output", out: []byte("\n")},
		{name: "unexpected output", out: []byte("Python 3.11.4\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRunner := mocks.NewMockCommandRunner(ctrl)
			mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(tt.out, tt.err)

			_, err := python.NewInspector(mockRunner, "python3").PythonVersion(context.Background(), domain.Target{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrRuntimeVersionFailed.Error())
		})
	}
}
