package shell

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name      string
		sysEnv    []string
		overrides []string
		want      []string
	}{
		{
			name:   "system only",
			sysEnv: []string{"HOME=/home/user", "PATH=/usr/bin"},
			want:   []string{"HOME=/home/user", "PATH=/usr/bin"},
		},
		{
			name:      "path is prepended",
			sysEnv:    []string{"PATH=/usr/bin"},
			overrides: []string{"PATH=/opt/env/bin"},
			want:      []string{"PATH=/opt/env/bin" + sep + "/usr/bin"},
		},
		{
			name:      "path without system path",
			sysEnv:    []string{"HOME=/home/user"},
			overrides: []string{"PATH=/opt/env/bin"},
			want:      []string{"HOME=/home/user", "PATH=/opt/env/bin"},
		},
		{
			name:      "other keys are replaced",
			sysEnv:    []string{"CONDA_PREFIX=/opt/base", "PATH=/usr/bin"},
			overrides: []string{"CONDA_PREFIX=/opt/env", "malformed"},
			want:      []string{"CONDA_PREFIX=/opt/env", "PATH=/usr/bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveEnvironment(tt.sysEnv, tt.overrides))
		})
	}
}

func TestLookPath_NoPath(t *testing.T) {
	_, err := lookPath("sh", []string{"HOME=/home/user"})
	assert.Error(t, err)
}

func TestLogWriter_TailIsBounded(t *testing.T) {
	w := &logWriter{}
	for i := 0; i < stderrTailLines+5; i++ {
		_, _ = w.Write([]byte("line\n"))
	}
	_, _ = w.Write([]byte("last"))
	_ = w.Close()

	assert.Len(t, w.tail, stderrTailLines)
	assert.Equal(t, "last", w.tail[len(w.tail)-1])
}
