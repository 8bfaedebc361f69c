package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envexport/internal/adapters/config"
	"go.trai.ch/envexport/internal/core/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ENVEXPORT_CONDA", "ENVEXPORT_PIP", "ENVEXPORT_PYTHON", "CONDA_EXE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := "conda: /opt/miniforge/bin/mamba\npython: python3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envexport.yaml"), []byte(content), 0o600))

	s, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/miniforge/bin/mamba", s.Conda)
	assert.Equal(t, "pip", s.Pip)
	assert.Equal(t, "python3", s.Python)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envexport.yaml"), []byte("pip: pip3\n"), 0o600))
	t.Setenv("ENVEXPORT_PIP", "/usr/local/bin/pip")
	t.Setenv("ENVEXPORT_PYTHON", "/usr/local/bin/python3")

	s, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/pip", s.Pip)
	assert.Equal(t, "/usr/local/bin/python3", s.Python)
}

func TestLoad_CondaExe(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONDA_EXE", "/opt/conda/bin/conda")

	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/conda/bin/conda", s.Conda)

	t.Setenv("ENVEXPORT_CONDA", "micromamba")
	s, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "micromamba", s.Conda)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envexport.yaml"), []byte("conda: [unclosed\n"), 0o600))

	_, err := config.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}
