package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envexport/internal/core/domain"
)

func TestExportOptions_Validate(t *testing.T) {
	t.Run("history with builds", func(t *testing.T) {
		err := domain.ExportOptions{HistoryOnly: true, IncludeBuilds: true}.Validate()
		require.ErrorIs(t, err, domain.ErrHistoryWithBuilds)
	})

	t.Run("name and prefix", func(t *testing.T) {
		opts := domain.ExportOptions{Target: domain.Target{Name: "dev", Prefix: "/opt/envs/dev"}}
		err := opts.Validate()
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrConflictingTarget.Error())
	})

	t.Run("valid combinations", func(t *testing.T) {
		require.NoError(t, domain.ExportOptions{}.Validate())
		require.NoError(t, domain.ExportOptions{HistoryOnly: true}.Validate())
		require.NoError(t, domain.ExportOptions{IncludeBuilds: true}.Validate())
		require.NoError(t, domain.ExportOptions{Target: domain.Target{Prefix: "/opt/env"}}.Validate())
	})
}

func TestTarget_Env(t *testing.T) {
	assert.Nil(t, domain.Target{}.Env())
	assert.Nil(t, domain.Target{Name: "dev"}.Env())

	prefix := filepath.Join("opt", "envs", "dev")
	assert.Equal(t,
		[]string{"PATH=" + filepath.Join(prefix, "bin")},
		domain.Target{Prefix: prefix}.Env(),
	)
}

func TestCommand_String(t *testing.T) {
	cmd := domain.Command{Name: "conda", Args: []string{"env", "export", "--no-builds"}}
	assert.Equal(t, "conda env export --no-builds", cmd.String())
}
