package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/engine/reconcile"
)

func TestNewHistorySet(t *testing.T) {
	history := &domain.Environment{Dependencies: []domain.Entry{
		domain.PlainEntry("numpy"),
		domain.PlainEntry("python=3.11"),
		domain.PipEntry(&domain.PipGroup{Specs: []domain.Spec{"requests==2.1"}}),
	}}

	set := reconcile.NewHistorySet(history)

	assert.True(t, set.Contains("numpy"))
	assert.True(t, set.Contains("python"))
	assert.False(t, set.Contains("requests"))
	assert.Len(t, set, 2)

	assert.Empty(t, reconcile.NewHistorySet(nil))
}

func TestIsHistoryDep(t *testing.T) {
	set := reconcile.HistorySet{"numpy": {}, "pip": {}}

	tests := []struct {
		name  string
		entry domain.Entry
		want  bool
	}{
		{name: "requested with version", entry: domain.PlainEntry("numpy=1.2"), want: true},
		{name: "requested bare", entry: domain.PlainEntry("numpy"), want: true},
		{name: "requested with build", entry: domain.PlainEntry("numpy=1.2=py_0"), want: true},
		{name: "not requested", entry: domain.PlainEntry("scipy=1.0"), want: false},
		{name: "prefix is not a match", entry: domain.PlainEntry("numpy-base=1.2"), want: false},
		{
			name:  "pip group",
			entry: domain.PipEntry(&domain.PipGroup{Specs: []domain.Spec{"numpy==1.2"}}),
			want:  false,
		},
		{name: "other mapping", entry: domain.Entry{Kind: domain.KindOther}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := reconcile.IsHistoryDep(tt.entry, set)
			second := reconcile.IsHistoryDep(tt.entry, set)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestFindPipGroup(t *testing.T) {
	first := &domain.PipGroup{Specs: []domain.Spec{"a==1"}}
	second := &domain.PipGroup{Specs: []domain.Spec{"b==2"}}

	t.Run("first match wins", func(t *testing.T) {
		deps := []domain.Entry{domain.PlainEntry("numpy"), domain.PipEntry(first), domain.PipEntry(second)}
		assert.Same(t, first, reconcile.FindPipGroup(deps))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, reconcile.FindPipGroup([]domain.Entry{domain.PlainEntry("numpy")}))
		assert.Nil(t, reconcile.FindPipGroup(nil))
	})

	t.Run("empty group", func(t *testing.T) {
		got := reconcile.FindPipGroup([]domain.Entry{{Kind: domain.KindPip}})
		assert.NotNil(t, got)
		assert.Empty(t, got.Specs)
	})
}
