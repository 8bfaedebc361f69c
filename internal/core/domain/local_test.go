package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/envexport/internal/core/domain"
)

func collect(p *domain.LocalPackages) [][2]string {
	var out [][2]string
	for name, version := range p.All() {
		out = append(out, [2]string{name, version})
	}
	return out
}

func TestParseLocalPackages(t *testing.T) {
	pkgs := domain.ParseLocalPackages([]string{
		"numpy==1.3",
		"",
		"flask==2.0\r",
		"numpy==1.4",
		"   ",
		"editable",
	})

	assert.Equal(t, 3, pkgs.Len())
	assert.Equal(t, [][2]string{
		{"numpy", "1.4"},
		{"flask", "2.0"},
		{"editable", "editable"},
	}, collect(pkgs))

	v, ok := pkgs.Get("flask")
	assert.True(t, ok)
	assert.Equal(t, "2.0", v)

	_, ok = pkgs.Get("scipy")
	assert.False(t, ok)
}

func TestLocalPackages_Nil(t *testing.T) {
	var pkgs *domain.LocalPackages

	assert.Equal(t, 0, pkgs.Len())
	_, ok := pkgs.Get("numpy")
	assert.False(t, ok)
	assert.Empty(t, collect(pkgs))
}

func TestLocalPackages_AllStopsEarly(t *testing.T) {
	pkgs := domain.ParseLocalPackages([]string{"a==1", "b==2", "c==3"})

	var seen []string
	for name := range pkgs.All() {
		seen = append(seen, name)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}
