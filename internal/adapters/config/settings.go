// Package config resolves the locations of the external tools.
package config

import (
	"errors"

	"github.com/spf13/viper"
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EnvPrefix prefixes the environment variables read by Load.
	EnvPrefix = "ENVEXPORT"
	// FileName is the settings file looked up in the working and home directories.
	FileName = ".envexport"
)

// Settings holds the executables used to talk to the package managers.
type Settings struct {
	Conda  string `mapstructure:"conda"`
	Pip    string `mapstructure:"pip"`
	Python string `mapstructure:"python"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{Conda: "conda", Pip: "pip", Python: "python"}
}

// Load reads settings from, in order of precedence, ENVEXPORT_* variables
// (CONDA_EXE also names conda), a .envexport.yaml file in the given directories,
// and the defaults.
func Load(searchPaths ...string) (*Settings, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("conda", defaults.Conda)
	v.SetDefault("pip", defaults.Pip)
	v.SetDefault("python", defaults.Python)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Activated conda shells export CONDA_EXE; an explicit ENVEXPORT_CONDA still wins.
	_ = v.BindEnv("conda", EnvPrefix+"_CONDA", "CONDA_EXE")

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	if len(searchPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", FileName)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &s, nil
}
