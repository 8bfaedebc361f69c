// Package document reads and writes environment documents in YAML.
package document

import (
	"bytes"

	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// indent matches the two-space layout conda writes.
const indent = 2

// Decode parses an environment export. Empty input decodes to an empty environment.
func Decode(data []byte) (*domain.Environment, error) {
	var env domain.Environment
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExportParseFailed.Error())
	}
	return &env, nil
}

// Encode renders the descriptor of env: channels first, then dependencies.
func Encode(env *domain.Environment) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)

	if err := enc.Encode(env.Descriptor()); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExportEncodeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExportEncodeFailed.Error())
	}
	return buf.Bytes(), nil
}
