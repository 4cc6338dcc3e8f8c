package params

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rackworks/rackplan/pkg/errors"
)

// Load reads a parameter file in TOML format.
// The loaded aggregate is normalized: tier_count and the [[tier]] blocks are
// reconciled before it is returned.
func Load(path string) (*Aggregate, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "parameter file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML document into an aggregate and normalizes it.
func Parse(data []byte) (*Aggregate, error) {
	var a Aggregate
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode parameters")
	}
	a.Normalize()
	return &a, nil
}

// Marshal encodes the aggregate as a TOML document.
// The field order is fixed by the struct layout, so equal aggregates encode
// to identical bytes — the pipeline relies on this for cache keys.
func Marshal(a *Aggregate) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(a); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode parameters")
	}
	return buf.Bytes(), nil
}

// Save writes the aggregate to a TOML file with 0644 permissions.
func Save(a *Aggregate, path string) error {
	data, err := Marshal(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
