// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension
// (.toml, .yaml, .yml; case-insensitive).
// Errors: ErrUnknownFormat.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Config is a whole pipeline file.
type Config struct {
	// Seed is the default stream seed for tools that run the pipeline.
	Seed   uint64      `toml:"seed" yaml:"seed"`
	Stages []StageSpec `toml:"stage" yaml:"stage"`
}

// StageSpec describes one stage. Only the fields meaningful for Kind are read;
// pointer fields distinguish "unset" from zero.
type StageSpec struct {
	Kind          string      `toml:"kind" yaml:"kind"`
	Count         int         `toml:"count,omitempty" yaml:"count,omitempty"`
	Size          []int       `toml:"size,omitempty" yaml:"size,omitempty"`
	Scale         []float64   `toml:"scale,omitempty" yaml:"scale,omitempty"`
	Ratio         []float64   `toml:"ratio,omitempty" yaml:"ratio,omitempty"`
	Interpolation string      `toml:"interpolation,omitempty" yaml:"interpolation,omitempty"`
	Ranges        [][]int     `toml:"ranges,omitempty" yaml:"ranges,omitempty"`
	P             *float64    `toml:"p,omitempty" yaml:"p,omitempty"`
	Axis          *int        `toml:"axis,omitempty" yaml:"axis,omitempty"`
	Each          []StageSpec `toml:"each,omitempty" yaml:"each,omitempty"`
}

// Parse decodes data in the given format.
//
// Errors:
//   - ErrUnknownFormat for a format other than FormatTOML/FormatYAML.
//   - ErrBadField for keys the schema does not define (and, for YAML, values
//     of the wrong type).
//   - decoder errors for malformed documents.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("pipeline: parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("pipeline: unknown key %q: %w", undecoded[0].String(), ErrBadField)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) {
				return nil, fmt.Errorf("pipeline: parse yaml: %w: %w", ErrBadField, err)
			}
			return nil, fmt.Errorf("pipeline: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("pipeline: format %q: %w", format, ErrUnknownFormat)
	}

	return &cfg, nil
}

// Load reads path and parses it with the format implied by its extension.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", path, err)
	}

	return Parse(data, format)
}
