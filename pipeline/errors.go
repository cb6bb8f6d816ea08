// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrUnknownFormat indicates a file format other than TOML or YAML.
	ErrUnknownFormat = errors.New("pipeline: unknown config format")

	// ErrUnknownKind indicates a stage kind outside the supported set.
	ErrUnknownKind = errors.New("pipeline: unknown stage kind")

	// ErrBadField indicates a missing, malformed or out-of-domain stage field,
	// or a key the schema does not define.
	ErrBadField = errors.New("pipeline: bad stage field")
)
