// SPDX-License-Identifier: MIT

// Package pipeline builds transforms.Compose pipelines from declarative
// TOML or YAML files.
//
// A file is a list of stages, each naming a kind and its fields:
//
//	seed = 7
//
//	[[stage]]
//	kind = "merge"
//
//	[[stage]]
//	kind  = "random_resized_crop"
//	size  = [64, 64]
//	scale = [0.5, 1.0]
//
//	[[stage]]
//	kind = "hflip"
//	p    = 0.5
//
//	[[stage]]
//	kind   = "split"
//	ranges = [[0, 3], [3, 4]]
//
// Kinds: merge, split, center_crop, resize, random_crop,
// random_resized_crop, hflip, vflip, noop, positional. A positional stage
// lists one sub-stage per group element under "each"; "noop" inside "each"
// passes its element through.
//
// Unknown keys are rejected, so a typo never silently falls back to a default.
package pipeline
