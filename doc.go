// Package jointaug applies one random spatial augmentation to an image and
// all of its paired annotations at once, so masks, depth maps and auxiliary
// channels stay pixel-aligned with the image they describe.
//
// 🚀 What is jointaug?
//
//	A small pipeline library built around three primitives:
//		• Merge: concatenate an image group into one channel stack
//		• random transforms: crop, resized crop and flips, drawn once per stack
//		• Split: cut the stack back into its logical parts
//	plus a Compose that chains them as Uniform, Positional or NoOp stages.
//
// ✨ Why jointaug?
//
//   - Identical geometry: one random draw per transform covers every channel
//   - Explicit randomness: every Apply takes a *rand.Rand, nil = global stream
//   - Declarative pipelines: TOML or YAML files build the same Compose
//   - Errors, not panics: sentinel errors matched with errors.Is
//
// Packages:
//
//	ndarray/    - dense N-d array: dtype tag, Python-style ranges, Concat, SliceAxis
//	functional/ - stateless primitives: Crop, CenterCrop, Resize, ResizedCrop, flips
//	transforms/ - Value, Transform, crop family, flips, Merge, Split, Compose, streams
//	imageconv/  - image.Image ↔ ndarray conversion
//	pipeline/   - TOML/YAML pipeline files → transforms.Compose
//
// Quick ASCII example:
//
//	img (H,W,3) ─┐                        ┌─ img' (h,w,3)
//	             ├─ Merge ─ RRC ─ HFlip ─ Split
//	mask (H,W,1) ┘                        └─ mask' (h,w,1)
//
//	go install github.com/katalvlaran/jointaug/cmd/jointaug@latest
package jointaug
