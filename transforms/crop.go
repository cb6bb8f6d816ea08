// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/ndarray"
)

// CropParams is an axis-aligned rectangle: Top/Height address the height
// axis (0), Left/Width the width axis (1). Randomized crops produce a fresh
// value per call; it is never stored.
type CropParams struct {
	Top, Left     int
	Height, Width int
}

// String renders "(top,left) h×w".
func (p CropParams) String() string {
	return fmt.Sprintf("(%d,%d) %dx%d", p.Top, p.Left, p.Height, p.Width)
}

// spatial returns (H, W) of an image or ErrInvalidInput for rank < 2.
func spatial(op string, a *ndarray.Array) (int, int, error) {
	if err := ndarray.ValidateMinRank(a, 2); err != nil {
		return 0, 0, fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
	}
	s := a.Shape()
	return s[0], s[1], nil
}

// ---------- CenterCrop ----------

// CenterCrop crops a fixed Height×Width window from the centre of the image.
type CenterCrop struct {
	Height, Width int
}

// NewCenterCrop returns a square centre crop of side size.
func NewCenterCrop(size int) (*CenterCrop, error) {
	return NewCenterCropRect(size, size)
}

// NewCenterCropRect returns a height×width centre crop.
// Errors: ErrInvalidInput for negative sizes.
func NewCenterCropRect(height, width int) (*CenterCrop, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("NewCenterCrop(%d,%d): %w", height, width, ErrInvalidInput)
	}
	return &CenterCrop{Height: height, Width: width}, nil
}

// ApplyArray crops the centre of a. r is unused.
func (c *CenterCrop) ApplyArray(_ *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	out, err := functional.CenterCrop(a, c.Height, c.Width)
	if err != nil {
		return nil, fmt.Errorf("CenterCrop: %w", err)
	}
	return out, nil
}

// Apply implements Transform.
func (c *CenterCrop) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("CenterCrop", c, r, v)
}

func (c *CenterCrop) String() string {
	return fmt.Sprintf("CenterCrop(size=(%d,%d))", c.Height, c.Width)
}

// ---------- Resize ----------

// Resize resamples the spatial axes to Height×Width.
type Resize struct {
	Height, Width int
	Mode          functional.Interpolation
}

// NewResize builds a Resize. Honors WithInterpolation.
// Errors: ErrInvalidInput for non-positive sizes.
func NewResize(height, width int, opts ...Option) (*Resize, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("NewResize(%d,%d): %w", height, width, ErrInvalidInput)
	}
	o := gatherOptions(opts)

	return &Resize{Height: height, Width: width, Mode: o.mode}, nil
}

// ApplyArray resizes a. r is unused.
func (s *Resize) ApplyArray(_ *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	out, err := functional.Resize(a, s.Height, s.Width, s.Mode)
	if err != nil {
		return nil, fmt.Errorf("Resize: %w", err)
	}
	return out, nil
}

// Apply implements Transform.
func (s *Resize) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("Resize", s, r, v)
}

func (s *Resize) String() string {
	return fmt.Sprintf("Resize(size=(%d,%d), interpolation=%s)", s.Height, s.Width, s.Mode)
}

// ---------- RandomCrop ----------

// RandomCrop crops a Height×Width window at a uniformly random position.
type RandomCrop struct {
	Height, Width int
}

// NewRandomCrop builds a RandomCrop.
// Errors: ErrInvalidInput for non-positive sizes.
func NewRandomCrop(height, width int) (*RandomCrop, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("NewRandomCrop(%d,%d): %w", height, width, ErrInvalidInput)
	}
	return &RandomCrop{Height: height, Width: width}, nil
}

// Params draws the crop origin for an H×W image.
// Errors: ErrInvalidInput when the window does not fit.
func (c *RandomCrop) Params(r *rand.Rand, h, w int) (CropParams, error) {
	if h < c.Height || w < c.Width {
		return CropParams{}, fmt.Errorf("RandomCrop: %dx%d window on %dx%d image: %w",
			c.Height, c.Width, h, w, ErrInvalidInput)
	}
	top := randint(r, 0, h-c.Height)
	left := randint(r, 0, w-c.Width)

	return CropParams{Top: top, Left: left, Height: c.Height, Width: c.Width}, nil
}

// ApplyArray draws one origin and crops a with it.
func (c *RandomCrop) ApplyArray(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	h, w, err := spatial("RandomCrop", a)
	if err != nil {
		return nil, err
	}
	p, err := c.Params(r, h, w)
	if err != nil {
		return nil, err
	}
	out, err := functional.Crop(a, p.Top, p.Left, p.Height, p.Width)
	if err != nil {
		return nil, fmt.Errorf("RandomCrop: %w", err)
	}
	return out, nil
}

// Apply implements Transform.
func (c *RandomCrop) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("RandomCrop", c, r, v)
}

func (c *RandomCrop) String() string {
	return fmt.Sprintf("RandomCrop(size=(%d,%d))", c.Height, c.Width)
}

// ---------- RandomResizedCrop ----------

// RandomResizedCrop crops a random rectangle whose area fraction lies in
// Scale and whose aspect ratio (width/height) lies in Ratio, then resizes it
// to Height×Width.
//
// The rectangle is drawn once per ApplyArray call. Applied to a merged stack,
// every logical image inside the stack therefore gets the same rectangle.
type RandomResizedCrop struct {
	Height, Width int
	Scale         [2]float64
	Ratio         [2]float64
	Mode          functional.Interpolation
}

// NewRandomResizedCrop builds a RandomResizedCrop producing height×width
// outputs. Honors WithScale, WithRatio and WithInterpolation.
//
// Errors:
//   - ErrInvalidInput for non-positive sizes, Scale outside (0, ∞) or with
//     lo > hi, Ratio not strictly positive or with lo > hi.
func NewRandomResizedCrop(height, width int, opts ...Option) (*RandomResizedCrop, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("NewRandomResizedCrop(%d,%d): %w", height, width, ErrInvalidInput)
	}
	o := gatherOptions(opts)
	if !(o.scale[0] > 0 && o.scale[0] <= o.scale[1]) || math.IsInf(o.scale[1], 0) {
		return nil, fmt.Errorf("NewRandomResizedCrop: scale %v: %w", o.scale, ErrInvalidInput)
	}
	if !(o.ratio[0] > 0 && o.ratio[0] <= o.ratio[1]) || math.IsInf(o.ratio[1], 0) {
		return nil, fmt.Errorf("NewRandomResizedCrop: ratio %v: %w", o.ratio, ErrInvalidInput)
	}

	return &RandomResizedCrop{
		Height: height,
		Width:  width,
		Scale:  o.scale,
		Ratio:  o.ratio,
		Mode:   o.mode,
	}, nil
}

// Params searches a crop rectangle for an h×w image.
//
// Implementation:
//   - Stage 1: up to 10 attempts. Each draws target area = uniform(Scale)*h*w
//     and aspect = exp(uniform(log Ratio)), derives cw = round(√(area·aspect)),
//     ch = round(√(area/aspect)); the first rectangle fitting inside the image
//     wins and gets a uniformly random origin.
//   - Stage 2 (fallback): a central crop whose aspect ratio is the image's own,
//     clamped into Ratio.
//
// Guarantees:
//   - Top+Height <= h and Left+Width <= w for every returned rectangle when
//     h, w > 0.
//
// Complexity:
//   - Time O(1) (bounded attempts), Space O(1).
func (c *RandomResizedCrop) Params(r *rand.Rand, h, w int) CropParams {
	area := float64(h) * float64(w)
	logLo, logHi := math.Log(c.Ratio[0]), math.Log(c.Ratio[1])

	for attempt := 0; attempt < maxCropAttempts; attempt++ {
		target := area * uniform(r, c.Scale[0], c.Scale[1])
		aspect := math.Exp(uniform(r, logLo, logHi))

		cw := int(math.RoundToEven(math.Sqrt(target * aspect)))
		ch := int(math.RoundToEven(math.Sqrt(target / aspect)))
		if 0 < cw && cw <= w && 0 < ch && ch <= h {
			top := randint(r, 0, h-ch)
			left := randint(r, 0, w-cw)
			return CropParams{Top: top, Left: left, Height: ch, Width: cw}
		}
	}

	return c.fallback(h, w)
}

// fallback returns the deterministic central crop used after the attempts run out.
func (c *RandomResizedCrop) fallback(h, w int) CropParams {
	inRatio := float64(w) / float64(h)
	cw, ch := w, h
	switch {
	case inRatio < c.Ratio[0]:
		ch = int(math.RoundToEven(float64(cw) / c.Ratio[0]))
	case inRatio > c.Ratio[1]:
		cw = int(math.RoundToEven(float64(ch) * c.Ratio[1]))
	}
	ch = min(max(ch, 1), h)
	cw = min(max(cw, 1), w)

	return CropParams{Top: (h - ch) / 2, Left: (w - cw) / 2, Height: ch, Width: cw}
}

// ApplyArray draws one rectangle and runs a single ResizedCrop with it.
// Errors: ErrInvalidInput for rank < 2 or an empty spatial axis.
func (c *RandomResizedCrop) ApplyArray(r *rand.Rand, a *ndarray.Array) (*ndarray.Array, error) {
	h, w, err := spatial("RandomResizedCrop", a)
	if err != nil {
		return nil, err
	}
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("RandomResizedCrop: empty %dx%d image: %w", h, w, ErrInvalidInput)
	}
	p := c.Params(r, h, w)
	out, err := functional.ResizedCrop(a, p.Top, p.Left, p.Height, p.Width, c.Height, c.Width, c.Mode)
	if err != nil {
		return nil, fmt.Errorf("RandomResizedCrop: %w", err)
	}
	return out, nil
}

// Apply implements Transform.
func (c *RandomResizedCrop) Apply(r *rand.Rand, v Value) (Value, error) {
	return applyArray("RandomResizedCrop", c, r, v)
}

func (c *RandomResizedCrop) String() string {
	return fmt.Sprintf("RandomResizedCrop(size=(%d,%d), scale=(%g,%g), ratio=(%.4g,%.4g), interpolation=%s)",
		c.Height, c.Width, c.Scale[0], c.Scale[1], c.Ratio[0], c.Ratio[1], c.Mode)
}

// Compile-time assertions.
var (
	_ ArrayTransform = (*CenterCrop)(nil)
	_ ArrayTransform = (*Resize)(nil)
	_ ArrayTransform = (*RandomCrop)(nil)
	_ ArrayTransform = (*RandomResizedCrop)(nil)
	_ Transform      = (*RandomResizedCrop)(nil)
)
