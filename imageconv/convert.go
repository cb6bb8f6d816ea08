// SPDX-License-Identifier: MIT

package imageconv

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/jointaug/ndarray"
)

// FromImage converts img to a uint8 array. *image.Gray becomes (H, W, 1);
// everything else becomes (H, W, 4) non-premultiplied RGBA.
//
// Errors:
//   - ErrInvalidInput for a nil image.
//
// Complexity:
//   - Time O(H*W*C), Space O(H*W*C).
func FromImage(img image.Image) (*ndarray.Array, error) {
	if img == nil {
		return nil, fmt.Errorf("FromImage: %w", ErrInvalidInput)
	}
	if g, ok := img.(*image.Gray); ok {
		return fromGray(g)
	}

	return fromColor(img, 4)
}

// FromImageRGB converts img to a (H, W, 3) uint8 array, dropping alpha.
// Errors: ErrInvalidInput for a nil image.
func FromImageRGB(img image.Image) (*ndarray.Array, error) {
	if img == nil {
		return nil, fmt.Errorf("FromImageRGB: %w", ErrInvalidInput)
	}

	return fromColor(img, 3)
}

func fromGray(g *image.Gray) (*ndarray.Array, error) {
	b := g.Bounds()
	h, w := b.Dy(), b.Dx()
	data := make([]float64, 0, h*w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data = append(data, float64(g.GrayAt(x, y).Y))
		}
	}

	return ndarray.FromSlice(ndarray.Uint8, data, h, w, 1)
}

// fromColor samples every pixel through the NRGBA color model and keeps the
// first channels components (3 = RGB, 4 = RGBA).
func fromColor(img image.Image, channels int) (*ndarray.Array, error) {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	data := make([]float64, 0, h*w*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data = append(data, float64(c.R), float64(c.G), float64(c.B))
			if channels == 4 {
				data = append(data, float64(c.A))
			}
		}
	}

	return ndarray.FromSlice(ndarray.Uint8, data, h, w, channels)
}

// ToImage converts a (H, W, 1) array to *image.Gray and a (H, W, 3|4) array
// to *image.NRGBA. Any dtype is accepted; values are rounded and clamped to
// [0, 255].
//
// Errors:
//   - ErrInvalidInput for a nil array.
//   - ErrUnsupportedLayout for any other rank or channel count.
func ToImage(a *ndarray.Array) (image.Image, error) {
	if a == nil {
		return nil, fmt.Errorf("ToImage: %w", ErrInvalidInput)
	}
	shape := a.Shape()
	if len(shape) != 3 {
		return nil, fmt.Errorf("ToImage(%v): %w", shape, ErrUnsupportedLayout)
	}
	h, w, c := shape[0], shape[1], shape[2]
	data := a.Data()
	rect := image.Rect(0, 0, w, h)

	switch c {
	case 1:
		g := image.NewGray(rect)
		for i, v := range data {
			g.Pix[i] = toByte(v)
		}
		return g, nil
	case 3, 4:
		out := image.NewNRGBA(rect)
		for p := 0; p < h*w; p++ {
			src := data[p*c : p*c+c]
			dst := out.Pix[p*4 : p*4+4]
			dst[0], dst[1], dst[2] = toByte(src[0]), toByte(src[1]), toByte(src[2])
			dst[3] = 0xff
			if c == 4 {
				dst[3] = toByte(src[3])
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("ToImage(%v): %d channels: %w", shape, c, ErrUnsupportedLayout)
	}
}

func toByte(v float64) uint8 {
	return uint8(ndarray.Uint8.Coerce(v))
}
