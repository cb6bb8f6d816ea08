package imageconv_test

import (
	"fmt"
	"image"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/imageconv"
)

// ExampleToImage flips a grayscale image through an array and back.
func ExampleToImage() {
	g := image.NewGray(image.Rect(0, 0, 3, 1))
	copy(g.Pix, []uint8{10, 20, 30})

	a, _ := imageconv.FromImage(g)
	flipped, _ := functional.HFlip(a)
	out, _ := imageconv.ToImage(flipped)

	fmt.Println(a, out.(*image.Gray).Pix)
	// Output: Array(uint8, [1 3 1]) [30 20 10]
}
