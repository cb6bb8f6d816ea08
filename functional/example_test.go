package functional_test

import (
	"fmt"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/ndarray"
)

// ExampleResizedCrop crops the centre of a 6×6 RGB image and scales it up.
func ExampleResizedCrop() {
	img, _ := ndarray.Fill(ndarray.Uint8, 200, 6, 6, 3)

	out, err := functional.ResizedCrop(img, 1, 1, 4, 4, 8, 8, functional.Bilinear)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := out.At(7, 7, 2)
	fmt.Println(out, v)
	// Output:
	// Array(uint8, [8 8 3]) 200
}

// ExampleHFlip mirrors a single row.
func ExampleHFlip() {
	row, _ := ndarray.FromSlice(ndarray.Float64, []float64{1, 2, 3}, 1, 3, 1)
	out, _ := functional.HFlip(row)
	fmt.Println(out.Data())
	// Output:
	// [3 2 1]
}
