package transforms_test

import (
	"testing"

	"github.com/katalvlaran/jointaug/ndarray"
	"github.com/katalvlaran/jointaug/transforms"
)

// BenchmarkComposeJoint runs merge, random resized crop, flip and split over
// a 256×256 RGB image and its mask.
func BenchmarkComposeJoint(b *testing.B) {
	img := ramp(b, ndarray.Float32, 0, 256, 256, 3)
	mask := ramp(b, ndarray.Float32, 0, 256, 256, 1)

	rrc, err := transforms.NewRandomResizedCrop(224, 224)
	if err != nil {
		b.Fatal(err)
	}
	flip, err := transforms.NewRandomHorizontalFlip(0.5)
	if err != nil {
		b.Fatal(err)
	}
	split, err := transforms.NewSplit([][]int{{0, 3}, {3, 4}})
	if err != nil {
		b.Fatal(err)
	}
	pipe := transforms.MustCompose(
		transforms.Uniform(transforms.NewMerge(0)),
		transforms.Uniform(rrc),
		transforms.Uniform(flip),
		transforms.Uniform(split),
	)
	in := transforms.Arrays(img, mask)
	r := transforms.NewStream(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipe.Apply(r, in); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkRandomResizedCropParams measures the rectangle search alone.
func BenchmarkRandomResizedCropParams(b *testing.B) {
	rrc, err := transforms.NewRandomResizedCrop(224, 224)
	if err != nil {
		b.Fatal(err)
	}
	r := transforms.NewStream(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rrc.Params(r, 480, 640)
	}
}
