package transforms_test

import (
	"testing"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/ndarray"
	"github.com/katalvlaran/jointaug/transforms"
	"github.com/stretchr/testify/require"
)

func TestCenterCropTransform(t *testing.T) {
	img := ramp(t, ndarray.Float64, 0, 6, 8, 2)
	cc := mustTransform(transforms.NewCenterCropRect(2, 4))

	out, err := cc.Apply(nil, transforms.Single(img))
	require.NoError(t, err)
	want, err := functional.Crop(img, 2, 2, 2, 4)
	require.NoError(t, err)
	require.True(t, ndarray.Equal(want, arrayOf(t, out)))

	_, err = transforms.NewCenterCrop(-1)
	require.ErrorIs(t, err, transforms.ErrInvalidInput)
}

func TestResizeTransform(t *testing.T) {
	img := ramp(t, ndarray.Uint8, 0, 4, 4, 3)
	rs := mustTransform(transforms.NewResize(2, 8, transforms.WithInterpolation(functional.Nearest)))

	out, err := rs.ApplyArray(nil, img)
	require.NoError(t, err)
	require.Equal(t, []int{2, 8, 3}, out.Shape())
	require.Equal(t, ndarray.Uint8, out.DType())

	_, err = transforms.NewResize(0, 4)
	require.ErrorIs(t, err, transforms.ErrInvalidInput)
}

func TestRandomCropFits(t *testing.T) {
	img := ramp(t, ndarray.Float64, 0, 7, 9, 1)
	rc := mustTransform(transforms.NewRandomCrop(3, 4))
	r := transforms.NewStream(11)

	for i := 0; i < 200; i++ {
		p, err := rc.Params(r, 7, 9)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p.Top, 0)
		require.GreaterOrEqual(t, p.Left, 0)
		require.LessOrEqual(t, p.Top+p.Height, 7)
		require.LessOrEqual(t, p.Left+p.Width, 9)
	}

	out, err := rc.ApplyArray(r, img)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 1}, out.Shape())
}

func TestRandomCropTooSmall(t *testing.T) {
	img := ramp(t, ndarray.Float64, 0, 2, 9, 1)
	rc := mustTransform(transforms.NewRandomCrop(3, 4))
	_, err := rc.ApplyArray(transforms.NewStream(1), img)
	require.ErrorIs(t, err, transforms.ErrInvalidInput)
}

func TestRandomResizedCropValidation(t *testing.T) {
	cases := []struct {
		name string
		h, w int
		opts []transforms.Option
	}{
		{"zero height", 0, 4, nil},
		{"scale reversed", 4, 4, []transforms.Option{transforms.WithScale(0.9, 0.1)}},
		{"scale zero", 4, 4, []transforms.Option{transforms.WithScale(0, 1)}},
		{"ratio negative", 4, 4, []transforms.Option{transforms.WithRatio(-1, 1)}},
		{"ratio reversed", 4, 4, []transforms.Option{transforms.WithRatio(2, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transforms.NewRandomResizedCrop(tc.h, tc.w, tc.opts...)
			require.ErrorIs(t, err, transforms.ErrInvalidInput)
		})
	}
}

func TestRandomResizedCropDefaults(t *testing.T) {
	rrc := mustTransform(transforms.NewRandomResizedCrop(8, 6))
	require.Equal(t, [2]float64{transforms.DefaultScaleMin, transforms.DefaultScaleMax}, rrc.Scale)
	require.Equal(t, [2]float64{transforms.DefaultRatioMin, transforms.DefaultRatioMax}, rrc.Ratio)
	require.Equal(t, functional.Bilinear, rrc.Mode)
}

// TestRandomResizedCropBounds checks that every rectangle fits, across many
// image shapes and draws.
func TestRandomResizedCropBounds(t *testing.T) {
	rrc := mustTransform(transforms.NewRandomResizedCrop(8, 8))
	r := transforms.NewStream(2024)
	sizes := [][2]int{{1, 1}, {1, 50}, {50, 1}, {7, 13}, {32, 32}, {100, 3}, {224, 300}}

	for _, s := range sizes {
		for i := 0; i < 300; i++ {
			p := rrc.Params(r, s[0], s[1])
			require.Greater(t, p.Height, 0, "%v %v", s, p)
			require.Greater(t, p.Width, 0, "%v %v", s, p)
			require.GreaterOrEqual(t, p.Top, 0, "%v %v", s, p)
			require.GreaterOrEqual(t, p.Left, 0, "%v %v", s, p)
			require.LessOrEqual(t, p.Top+p.Height, s[0], "%v %v", s, p)
			require.LessOrEqual(t, p.Left+p.Width, s[1], "%v %v", s, p)
		}
	}
}

// TestRandomResizedCropScaleRespected checks the area fraction on a large
// image where attempts almost always succeed.
func TestRandomResizedCropScaleRespected(t *testing.T) {
	rrc := mustTransform(transforms.NewRandomResizedCrop(4, 4,
		transforms.WithScale(0.25, 0.5), transforms.WithRatio(1, 1)))
	r := transforms.NewStream(5)

	const side = 400
	for i := 0; i < 100; i++ {
		p := rrc.Params(r, side, side)
		require.Equal(t, p.Height, p.Width)
		frac := float64(p.Height*p.Width) / (side * side)
		require.InDelta(t, 0.375, frac, 0.13)
	}
}

func TestRandomResizedCropFallback(t *testing.T) {
	cases := []struct {
		name string
		h, w int
		opts []transforms.Option
		want transforms.CropParams
	}{
		{
			name: "too wide",
			h:    10, w: 100,
			opts: []transforms.Option{transforms.WithScale(0.9, 1)},
			want: transforms.CropParams{Top: 0, Left: 43, Height: 10, Width: 13},
		},
		{
			name: "too tall",
			h:    100, w: 10,
			opts: []transforms.Option{transforms.WithScale(0.9, 1)},
			want: transforms.CropParams{Top: 43, Left: 0, Height: 13, Width: 10},
		},
		{
			name: "whole image",
			h:    10, w: 10,
			opts: []transforms.Option{transforms.WithScale(2, 3), transforms.WithRatio(1, 1)},
			want: transforms.CropParams{Top: 0, Left: 0, Height: 10, Width: 10},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rrc := mustTransform(transforms.NewRandomResizedCrop(4, 4, tc.opts...))
			for seed := uint64(1); seed <= 5; seed++ {
				require.Equal(t, tc.want, rrc.Params(transforms.NewStream(seed), tc.h, tc.w))
			}
		})
	}
}

func TestRandomResizedCropOutput(t *testing.T) {
	img := ramp(t, ndarray.Uint8, 0, 20, 30, 4)
	rrc := mustTransform(transforms.NewRandomResizedCrop(8, 6))

	out, err := rrc.Apply(transforms.NewStream(3), transforms.Single(img))
	require.NoError(t, err)
	require.Equal(t, []int{8, 6, 4}, arrayOf(t, out).Shape())
	require.Equal(t, ndarray.Uint8, arrayOf(t, out).DType())
}

// TestRandomResizedCropMatchesParams replays the draw with an identical
// stream and checks the output equals a manual ResizedCrop.
func TestRandomResizedCropMatchesParams(t *testing.T) {
	img := ramp(t, ndarray.Float64, 0, 16, 12, 2)
	rrc := mustTransform(transforms.NewRandomResizedCrop(5, 5))

	out, err := rrc.ApplyArray(transforms.NewStream(77), img)
	require.NoError(t, err)

	p := rrc.Params(transforms.NewStream(77), 16, 12)
	want, err := functional.ResizedCrop(img, p.Top, p.Left, p.Height, p.Width, 5, 5, functional.Bilinear)
	require.NoError(t, err)
	require.True(t, ndarray.EqualApprox(want, out, 1e-12))
}

func TestCropTransformsRejectGroups(t *testing.T) {
	img := ramp(t, ndarray.Float64, 0, 4, 4, 1)
	rrc := mustTransform(transforms.NewRandomResizedCrop(2, 2))
	_, err := rrc.Apply(nil, transforms.Arrays(img, img))
	require.ErrorIs(t, err, transforms.ErrTypeMismatch)

	_, err = rrc.ApplyArray(nil, ramp(t, ndarray.Float64, 0, 4))
	require.ErrorIs(t, err, transforms.ErrInvalidInput)

	empty, err := ndarray.New(ndarray.Float64, 0, 4, 1)
	require.NoError(t, err)
	_, err = rrc.ApplyArray(nil, empty)
	require.ErrorIs(t, err, transforms.ErrInvalidInput)
}

func TestCropParamsString(t *testing.T) {
	p := transforms.CropParams{Top: 1, Left: 2, Height: 3, Width: 4}
	require.Equal(t, "(1,2) 3x4", p.String())
}
