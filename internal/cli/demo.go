package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jointaug/functional"
	"github.com/katalvlaran/jointaug/imageconv"
	"github.com/katalvlaran/jointaug/ndarray"
	"github.com/katalvlaran/jointaug/pipeline"
	"github.com/katalvlaran/jointaug/transforms"
)

const (
	defaultDemoSize = 64 // side of the synthetic image
	defaultDemoSeed = 1  // used when neither --seed nor the config sets one
)

// errGeometryDiverged reports an image and mask that left the pipeline with
// different geometry.
var errGeometryDiverged = errors.New("demo: image and mask geometry diverged")

// demoOpts holds the flags of the demo command.
type demoOpts struct {
	config string // optional pipeline file; empty uses the built-in pipeline
	seed   uint64 // stream seed; 0 defers to the config, then defaultDemoSeed
	size   int    // side of the synthetic image
	out    string // optional directory for PNG outputs
}

// newDemoCmd creates the demo command, which runs a pipeline over a
// synthetic RGB image and its object mask.
func newDemoCmd() *cobra.Command {
	opts := demoOpts{size: defaultDemoSize}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a pipeline over a synthetic image and mask and check they stay aligned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "pipeline file (.toml, .yaml, .yml)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random stream seed (default: config seed, then 1)")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "side of the synthetic image in pixels")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "directory to write input/output PNGs to")

	return cmd
}

func runDemo(ctx context.Context, cmd *cobra.Command, opts *demoOpts) error {
	if opts.size < 8 {
		return fmt.Errorf("demo: --size must be at least 8, got %d", opts.size)
	}
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID)
	prog := newProgress(logger)

	pipe, seed, err := demoPipeline(opts)
	if err != nil {
		return err
	}
	pipe = pipe.WithObserver(func(e transforms.StageEvent) {
		logger.Debug("stage done", "index", e.Index, "kind", e.Kind, "value", e.Output.String())
	})

	img, mask := synthesize(opts.size)
	imgArr, err := imageconv.FromImageRGB(img)
	if err != nil {
		return err
	}
	maskArr, err := imageconv.FromImage(mask)
	if err != nil {
		return err
	}
	logger.Info("input", "image", imgArr.String(), "mask", maskArr.String(), "seed", seed)

	out, err := pipe.Apply(transforms.NewStream(seed), transforms.Arrays(imgArr, maskArr))
	if err != nil {
		return err
	}
	arrays, err := out.Flatten()
	if err != nil {
		return err
	}
	if len(arrays) != 2 {
		return fmt.Errorf("demo: pipeline must end with two arrays (image, mask), got %s", out)
	}
	if err = checkAligned(arrays[0], arrays[1]); err != nil {
		return err
	}

	if opts.out != "" {
		if err = saveDemo(logger, opts.out, runID, img, mask, arrays[0], arrays[1]); err != nil {
			return err
		}
	}

	prog.done("pipeline applied, image and mask aligned")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", runID, transforms.Arrays(imgArr, maskArr), out)
	return err
}

// demoPipeline loads the configured pipeline or builds the default one and
// resolves the seed.
func demoPipeline(opts *demoOpts) (*transforms.Compose, uint64, error) {
	seed := opts.seed
	if opts.config != "" {
		cfg, err := pipeline.Load(opts.config)
		if err != nil {
			return nil, 0, err
		}
		pipe, err := cfg.Build()
		if err != nil {
			return nil, 0, err
		}
		if seed == 0 {
			seed = cfg.Seed
		}
		if seed == 0 {
			seed = defaultDemoSeed
		}
		return pipe, seed, nil
	}

	if seed == 0 {
		seed = defaultDemoSeed
	}
	side := opts.size / 2
	rrc, err := transforms.NewRandomResizedCrop(side, side, transforms.WithInterpolation(functional.Nearest))
	if err != nil {
		return nil, 0, err
	}
	hflip, err := transforms.NewRandomHorizontalFlip(transforms.DefaultFlipProbability)
	if err != nil {
		return nil, 0, err
	}
	vflip, err := transforms.NewRandomVerticalFlip(transforms.DefaultFlipProbability)
	if err != nil {
		return nil, 0, err
	}
	split, err := transforms.NewSplit([][]int{{0, 3}, {3, 4}})
	if err != nil {
		return nil, 0, err
	}
	pipe, err := transforms.NewCompose(
		transforms.Uniform(transforms.NewMerge(0)),
		transforms.Uniform(rrc),
		transforms.Uniform(hflip),
		transforms.Uniform(vflip),
		transforms.Uniform(split),
	)
	return pipe, seed, err
}

// synthesize draws a size×size image: a blue/green gradient with a red
// object square off centre, and the object mask. The red channel of the
// image equals the mask, which lets checkAligned compare them exactly.
func synthesize(size int) (*image.NRGBA, *image.Gray) {
	img := imaging.New(size, size, color.NRGBA{A: 0xff})
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				G: uint8(255 * x / size),
				B: uint8(255 * y / size),
				A: 0xff,
			})
		}
	}
	side := size / 3
	origin := image.Pt(size/5, size/4)
	obj := imaging.New(side, side, color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff})
	img = imaging.Paste(img, obj, origin)

	mask := image.NewGray(image.Rect(0, 0, size, size))
	for y := origin.Y; y < origin.Y+side; y++ {
		for x := origin.X; x < origin.X+side; x++ {
			mask.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}
	return img, mask
}

// checkAligned requires the red channel of img to equal mask.
func checkAligned(img, mask *ndarray.Array) error {
	is, ms := img.Shape(), mask.Shape()
	if len(is) != 3 || len(ms) != 3 || is[0] != ms[0] || is[1] != ms[1] {
		return fmt.Errorf("%w: image %v, mask %v", errGeometryDiverged, is, ms)
	}
	red, err := img.SliceAxis(-1, ndarray.NewRange(0, 1))
	if err != nil {
		return err
	}
	if !ndarray.Equal(red, mask) {
		return fmt.Errorf("%w: red channel differs from mask", errGeometryDiverged)
	}
	return nil
}

// saveDemo writes the inputs and outputs as PNGs named after the run id.
func saveDemo(logger *log.Logger, dir, runID string, img, mask image.Image, outImg, outMask *ndarray.Array) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	a, err := imageconv.ToImage(outImg)
	if err != nil {
		return err
	}
	m, err := imageconv.ToImage(outMask)
	if err != nil {
		return err
	}

	files := []struct {
		name string
		img  image.Image
	}{
		{"input", img},
		{"input_mask", mask},
		{"output", a},
		{"output_mask", m},
	}
	for _, f := range files {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", runID, f.name))
		if err := imaging.Save(f.img, path); err != nil {
			return fmt.Errorf("demo: save %s: %w", f.name, err)
		}
		logger.Debug("wrote", "path", path)
	}
	return nil
}
