package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/jointaug/transforms"
)

// paramsOpts holds the flags of the params command.
type paramsOpts struct {
	height, width int       // source image size
	scale         []float64 // [lo, hi] area fraction
	ratio         []float64 // [lo, hi] aspect ratio (width/height)
	seed          uint64    // stream seed
	n             int       // number of rectangles
	plot          string    // optional PNG/SVG/PDF path for a scatter of the draws
}

// newParamsCmd creates the params command, which samples RandomResizedCrop
// rectangles for an image of the given size.
func newParamsCmd() *cobra.Command {
	opts := paramsOpts{
		scale: []float64{transforms.DefaultScaleMin, transforms.DefaultScaleMax},
		ratio: []float64{transforms.DefaultRatioMin, transforms.DefaultRatioMax},
		seed:  1,
		n:     5,
	}

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Sample RandomResizedCrop rectangles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.height, "height", 0, "source image height")
	cmd.Flags().IntVar(&opts.width, "width", 0, "source image width")
	cmd.Flags().Float64SliceVar(&opts.scale, "scale", opts.scale, "area fraction range lo,hi")
	cmd.Flags().Float64SliceVar(&opts.ratio, "ratio", opts.ratio, "aspect ratio range lo,hi")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random stream seed")
	cmd.Flags().IntVarP(&opts.n, "count", "n", opts.n, "number of rectangles")
	cmd.Flags().StringVar(&opts.plot, "plot", "", "write a scatter of area fraction vs aspect ratio to this file")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

func runParams(ctx context.Context, cmd *cobra.Command, opts *paramsOpts) error {
	logger := loggerFromContext(ctx)

	if opts.height <= 0 || opts.width <= 0 {
		return fmt.Errorf("params: --height and --width must be positive, got %dx%d", opts.height, opts.width)
	}
	if len(opts.scale) != 2 || len(opts.ratio) != 2 {
		return fmt.Errorf("params: --scale and --ratio take exactly two values")
	}
	if opts.n < 0 {
		return fmt.Errorf("params: --count must be non-negative, got %d", opts.n)
	}
	rrc, err := transforms.NewRandomResizedCrop(1, 1,
		transforms.WithScale(opts.scale[0], opts.scale[1]),
		transforms.WithRatio(opts.ratio[0], opts.ratio[1]))
	if err != nil {
		return err
	}

	r := transforms.NewStream(opts.seed)
	area := float64(opts.height * opts.width)
	pts := make(plotter.XYs, opts.n)
	out := cmd.OutOrStdout()
	for i := range pts {
		p := rrc.Params(r, opts.height, opts.width)
		frac := float64(p.Height*p.Width) / area
		aspect := float64(p.Width) / float64(p.Height)
		pts[i] = plotter.XY{X: frac, Y: aspect}
		if _, err := fmt.Fprintf(out, "top=%d left=%d height=%d width=%d scale=%.4f ratio=%.4f\n",
			p.Top, p.Left, p.Height, p.Width, frac, aspect); err != nil {
			return err
		}
	}
	logger.Debug("sampled rectangles", "n", opts.n, "seed", opts.seed, "transform", rrc.String())

	if opts.plot != "" && opts.n > 0 {
		if err := plotParams(pts, opts); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", opts.plot)
	}
	return nil
}

// plotParams saves a scatter of the sampled (area fraction, aspect) pairs.
func plotParams(pts plotter.XYs, opts *paramsOpts) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("RandomResizedCrop on %dx%d (seed %d)", opts.height, opts.width, opts.seed)
	p.X.Label.Text = "area fraction"
	p.Y.Label.Text = "aspect ratio (w/h)"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("params: scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, opts.plot); err != nil {
		return fmt.Errorf("params: save plot: %w", err)
	}
	return nil
}
