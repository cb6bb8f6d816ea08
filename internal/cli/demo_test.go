package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jointaug/ndarray"
)

func TestDemoDefaultPipeline(t *testing.T) {
	for _, seed := range []string{"1", "2", "3", "4"} {
		out, logs, err := execute(t, "demo", "--seed", seed, "--size", "48")
		require.NoError(t, err)
		require.Contains(t, out, "-> [Array(uint8, [24 24 3]) Array(uint8, [24 24 1])]")
		require.Contains(t, logs, "image and mask aligned")
	}
}

func TestDemoVerboseLogsStages(t *testing.T) {
	_, logs, err := execute(t, "-v", "demo")
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(logs, "stage done"))
	require.Contains(t, logs, "run=")
}

func TestDemoConfig(t *testing.T) {
	out, _, err := execute(t, "demo", "--config", filepath.Join("testdata", "aligned.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "[Array(uint8, [24 20 3]) Array(uint8, [24 20 1])]")
}

func TestDemoDetectsMisalignment(t *testing.T) {
	_, _, err := execute(t, "demo", "--config", filepath.Join("testdata", "misaligned.toml"))
	require.ErrorIs(t, err, errGeometryDiverged)
}

func TestDemoWritesImages(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "demo", "--out", dir, "--size", "32")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	require.Len(t, files, 4)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}

func TestDemoRejectsTinyImage(t *testing.T) {
	_, _, err := execute(t, "demo", "--size", "4")
	require.Error(t, err)
}

func TestSynthesizeRedChannelIsMask(t *testing.T) {
	img, mask := synthesize(30)
	require.Equal(t, img.Bounds(), mask.Bounds())

	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			require.Equal(t, img.NRGBAAt(x, y).R, mask.GrayAt(x, y).Y, "(%d,%d)", x, y)
		}
	}
}

func TestCheckAligned(t *testing.T) {
	img, err := ndarray.New(ndarray.Uint8, 4, 4, 3)
	require.NoError(t, err)
	mask, err := ndarray.New(ndarray.Uint8, 4, 4, 1)
	require.NoError(t, err)
	require.NoError(t, checkAligned(img, mask))

	require.NoError(t, mask.Set(255, 1, 1, 0))
	require.ErrorIs(t, checkAligned(img, mask), errGeometryDiverged)

	small, err := ndarray.New(ndarray.Uint8, 3, 4, 1)
	require.NoError(t, err)
	require.ErrorIs(t, checkAligned(img, small), errGeometryDiverged)
}
