package transforms_test

import (
	"testing"

	"github.com/katalvlaran/jointaug/transforms"
	"github.com/stretchr/testify/require"
)

func TestNewStreamDeterministic(t *testing.T) {
	a, b := transforms.NewStream(7), transforms.NewStream(7)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

// TestNewStreamZeroSeed maps seed 0 onto the fixed default seed.
func TestNewStreamZeroSeed(t *testing.T) {
	require.Equal(t, transforms.NewStream(1).Uint64(), transforms.NewStream(0).Uint64())
	require.NotEqual(t, transforms.NewStream(1).Uint64(), transforms.NewStream(2).Uint64())
}

func TestDeriveStream(t *testing.T) {
	s0 := transforms.DeriveStream(transforms.NewStream(5), 0)
	s0again := transforms.DeriveStream(transforms.NewStream(5), 0)
	s1 := transforms.DeriveStream(transforms.NewStream(5), 1)

	x0, x0again, x1 := s0.Uint64(), s0again.Uint64(), s1.Uint64()
	require.Equal(t, x0, x0again)
	require.NotEqual(t, x0, x1)

	base := transforms.NewStream(5)
	first := transforms.DeriveStream(base, 3).Uint64()
	second := transforms.DeriveStream(base, 3).Uint64()
	require.NotEqual(t, first, second)

	require.Equal(t,
		transforms.DeriveStream(nil, 4).Uint64(),
		transforms.DeriveStream(nil, 4).Uint64())
}
