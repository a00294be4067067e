package pathfind_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/metric"
	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

// fixedSource replays seq (modulo n) as a RandSource.
type fixedSource struct {
	seq []int
	i   int
}

func (f *fixedSource) Intn(n int) int {
	v := f.seq[f.i%len(f.seq)] % n
	f.i++
	return v
}

// sliceSource is a BridgeSource returning a fixed edge list.
type sliceSource []pathfind.Edge

func (s sliceSource) Generate(int, int) []pathfind.Edge { return s }

// grid3 builds a flat 3×3 terrain; waterRow >= 0 floods that row.
func grid3(t testing.TB, waterRow int) *terrain.Terrain {
	t.Helper()
	heights, err := terrain.NewHeightMap(3, 3, make([]float64, 9))
	require.NoError(t, err)
	tiles := make([]terrain.TileType, 9)
	if waterRow >= 0 {
		for x := 0; x < 3; x++ {
			tiles[waterRow*3+x] = terrain.Water
		}
	}
	types, err := terrain.NewTypeMap(3, 3, tiles)
	require.NoError(t, err)
	tr, err := terrain.New(heights, types, terrain.DefaultOptions())
	require.NoError(t, err)
	return tr
}

// randomTerrain builds a w×h terrain with random heights and roughly 15%
// water and 15% forest, deterministically from seed.
func randomTerrain(t testing.TB, w, h int, seed int64) *terrain.Terrain {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, w*h)
	tiles := make([]terrain.TileType, w*h)
	for i := range values {
		values[i] = rng.Float64()
		switch r := rng.Intn(100); {
		case r < 15:
			tiles[i] = terrain.Water
		case r < 30:
			tiles[i] = terrain.Forest
		}
	}
	heights, err := terrain.NewHeightMap(w, h, values)
	require.NoError(t, err)
	types, err := terrain.NewTypeMap(w, h, tiles)
	require.NoError(t, err)
	tr, err := terrain.New(heights, types, terrain.DefaultOptions())
	require.NoError(t, err)
	return tr
}

// fullMetrics returns the distance, slope and terrain options for tr.
func fullMetrics(tr *terrain.Terrain) []pathfind.Option {
	return []pathfind.Option{
		pathfind.WithMetric(1, metric.Distance{}),
		pathfind.WithMetric(2, metric.Slope{Heights: tr.Heights, Scale: 10, MaxSlope: 1}),
		pathfind.WithMetric(1, metric.DefaultTerrain(tr.Types)),
	}
}

// stepCost recomputes the weighted cost of e under cfg's metrics.
func stepCost(cfg pathfind.Config, e pathfind.Edge) float64 {
	var total float64
	for _, m := range cfg.Metrics {
		if m.Weight == 0 {
			continue
		}
		total += m.Weight * m.Metric.Evaluate(e)
	}
	return total
}

var sqrt2 = math.Sqrt2
