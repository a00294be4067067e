package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/terrapath/pathfind"
)

// BenchmarkCompute_Conn8 measures a corner-to-corner search on a random
// 256×256 terrain with the full metric stack.
// Complexity: O(W×H×log(W×H))
func BenchmarkCompute_Conn8(b *testing.B) {
	const n = 256
	tr := randomTerrain(b, n, n, 42)
	cfg := pathfind.NewConfig(pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: n - 1, Y: n - 1}, n, n,
		append(fullMetrics(tr), pathfind.WithConnectivity(pathfind.Conn8))...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pathfind.Compute(cfg)
	}
}

// BenchmarkCompute_Bridges adds the default bridge generator on a 512×512
// terrain, so generation and indexing are included in every iteration.
func BenchmarkCompute_Bridges(b *testing.B) {
	const n = 512
	tr := randomTerrain(b, n, n, 7)
	cfg := pathfind.NewConfig(pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: n - 1, Y: n - 1}, n, n,
		append(fullMetrics(tr), pathfind.WithConnectivity(pathfind.Conn8), pathfind.WithBridgeSeed(1))...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pathfind.Compute(cfg)
	}
}

// BenchmarkBridgeGenerator measures raw edge sampling on a 1024×1024 grid.
func BenchmarkBridgeGenerator(b *testing.B) {
	g := pathfind.NewBridgeGenerator(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Generate(1024, 1024)
	}
}
