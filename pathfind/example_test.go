// Package pathfind_test shows how to configure and run a search.
// Each example is runnable via “go test -run Example”.
package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/terrapath/metric"
	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

// ExampleCompute walks diagonally across a flat 3×3 grid with the distance
// metric only. Each diagonal step normalises to 1, so the total cost is 2.
func ExampleCompute() {
	// 1) Describe the search: corners of a 3×3 grid, diagonal moves allowed.
	cfg := pathfind.NewConfig(
		pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: 2, Y: 2}, 3, 3,
		pathfind.WithConnectivity(pathfind.Conn8),
		pathfind.WithMetric(1, metric.Distance{}),
	)

	// 2) Run it. Compute never panics; an invalid config yields NotFound.
	p := pathfind.Compute(cfg)

	fmt.Printf("found=%v cost=%.2f points=%v\n", p.Found(), p.Cost, p.Points)
	// Output: found=true cost=2.00 points=[{0 0} {1 1} {2 2}]
}

// ExampleCompute_blocked shows the absent path when a water row separates
// start and goal and bridges are off.
func ExampleCompute_blocked() {
	types, _ := terrain.TypeMapFromRows([][]terrain.TileType{
		{terrain.Normal, terrain.Normal, terrain.Normal},
		{terrain.Water, terrain.Water, terrain.Water},
		{terrain.Normal, terrain.Normal, terrain.Normal},
	})
	cfg := pathfind.NewConfig(
		pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: 2, Y: 2}, 3, 3,
		pathfind.WithConnectivity(pathfind.Conn8),
		pathfind.WithMetric(1, metric.Distance{}),
		pathfind.WithMetric(1, metric.DefaultTerrain(types)),
	)

	p, st := pathfind.ComputeStats(cfg)
	fmt.Printf("found=%v cost=%v settled=%d\n", p.Found(), p.Cost, st.Settled)
	// Output: found=false cost=-1 settled=3
}
