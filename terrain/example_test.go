package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

// ExampleRegions labels dry land split by a river column.
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleRegions() {
	heights, _ := terrain.HeightMapFromRows([][]float64{
		{0.6, 0.0, 0.7},
		{0.5, 0.0, 0.8},
	})
	types, _ := terrain.Classify(heights, nil, 1, 0.1)

	rm := terrain.Regions(types, pathfind.Conn4)
	fmt.Println("regions:", rm.Count())
	fmt.Println("water:", types.Count(terrain.Water))
	fmt.Println("same bank:", rm.Same(pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: 0, Y: 1}))
	fmt.Println("across:", rm.Same(pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: 2, Y: 1}))
	// Output:
	// regions: 2
	// water: 2
	// same bank: true
	// across: false
}
