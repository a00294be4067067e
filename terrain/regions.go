package terrain

import "github.com/katalvlaran/terrapath/pathfind"

// NoRegion labels Water cells in a RegionMap.
const NoRegion = -1

// RegionMap labels every dry cell with the index of its connected region.
// Two cells with the same label are reachable from each other on foot.
type RegionMap struct {
	width, height int
	labels        []int
	sizes         []int
}

// Regions finds all contiguous regions of non-Water cells under conn.
// Regions are numbered in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func Regions(types *TypeMap, conn pathfind.Connectivity) *RegionMap {
	total := types.width * types.height
	rm := &RegionMap{width: types.width, height: types.height, labels: make([]int, total)}
	for i := range rm.labels {
		rm.labels[i] = NoRegion
	}
	offsets := pathfind.Offsets(conn)
	queue := make([]int, 0, 64)

	for i0, t := range types.tiles {
		if t == Water || rm.labels[i0] != NoRegion {
			continue
		}
		label := len(rm.sizes)
		rm.labels[i0] = label
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%types.width, u/types.width
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !types.InBounds(vx, vy) {
					continue
				}
				v := vy*types.width + vx
				if types.tiles[v] == Water || rm.labels[v] != NoRegion {
					continue
				}
				rm.labels[v] = label
				queue = append(queue, v)
			}
		}
		rm.sizes = append(rm.sizes, len(queue))
	}
	return rm
}

// Count returns the number of regions.
func (rm *RegionMap) Count() int { return len(rm.sizes) }

// Size returns the number of cells in region label, or 0 if label is unknown.
func (rm *RegionMap) Size(label int) int {
	if label < 0 || label >= len(rm.sizes) {
		return 0
	}
	return rm.sizes[label]
}

// Label returns the region of (x,y), or NoRegion for Water and out-of-bounds cells.
func (rm *RegionMap) Label(x, y int) int {
	if x < 0 || x >= rm.width || y < 0 || y >= rm.height {
		return NoRegion
	}
	return rm.labels[y*rm.width+x]
}

// Same reports whether a and b are dry cells of the same region.
func (rm *RegionMap) Same(a, b pathfind.Cell) bool {
	la := rm.Label(a.X, a.Y)
	return la != NoRegion && la == rm.Label(b.X, b.Y)
}
