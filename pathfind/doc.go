// Package pathfind implements a weighted, multi-criteria shortest-path search
// over a 2D grid.
//
// Overview:
//
//   - A search is described by an immutable Config (start, goal, grid size,
//     connectivity, weighted metrics, bridge toggle) and run by Compute.
//   - Compute is a label-setting (Dijkstra) search: a binary-heap frontier
//     with lazy deletion of stale entries, a dense cost map and a parent map
//     storing the predecessor cell of every reached cell.
//   - Edge cost is Σ weight×metric(edge). A metric may return +Inf to forbid
//     an edge; such edges are pruned and never relaxed.
//   - Bridges are long-range edges sampled by a BridgeGenerator from an
//     injected RandSource. The generator emits each bridge in both
//     directions; Compute uses exactly the edges it is given.
//
// Results:
//
//   - Path{Points, Cost}. The absent path has Cost == NoCost and is returned
//     for invalid configs and unreachable goals alike; use Config.Validate
//     (or Stats.Err from ComputeStats) to tell them apart.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = Width×Height, E = V×d + bridge edges.
//   - Space: O(V + E).
//
// Concurrency:
//
//   - Compute is synchronous and owns all of its working state. Concurrent
//     calls are safe as long as the metrics only read shared grid data and
//     no two searches share a RandSource. WithBridgeSeed gives every call its
//     own generator.
//
// Example:
//
//	cfg := pathfind.NewConfig(
//	    pathfind.Cell{X: 0, Y: 0}, pathfind.Cell{X: 9, Y: 9}, 10, 10,
//	    pathfind.WithConnectivity(pathfind.Conn8),
//	    pathfind.WithMetric(1, metric.Distance{}),
//	)
//	if p := pathfind.Compute(cfg); p.Found() {
//	    fmt.Println(p.Cost, len(p.Points))
//	}
package pathfind
