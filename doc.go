// Package terrapath plans walking routes over height-map terrain.
//
// A route search runs Dijkstra over a 4- or 8-connected grid. Every step is
// priced by a weighted sum of pluggable metrics (distance, slope, terrain
// class, arbitrary scalar fields). Water is impassable on foot, and the
// search can jump over it along randomly sampled straight bridges.
//
// Packages:
//
//	pathfind/      Config, Compute, Path, Edge, Metric, bridge generation and indexing
//	metric/        Distance, Slope, Terrain and Field metrics, response Curves
//	terrain/       HeightMap, TypeMap, classification, regions, normals, image loading
//	job/           background searches (Start/Poll/Wait) and bounded batches (RunAll)
//	export/        GeoJSON, JSON and YAML reports of a route
//	promstats/     Prometheus collector fed by search statistics
//	cmd/terrapath  command-line front end (route, bridges, regions)
//
// Quick start:
//
//	cfg := pathfind.NewConfig(start, goal, t.Width(), t.Height(),
//		pathfind.WithConnectivity(pathfind.Conn8),
//		pathfind.WithMetric(1, metric.Distance{}),
//		pathfind.WithMetric(2, metric.Slope{Heights: t.Heights, Scale: t.HeightScale}),
//		pathfind.WithMetric(1, metric.DefaultTerrain(t.Types)),
//	)
//	p := pathfind.Compute(cfg)
//	if p.Found() { ... }
//
// Compute is synchronous and keeps no shared state, so independent searches
// may run concurrently on the same read-only terrain.
package terrapath
