package pathfind

import (
	"container/heap"
	"math"
	"slices"
	"time"

	"k8s.io/klog/v2"
)

// noParent marks a cell without predecessor in the parent map.
const noParent = -1

// Compute runs a uniform-cost search for cfg and returns the cheapest path
// from cfg.Start to cfg.Goal, or the absent path (NotFound) when cfg is
// invalid or the goal cannot be reached. It never panics on bad input.
//
// Edge cost is the weighted sum of cfg.Metrics; edges whose cost is
// infinite, NaN or negative are never relaxed. With bridges enabled, the
// bridge edges leaving a settled cell are relaxed alongside its neighbors.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = Width×Height, E = V×d + bridges (d = 4 or 8).
//   - Space: O(V + E) for cost/parent maps and the lazy frontier.
func Compute(cfg Config) Path {
	p, _ := ComputeStats(cfg)
	return p
}

// ComputeStats is Compute that also returns the search statistics.
func ComputeStats(cfg Config) (Path, Stats) {
	began := time.Now()
	if err := cfg.Validate(); err != nil {
		klog.V(2).InfoS("Search rejected", "start", cfg.Start, "goal", cfg.Goal, "err", err)
		st := Stats{Cost: NoCost, Duration: time.Since(began), Err: err}
		if cfg.Observer != nil {
			cfg.Observer.ObserveSearch(st)
		}
		return NotFound(), st
	}

	r := newRunner(cfg)
	r.init()
	r.process()
	path := r.reconstruct()

	r.stats.Found = path.Found()
	r.stats.Cost = path.Cost
	r.stats.Duration = time.Since(began)
	klog.V(4).InfoS("Search finished",
		"start", cfg.Start, "goal", cfg.Goal, "found", r.stats.Found, "cost", r.stats.Cost,
		"settled", r.stats.Settled, "pushed", r.stats.Pushed, "stale", r.stats.Stale,
		"pruned", r.stats.Pruned, "bridges", r.stats.Bridges, "duration", r.stats.Duration)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(r.stats)
	}

	return path, r.stats
}

// runner holds the mutable state for a single search.
type runner struct {
	cfg     Config
	offsets [][2]int
	lengths []float64
	bridges *BridgeIndex
	cost    []float64 // best known cost per cell, +Inf when unvisited
	parent  []int32   // predecessor cell index, noParent when unset; Validate caps the grid at MaxInt32 cells
	pq      nodePQ
	seq     uint64
	start   int
	goal    int
	stats   Stats
}

func newRunner(cfg Config) *runner {
	n := cfg.Width * cfg.Height
	offsets := Offsets(cfg.Conn)
	lengths := make([]float64, len(offsets))
	for i, d := range offsets {
		lengths[i] = math.Hypot(float64(d[0]), float64(d[1]))
	}
	r := &runner{
		cfg:     cfg,
		offsets: offsets,
		lengths: lengths,
		cost:    make([]float64, n),
		parent:  make([]int32, n),
		pq:      make(nodePQ, 0, n),
		start:   cfg.Start.Y*cfg.Width + cfg.Start.X,
		goal:    cfg.Goal.Y*cfg.Width + cfg.Goal.X,
	}
	if cfg.AllowBridges {
		r.bridges = r.loadBridges()
		r.stats.Bridges = r.bridges.Len()
	}
	return r
}

// loadBridges draws the bridge edges for this search and keeps those whose
// endpoints lie in the grid and at least MinBridgeSpan cells apart, so a
// bridge never coincides with a neighbor move.
func (r *runner) loadBridges() *BridgeIndex {
	src := r.cfg.Bridges
	if src == nil {
		src = NewSeededBridgeGenerator(r.cfg.BridgeSeed, r.cfg.BridgeOptions...)
	}
	raw := src.Generate(r.cfg.Width, r.cfg.Height)
	edges := make([]Edge, 0, len(raw))
	short := 0
	for _, e := range raw {
		if !r.cfg.InBounds(e.From()) || !r.cfg.InBounds(e.To()) {
			continue
		}
		if bridgeSpan(e) < MinBridgeSpan {
			short++
			continue
		}
		if !e.Bridge || e.Length <= 0 {
			e = NewEdge(e.X1, e.Y1, e.X2, e.Y2, true)
		}
		edges = append(edges, e)
	}
	if short > 0 {
		klog.V(4).InfoS("Dropped bridges shorter than the minimum span", "count", short, "minSpan", MinBridgeSpan)
	}
	return NewBridgeIndex(edges)
}

// bridgeSpan is the Chebyshev distance between the endpoints of e.
func bridgeSpan(e Edge) int {
	return max(abs(e.X2-e.X1), abs(e.Y2-e.Y1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// init sets every cost to +Inf and every parent to noParent, then pushes the start at cost 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.cost {
		r.cost[i] = inf
		r.parent[i] = noParent
	}
	r.cost[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

func (r *runner) push(idx int, cost float64) {
	heap.Push(&r.pq, nodeItem{idx: idx, cost: cost, seq: r.seq})
	r.seq++
	r.stats.Pushed++
}

// process pops cells in cost order until the goal is popped or the frontier
// runs dry.
func (r *runner) process() {
	w, h := r.cfg.Width, r.cfg.Height
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.idx == r.goal {
			return
		}
		if item.cost > r.cost[item.idx] {
			r.stats.Stale++
			continue
		}
		r.stats.Settled++

		x, y := item.idx%w, item.idx/w
		for i, d := range r.offsets {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			r.relax(item.idx, item.cost, Edge{X1: x, Y1: y, X2: nx, Y2: ny, Length: r.lengths[i]})
		}
		if r.bridges != nil {
			for _, e := range r.bridges.From(Cell{x, y}) {
				r.relax(item.idx, item.cost, e)
			}
		}
	}
}

// relax offers e, leaving cell from at cost base, to the frontier.
func (r *runner) relax(from int, base float64, e Edge) {
	w := edgeCost(r.cfg.Metrics, e)
	if math.IsInf(w, 0) || math.IsNaN(w) || w < 0 {
		if w < 0 {
			klog.V(4).InfoS("Pruned negative edge cost", "edge", e, "cost", w)
		}
		r.stats.Pruned++
		return
	}
	to := e.Y2*r.cfg.Width + e.X2
	nc := base + w
	if nc >= r.cost[to] {
		return
	}
	r.cost[to] = nc
	r.parent[to] = int32(from)
	r.push(to, nc)
}

// reconstruct walks parent from goal back to start. It returns NotFound
// when the goal was never reached.
func (r *runner) reconstruct() Path {
	if math.IsInf(r.cost[r.goal], 1) {
		return NotFound()
	}
	w := r.cfg.Width
	points := make([]Cell, 0, 16)
	at := r.goal
	for at != r.start {
		points = append(points, Cell{at % w, at / w})
		p := r.parent[at]
		if p == noParent {
			return NotFound()
		}
		at = int(p)
	}
	points = append(points, Cell{at % w, at / w})
	slices.Reverse(points)

	return Path{Points: points, Cost: r.cost[r.goal]}
}
