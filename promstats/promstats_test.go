package promstats_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/metric"
	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/promstats"
)

func TestCollector_ObservesSearches(t *testing.T) {
	c := promstats.New()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	opts := []pathfind.Option{
		pathfind.WithMetric(1, metric.Distance{}),
		pathfind.WithObserver(c),
	}
	// One found, one invalid (goal outside), one unreachable (metric forbids all moves).
	pathfind.Compute(pathfind.NewConfig(pathfind.Cell{}, pathfind.Cell{X: 3, Y: 3}, 4, 4, opts...))
	pathfind.Compute(pathfind.NewConfig(pathfind.Cell{}, pathfind.Cell{X: 9, Y: 9}, 4, 4, opts...))
	wall := pathfind.MetricFunc(func(pathfind.Edge) float64 { return -1 })
	pathfind.Compute(pathfind.NewConfig(pathfind.Cell{}, pathfind.Cell{X: 3, Y: 3}, 4, 4,
		append(opts, pathfind.WithMetric(1, wall))...))

	expected := `
# HELP terrapath_searches_total Number of route searches by result.
# TYPE terrapath_searches_total counter
terrapath_searches_total{result="found"} 1
terrapath_searches_total{result="invalid"} 1
terrapath_searches_total{result="unreachable"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "terrapath_searches_total"))

	// Invalid searches are counted but not timed.
	n, err := testutil.GatherAndCount(reg, "terrapath_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_Gauges(t *testing.T) {
	c := promstats.New()
	c.ObserveSearch(pathfind.Stats{Found: true, Settled: 40, Pruned: 3, Bridges: 12, Duration: time.Millisecond})
	c.ObserveSearch(pathfind.Stats{Found: false, Settled: 10, Pruned: 2, Bridges: 7})

	expected := `
# HELP terrapath_bridge_edges Bridge edges indexed by the most recent search.
# TYPE terrapath_bridge_edges gauge
terrapath_bridge_edges 7
# HELP terrapath_pruned_edges_total Edges skipped because their cost was infinite, NaN or negative.
# TYPE terrapath_pruned_edges_total counter
terrapath_pruned_edges_total 5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"terrapath_bridge_edges", "terrapath_pruned_edges_total"))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := promstats.New()
	c.ObserveSearch(pathfind.Stats{Found: true, Settled: 4})

	path := filepath.Join(t.TempDir(), "terrapath.prom")
	require.NoError(t, c.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `terrapath_searches_total{result="found"} 1`)
	assert.Contains(t, string(data), "terrapath_settled_cells_count 1")
}
