// Package promstats exports search statistics as Prometheus metrics.
// A Collector is a pathfind.Observer: pass it with pathfind.WithObserver and
// register it with any prometheus.Registerer.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/terrapath/pathfind"
)

const namespace = "terrapath"

// Result label values of terrapath_searches_total.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultInvalid     = "invalid"
)

// Collector accumulates pathfind.Stats. It is safe for concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	settled  prometheus.Histogram
	pruned   prometheus.Counter
	bridges  prometheus.Gauge
}

var _ prometheus.Collector = (*Collector)(nil)
var _ pathfind.Observer = (*Collector)(nil)

// New returns an unregistered Collector.
func New() *Collector {
	return &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Number of route searches by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of valid route searches.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		settled: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settled_cells",
			Help:      "Cells settled per valid route search.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pruned_edges_total",
			Help:      "Edges skipped because their cost was infinite, NaN or negative.",
		}),
		bridges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bridge_edges",
			Help:      "Bridge edges indexed by the most recent search.",
		}),
	}
}

// ObserveSearch implements pathfind.Observer.
func (c *Collector) ObserveSearch(st pathfind.Stats) {
	switch {
	case st.Err != nil:
		c.searches.WithLabelValues(ResultInvalid).Inc()
		return
	case st.Found:
		c.searches.WithLabelValues(ResultFound).Inc()
	default:
		c.searches.WithLabelValues(ResultUnreachable).Inc()
	}
	c.duration.Observe(st.Duration.Seconds())
	c.settled.Observe(float64(st.Settled))
	c.pruned.Add(float64(st.Pruned))
	c.bridges.Set(float64(st.Bridges))
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.searches.Describe(ch)
	c.duration.Describe(ch)
	c.settled.Describe(ch)
	c.pruned.Describe(ch)
	c.bridges.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.searches.Collect(ch)
	c.duration.Collect(ch)
	c.settled.Collect(ch)
	c.pruned.Collect(ch)
	c.bridges.Collect(ch)
}

// WriteTextfile gathers c into a fresh registry and writes it to path in the
// node_exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
