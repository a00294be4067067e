package pathfind

// Metric scores a single edge. Implementations must be pure and safe for
// concurrent use; +Inf forbids the edge.
type Metric interface {
	Evaluate(e Edge) float64
}

// MetricFunc adapts an ordinary function to Metric.
type MetricFunc func(e Edge) float64

// Evaluate calls f(e).
func (f MetricFunc) Evaluate(e Edge) float64 { return f(e) }

// WeightedMetric pairs a Metric with its non-negative weight.
type WeightedMetric struct {
	Weight float64
	Metric Metric
}

// edgeCost sums weight×metric over ms. A zero weight contributes exactly 0,
// even for an infinite metric value.
func edgeCost(ms []WeightedMetric, e Edge) float64 {
	var total float64
	for _, m := range ms {
		v := m.Metric.Evaluate(e)
		if m.Weight == 0 {
			continue
		}
		total += m.Weight * v
	}
	return total
}
