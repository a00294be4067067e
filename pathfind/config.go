package pathfind

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors reported by Config.Validate. Compute never returns them;
// a config that fails validation yields the absent path.
var (
	// ErrBadSize indicates a grid width or height below 1, or more than
	// MaxCells cells in total.
	ErrBadSize = errors.New("pathfind: grid must be at least 1x1 and hold at most 2^31-1 cells")

	// ErrStartOutOfBounds indicates a start cell outside the grid.
	ErrStartOutOfBounds = errors.New("pathfind: start cell out of bounds")

	// ErrGoalOutOfBounds indicates a goal cell outside the grid.
	ErrGoalOutOfBounds = errors.New("pathfind: goal cell out of bounds")

	// ErrNoMetrics indicates a config without any cost metric.
	ErrNoMetrics = errors.New("pathfind: at least one metric is required")

	// ErrBadWeight indicates a negative, NaN or infinite metric weight, or a nil metric.
	ErrBadWeight = errors.New("pathfind: metric weight must be finite and non-negative")

	// ErrBadConnectivity indicates a Connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("pathfind: connectivity must be Conn4 or Conn8")
)

// MaxCells bounds Width*Height so every cell index fits the int32 parent map.
const MaxCells = math.MaxInt32

// BridgeSource produces the supplementary bridge edges for one search.
// Edges are used as returned, minus those out of bounds or shorter than
// MinBridgeSpan: a source that wants two-way bridges must emit both directions.
type BridgeSource interface {
	Generate(width, height int) []Edge
}

// Config describes one search. Build it with NewConfig and treat it as a
// value: Compute never modifies it.
//
//   - Start, Goal: endpoints of the route.
//   - Width, Height: grid dimensions.
//   - Conn: neighbor connectivity (Conn4 by default).
//   - Metrics: weighted cost terms summed per edge.
//   - AllowBridges: enables bridge edges from Bridges, or from a generator
//     seeded with BridgeSeed and tuned by BridgeOptions when Bridges is nil.
//   - Observer: optional hook receiving Stats once per search.
type Config struct {
	Start, Goal   Cell
	Width, Height int
	Conn          Connectivity
	Metrics       []WeightedMetric
	AllowBridges  bool
	Bridges       BridgeSource
	BridgeSeed    int64
	BridgeOptions []BridgeOption
	Observer      Observer
}

// Option represents a functional option for configuring a search.
type Option func(*Config)

// WithConnectivity sets the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(cfg *Config) {
		cfg.Conn = c
	}
}

// WithMetric appends m with the given weight. Metrics are summed in the
// order they were added.
func WithMetric(weight float64, m Metric) Option {
	return func(cfg *Config) {
		cfg.Metrics = append(cfg.Metrics, WeightedMetric{Weight: weight, Metric: m})
	}
}

// WithBridges enables bridge edges produced by src.
func WithBridges(src BridgeSource) Option {
	return func(cfg *Config) {
		cfg.AllowBridges = true
		cfg.Bridges = src
	}
}

// WithBridgeSeed enables bridge edges from a default BridgeGenerator seeded
// with seed. Each Compute builds its own generator, so the same Config can
// be searched concurrently. Seed 0 selects a fixed default seed.
func WithBridgeSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.AllowBridges = true
		cfg.Bridges = nil
		cfg.BridgeSeed = seed
	}
}

// WithBridgeOptions tunes the generator WithBridgeSeed builds, e.g. with
// WithSpan or WithSamples. It has no effect on a source set by WithBridges.
func WithBridgeOptions(opts ...BridgeOption) Option {
	return func(cfg *Config) {
		cfg.BridgeOptions = append(cfg.BridgeOptions, opts...)
	}
}

// AllowBridges toggles bridge edges without changing their source.
func AllowBridges(allow bool) Option {
	return func(cfg *Config) {
		cfg.AllowBridges = allow
	}
}

// WithObserver installs o to receive search statistics.
func WithObserver(o Observer) Option {
	return func(cfg *Config) {
		cfg.Observer = o
	}
}

// NewConfig returns the Config for a search from start to goal on a
// width×height grid. Defaults: Conn4, no bridges, no metrics.
// The resulting Metrics and BridgeOptions slices are owned by the Config.
func NewConfig(start, goal Cell, width, height int, opts ...Option) Config {
	cfg := Config{
		Start:  start,
		Goal:   goal,
		Width:  width,
		Height: height,
		Conn:   Conn4,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Metrics = append([]WeightedMetric(nil), cfg.Metrics...)
	cfg.BridgeOptions = append([]BridgeOption(nil), cfg.BridgeOptions...)

	return cfg
}

// InBounds reports whether c lies within the configured grid.
func (cfg Config) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < cfg.Width && c.Y >= 0 && c.Y < cfg.Height
}

// Validate checks the config, in order: size, start, goal, connectivity,
// metrics. It returns nil or one of the sentinel errors, wrapped with context.
func (cfg Config) Validate() error {
	if cfg.Width < 1 || cfg.Height < 1 || cfg.Width > MaxCells/cfg.Height {
		return fmt.Errorf("%w: got %dx%d", ErrBadSize, cfg.Width, cfg.Height)
	}
	if !cfg.InBounds(cfg.Start) {
		return fmt.Errorf("%w: %v on %dx%d", ErrStartOutOfBounds, cfg.Start, cfg.Width, cfg.Height)
	}
	if !cfg.InBounds(cfg.Goal) {
		return fmt.Errorf("%w: %v on %dx%d", ErrGoalOutOfBounds, cfg.Goal, cfg.Width, cfg.Height)
	}
	if cfg.Conn != Conn4 && cfg.Conn != Conn8 {
		return fmt.Errorf("%w: got %d", ErrBadConnectivity, cfg.Conn)
	}
	if len(cfg.Metrics) == 0 {
		return ErrNoMetrics
	}
	for i, m := range cfg.Metrics {
		if m.Metric == nil || m.Weight < 0 || math.IsNaN(m.Weight) || math.IsInf(m.Weight, 0) {
			return fmt.Errorf("%w: metric #%d weight=%v", ErrBadWeight, i, m.Weight)
		}
	}

	return nil
}
