package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/terrapath/export"
	"github.com/katalvlaran/terrapath/job"
	"github.com/katalvlaran/terrapath/metric"
	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/promstats"
)

func newRouteCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route between two cells",
		Long: `Find the cheapest route between two cells.

The cost of every step is w-distance×Distance + w-slope×Slope + w-terrain×Terrain.
Water is impassable unless --bridges lets the search jump over it along
randomly sampled straight bridges, each charged bridge-factor per cell spanned.
Bridge candidates follow --seed, --min-span and --max-span, the same as the
bridges command lists them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runRoute(cmd.Context())
		},
	}
	f := cmd.Flags()
	f.String("start", "0,0", "Start cell as x,y")
	f.String("goal", "", "Goal cell as x,y (default: the far corner)")
	addConnFlag(f)
	f.Bool("bridges", false, "Allow long-range bridge edges")
	addBridgeFlags(f)
	f.Float64("w-distance", 1, "Weight of the distance metric")
	f.Float64("w-slope", 1, "Weight of the slope metric")
	f.Float64("w-terrain", 1, "Weight of the terrain metric")
	f.Float64("max-slope", 1, "Slope that scores 1 in the slope metric")
	f.Float64("forest-penalty", metric.DefaultForestPenalty, "Terrain cost of a step touching forest")
	f.Float64("bridge-factor", metric.DefaultBridgeFactor, "Terrain cost per cell of bridge length")
	f.String("format", string(export.FormatJSON), "Output format: json, yaml or geojson")
	f.String("metrics-file", "", "Write Prometheus metrics of the search to this textfile")
	return cmd
}

func (o *rootOptions) runRoute(ctx context.Context) error {
	t, err := o.loadTerrain()
	if err != nil {
		return err
	}
	start, err := o.cell("start", pathfind.Cell{})
	if err != nil {
		return err
	}
	goal, err := o.cell("goal", pathfind.Cell{X: t.Width() - 1, Y: t.Height() - 1})
	if err != nil {
		return err
	}
	conn, err := o.conn()
	if err != nil {
		return err
	}
	spans, err := o.bridgeOptions()
	if err != nil {
		return err
	}

	collector := promstats.New()
	opts := []pathfind.Option{
		pathfind.WithConnectivity(conn),
		pathfind.WithMetric(o.v.GetFloat64("w-distance"), metric.Distance{}),
		pathfind.WithMetric(o.v.GetFloat64("w-slope"), metric.Slope{
			Heights:  t.Heights,
			Scale:    t.HeightScale,
			MaxSlope: o.v.GetFloat64("max-slope"),
		}),
		pathfind.WithMetric(o.v.GetFloat64("w-terrain"), metric.Terrain{
			Types:         t.Types,
			ForestPenalty: o.v.GetFloat64("forest-penalty"),
			BridgeFactor:  o.v.GetFloat64("bridge-factor"),
		}),
		pathfind.WithObserver(collector),
	}
	if o.v.GetBool("bridges") {
		opts = append(opts,
			pathfind.WithBridgeSeed(o.v.GetInt64("seed")),
			pathfind.WithBridgeOptions(spans...),
		)
	}
	cfg := pathfind.NewConfig(start, goal, t.Width(), t.Height(), opts...)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid route request: %w", err)
	}

	j := job.Start(cfg)
	p, err := j.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting for route: %w", err)
	}
	if st, ok := j.Stats(); ok {
		klog.V(1).InfoS("Route search done", "found", st.Found, "cost", st.Cost,
			"settled", st.Settled, "bridges", st.Bridges, "duration", st.Duration)
	}

	data, err := export.NewReport(p, t).Marshal(export.Format(o.v.GetString("format")))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(o.out, string(data)); err != nil {
		return err
	}

	if path := o.v.GetString("metrics-file"); path != "" {
		if err := collector.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
