package main

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

type regionSummary struct {
	Regions   int   `json:"regions"`
	Largest   int   `json:"largest"`
	Start     *int  `json:"start,omitempty"`
	Goal      *int  `json:"goal,omitempty"`
	Connected *bool `json:"connected,omitempty"`
}

func newRegionsCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Count dry-land regions and check whether two cells share one",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.runRegions()
		},
	}
	f := cmd.Flags()
	f.String("start", "", "Optional start cell as x,y")
	f.String("goal", "", "Optional goal cell as x,y")
	addConnFlag(f)
	return cmd
}

func (o *rootOptions) runRegions() error {
	t, err := o.loadTerrain()
	if err != nil {
		return err
	}
	conn, err := o.conn()
	if err != nil {
		return err
	}
	rm := terrain.Regions(t.Types, conn)

	sum := regionSummary{Regions: rm.Count()}
	for l := 0; l < rm.Count(); l++ {
		sum.Largest = max(sum.Largest, rm.Size(l))
	}
	if o.v.GetString("start") != "" && o.v.GetString("goal") != "" {
		start, err := o.cell("start", pathfind.Cell{})
		if err != nil {
			return err
		}
		goal, err := o.cell("goal", pathfind.Cell{})
		if err != nil {
			return err
		}
		a, b := rm.Label(start.X, start.Y), rm.Label(goal.X, goal.Y)
		same := rm.Same(start, goal)
		sum.Start, sum.Goal, sum.Connected = &a, &b, &same
	}

	data, err := yaml.Marshal(sum)
	if err != nil {
		return err
	}
	_, err = o.out.Write(data)
	return err
}
