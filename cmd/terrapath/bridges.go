package main

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/terrapath/pathfind"
)

// bridgeListing is one bridge candidate as printed by the bridges command.
type bridgeListing struct {
	From   [2]int  `json:"from"`
	To     [2]int  `json:"to"`
	Length float64 `json:"length"`
	Lands  string  `json:"lands"`
}

func newBridgesCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridges",
		Short: "List the bridge candidates near a cell",
		Long: `List the bridge candidates near a cell.

With the same --seed, --min-span and --max-span, "route --bridges" samples
exactly these candidates.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.runBridges()
		},
	}
	f := cmd.Flags()
	f.String("near", "", "Cell to search around as x,y (default: the map centre)")
	f.Float64("radius", 10, "Search radius in cells")
	addBridgeFlags(f)
	return cmd
}

func (o *rootOptions) runBridges() error {
	t, err := o.loadTerrain()
	if err != nil {
		return err
	}
	near, err := o.cell("near", pathfind.Cell{X: t.Width() / 2, Y: t.Height() / 2})
	if err != nil {
		return err
	}
	spans, err := o.bridgeOptions()
	if err != nil {
		return err
	}

	gen := pathfind.NewSeededBridgeGenerator(o.v.GetInt64("seed"), spans...)
	idx := pathfind.NewBridgeIndex(gen.Generate(t.Width(), t.Height()))
	found := idx.Near(near, o.v.GetFloat64("radius"))

	listing := make([]bridgeListing, 0, len(found))
	for _, e := range found {
		listing = append(listing, bridgeListing{
			From:   [2]int{e.X1, e.Y1},
			To:     [2]int{e.X2, e.Y2},
			Length: e.Length,
			Lands:  t.Types.At(e.X2, e.Y2).String(),
		})
	}
	data, err := yaml.Marshal(struct {
		Total   int             `json:"total"`
		Near    [2]int          `json:"near"`
		Bridges []bridgeListing `json:"bridges"`
	}{idx.Len(), [2]int{near.X, near.Y}, listing})
	if err != nil {
		return err
	}
	_, err = o.out.Write(data)
	return err
}
