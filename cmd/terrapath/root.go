package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

const envPrefix = "TERRAPATH"

var (
	errNoHeightMap = errors.New("--height is required")
	errBadCell     = errors.New("cell must be written as x,y")
	errBadConn     = errors.New("--conn must be 4 or 8")
)

// rootOptions carries state shared by all subcommands.
type rootOptions struct {
	v          *viper.Viper
	configFile string
	out        io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	o := &rootOptions{v: viper.New(), out: out}

	cmd := &cobra.Command{
		Use:           "terrapath",
		Short:         "Plan routes over height-map terrain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load(cmd)
		},
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "YAML file with flag values")
	addTerrainFlags(pf)

	cmd.AddCommand(
		newRouteCommand(o),
		newBridgesCommand(o),
		newRegionsCommand(o),
	)
	return cmd
}

func addTerrainFlags(f *pflag.FlagSet) {
	f.String("height", "", "Grayscale elevation image (PNG or JPEG)")
	f.String("types", "", "Grayscale forest mask image; black pixels are forest")
	f.Float64("height-scale", 1, "World height of a white elevation pixel")
	f.Float64("water-height", -1, "World height of the water plane")
	f.Float64("world-size", 100, "World extent of the map along X and Z")
}

func addConnFlag(f *pflag.FlagSet) {
	f.Int("conn", 8, "Neighbor connectivity, 4 or 8")
}

// addBridgeFlags registers the bridge sampling flags shared by route and
// bridges, so both commands draw the same candidates for the same values.
func addBridgeFlags(f *pflag.FlagSet) {
	f.Int64("seed", 0, "Bridge sampling seed; 0 selects a fixed default")
	f.Int("min-span", pathfind.DefaultMinSpan, "Shortest bridge in cells")
	f.Int("max-span", pathfind.DefaultMaxSpan, "Longest bridge in cells")
}

// load merges the config file, TERRAPATH_* environment and flags into o.v.
// Flags set on the command line win over the environment, which wins over
// the file.
func (o *rootOptions) load(cmd *cobra.Command) error {
	if o.configFile != "" {
		o.v.SetConfigFile(o.configFile)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", o.configFile, err)
		}
	}
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()
	return o.v.BindPFlags(cmd.Flags())
}

// loadTerrain reads the elevation and forest images named by the flags.
func (o *rootOptions) loadTerrain() (*terrain.Terrain, error) {
	heightPath := o.v.GetString("height")
	if heightPath == "" {
		return nil, errNoHeightMap
	}
	size := o.v.GetFloat64("world-size")
	opts := terrain.DefaultOptions()
	opts.HeightScale = o.v.GetFloat64("height-scale")
	opts.WaterHeight = o.v.GetFloat64("water-height")
	opts.WorldSize = r2.Vec{X: size, Y: size}
	opts.Origin = r3.Vec{X: -size / 2, Z: -size / 2}

	t, err := terrain.LoadImages(heightPath, o.v.GetString("types"), opts)
	if err != nil {
		return nil, err
	}
	klog.V(2).InfoS("Loaded terrain", "width", t.Width(), "height", t.Height(),
		"water", t.Types.Count(terrain.Water), "forest", t.Types.Count(terrain.Forest))
	return t, nil
}

// cell reads flag key as "x,y". An empty value yields def.
func (o *rootOptions) cell(key string, def pathfind.Cell) (pathfind.Cell, error) {
	s := strings.TrimSpace(o.v.GetString(key))
	if s == "" {
		return def, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return pathfind.Cell{}, fmt.Errorf("--%s %q: %w", key, s, errBadCell)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return pathfind.Cell{}, fmt.Errorf("--%s %q: %w", key, s, errBadCell)
	}
	return pathfind.Cell{X: x, Y: y}, nil
}

func (o *rootOptions) conn() (pathfind.Connectivity, error) {
	switch o.v.GetInt("conn") {
	case 4:
		return pathfind.Conn4, nil
	case 8:
		return pathfind.Conn8, nil
	default:
		return 0, errBadConn
	}
}

// bridgeOptions turns --min-span and --max-span into generator options.
// It checks the range first because WithSpan panics on a bad one.
func (o *rootOptions) bridgeOptions() ([]pathfind.BridgeOption, error) {
	lo, hi := o.v.GetInt("min-span"), o.v.GetInt("max-span")
	if lo < pathfind.MinBridgeSpan || hi < lo {
		return nil, fmt.Errorf("--min-span %d --max-span %d: %w", lo, hi, pathfind.ErrBadSpan)
	}
	return []pathfind.BridgeOption{pathfind.WithSpan(lo, hi)}, nil
}
