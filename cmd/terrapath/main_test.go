package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/terrapath/pathfind"
)

// writeGray writes a w×h 16-bit grayscale PNG with pixel values from f.
func writeGray(t *testing.T, path string, w, h int, f func(x, y int) uint16) {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray16(x, y, color.Gray16{Y: f(x, y)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

// riverMap writes a 20×10 map whose column 10 lies below a 0.1 water plane.
func riverMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "river.png")
	writeGray(t, path, 20, 10, func(x, _ int) uint16 {
		if x == 10 {
			return 0
		}
		return 0x8000
	})
	return path
}

func flatMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flat.png")
	writeGray(t, path, 6, 6, func(int, int) uint16 { return 0x8000 })
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoute_JSON(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "terrapath.prom")
	out, err := run(t, "route", "--height", flatMap(t), "--start", "0,0", "--goal", "5,5",
		"--w-slope", "0", "--metrics-file", metrics)
	require.NoError(t, err)

	var report struct {
		Found  bool    `json:"found"`
		Cost   float64 `json:"cost"`
		Steps  int     `json:"steps"`
		Points []struct {
			X, Y int
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Found)
	assert.InDelta(t, 5, report.Cost, 1e-9)
	assert.Equal(t, 5, report.Steps)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `terrapath_searches_total{result="found"} 1`)
}

func TestRoute_GoalDefaultsToFarCorner(t *testing.T) {
	out, err := run(t, "route", "--height", flatMap(t), "--format", "geojson")
	require.NoError(t, err)
	assert.Contains(t, out, `"type":"Feature"`)
	assert.Contains(t, out, `"LineString"`)
}

func TestRoute_RiverBlocks(t *testing.T) {
	out, err := run(t, "route", "--height", riverMap(t), "--water-height", "0.1",
		"--start", "0,5", "--goal", "19,5", "--format", "yaml")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, false, report["found"])
	assert.Equal(t, pathfind.NoCost, report["cost"])
}

func TestRoute_BridgeSpansCrossRiver(t *testing.T) {
	out, err := run(t, "route", "--height", riverMap(t), "--water-height", "0.1",
		"--start", "0,5", "--goal", "19,5", "--bridges", "--seed", "1",
		"--min-span", "2", "--max-span", "4")
	require.NoError(t, err)

	var report struct {
		Found   bool `json:"found"`
		Bridges int  `json:"bridges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Found)
	assert.Positive(t, report.Bridges)

	_, err = run(t, "route", "--height", riverMap(t), "--bridges", "--min-span", "9", "--max-span", "3")
	require.ErrorIs(t, err, pathfind.ErrBadSpan)
}

func TestRoute_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "terrapath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("w-slope: 0\nw-distance: 2\nconn: 4\n"), 0o600))
	t.Setenv("TERRAPATH_FORMAT", "yaml")

	out, err := run(t, "route", "--config", cfgPath, "--height", flatMap(t), "--goal", "2,0")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, true, report["found"])
	// Two Conn4 steps of 1/√2, doubled by w-distance.
	assert.InDelta(t, 2*1.4142135623730951, report["cost"], 1e-9)
}

func TestRoute_Errors(t *testing.T) {
	_, err := run(t, "route")
	require.ErrorIs(t, err, errNoHeightMap)

	_, err = run(t, "route", "--height", flatMap(t), "--conn", "6")
	require.ErrorIs(t, err, errBadConn)

	_, err = run(t, "route", "--height", flatMap(t), "--goal", "3")
	require.ErrorIs(t, err, errBadCell)

	_, err = run(t, "route", "--height", flatMap(t), "--goal", "9,9")
	require.ErrorIs(t, err, pathfind.ErrGoalOutOfBounds)

	_, err = run(t, "route", "--height", flatMap(t), "--w-slope", "-1")
	require.ErrorIs(t, err, pathfind.ErrBadWeight)

	_, err = run(t, "route", "--height", filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBridges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writeGray(t, path, 80, 80, func(int, int) uint16 { return 0x8000 })

	out, err := run(t, "bridges", "--height", path, "--near", "40,40", "--radius", "40",
		"--min-span", "5", "--max-span", "20", "--seed", "3")
	require.NoError(t, err)

	var listing struct {
		Total   int             `json:"total"`
		Near    [2]int          `json:"near"`
		Bridges []bridgeListing `json:"bridges"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &listing))
	assert.Positive(t, listing.Total)
	assert.Equal(t, [2]int{40, 40}, listing.Near)
	require.NotEmpty(t, listing.Bridges)
	for _, b := range listing.Bridges {
		assert.Equal(t, "normal", b.Lands)
		assert.GreaterOrEqual(t, b.Length, 5.0)
	}

	// The same seed lists the same bridges.
	again, err := run(t, "bridges", "--height", path, "--near", "40,40", "--radius", "40",
		"--min-span", "5", "--max-span", "20", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = run(t, "bridges", "--height", path, "--min-span", "1")
	require.ErrorIs(t, err, pathfind.ErrBadSpan)
}

func TestRegions(t *testing.T) {
	out, err := run(t, "regions", "--height", riverMap(t), "--water-height", "0.1",
		"--start", "0,0", "--goal", "19,9")
	require.NoError(t, err)

	var sum regionSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 2, sum.Regions)
	assert.Equal(t, 100, sum.Largest)
	require.NotNil(t, sum.Connected)
	assert.False(t, *sum.Connected)
	assert.Equal(t, 0, *sum.Start)
	assert.Equal(t, 1, *sum.Goal)

	out, err = run(t, "regions", "--height", flatMap(t))
	require.NoError(t, err)
	assert.Equal(t, "largest: 36\nregions: 1\n", out)
}
