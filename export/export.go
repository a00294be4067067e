// Package export renders a found route for consumers outside the search:
// an orb.LineString in world X/Z, a GeoJSON Feature, and a Report that
// marshals to JSON, YAML or GeoJSON.
package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

// Format names a Report encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatGeoJSON Format = "geojson"
)

var (
	// ErrUnknownFormat is returned by Report.Marshal for an unsupported Format.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrNoGeometry is returned when a Report not built by NewReport is
	// marshalled as GeoJSON.
	ErrNoGeometry = errors.New("export: report has no geometry")
)

// LineString projects p onto the terrain's horizontal plane: one orb.Point
// per path point holding world (X, Z). An absent path yields an empty line.
func LineString(p pathfind.Path, t *terrain.Terrain) orb.LineString {
	ls := make(orb.LineString, 0, len(p.Points))
	for _, c := range p.Points {
		w := t.GridToWorld(c.X, c.Y)
		ls = append(ls, orb.Point{w.X, w.Z})
	}
	return ls
}

// Feature wraps LineString(p, t) in a GeoJSON feature with the properties
// "found", "cost", "elevations" (world Y per point) and "bridges" (number of
// bridge steps).
func Feature(p pathfind.Path, t *terrain.Terrain) *geojson.Feature {
	f := geojson.NewFeature(LineString(p, t))
	elevations := make([]float64, len(p.Points))
	for i, c := range p.Points {
		elevations[i] = t.GridToWorld(c.X, c.Y).Y
	}
	f.Properties["found"] = p.Found()
	f.Properties["cost"] = p.Cost
	f.Properties["elevations"] = elevations
	f.Properties["bridges"] = countBridges(p)
	return f
}

// Waypoint is one path point in a Report.
type Waypoint struct {
	X      int        `json:"x"`
	Y      int        `json:"y"`
	World  [3]float64 `json:"world"`
	Tile   string     `json:"tile"`
	Bridge bool       `json:"bridge,omitempty"` // reached by a bridge step
}

// Report is a self-describing summary of one search result.
type Report struct {
	Found   bool       `json:"found"`
	Cost    float64    `json:"cost"`
	Steps   int        `json:"steps"`
	Bridges int        `json:"bridges"`
	Points  []Waypoint `json:"points"`

	feature *geojson.Feature
}

// NewReport summarises p over t.
func NewReport(p pathfind.Path, t *terrain.Terrain) Report {
	r := Report{
		Found:   p.Found(),
		Cost:    p.Cost,
		Bridges: countBridges(p),
		Points:  make([]Waypoint, len(p.Points)),
		feature: Feature(p, t),
	}
	if n := len(p.Points); n > 0 {
		r.Steps = n - 1
	}
	steps := p.Steps()
	for i, c := range p.Points {
		w := t.GridToWorld(c.X, c.Y)
		r.Points[i] = Waypoint{
			X:     c.X,
			Y:     c.Y,
			World: [3]float64{w.X, w.Y, w.Z},
			Tile:  t.Types.At(c.X, c.Y).String(),
		}
		if i > 0 {
			r.Points[i].Bridge = steps[i-1].Bridge
		}
	}
	return r
}

// Marshal encodes r in format.
func (r Report) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatGeoJSON:
		if r.feature == nil {
			return nil, ErrNoGeometry
		}
		return r.feature.MarshalJSON()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func countBridges(p pathfind.Path) int {
	n := 0
	for _, e := range p.Steps() {
		if e.Bridge {
			n++
		}
	}
	return n
}
