package model

import (
	"bytes"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Geometry wraps a decoded GeoJSON geometry. A null geometry decodes to a
// Geometry with a nil T.
type Geometry struct {
	T geom.T
}

// UnmarshalJSON decodes any GeoJSON geometry type.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		g.T = nil
		return nil
	}
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return eris.Wrap(err, "model: decode geometry")
	}
	g.T = t
	return nil
}

// MarshalJSON encodes the geometry back to GeoJSON.
func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.T == nil {
		return []byte("null"), nil
	}
	b, err := geojson.Marshal(g.T)
	if err != nil {
		return nil, eris.Wrap(err, "model: encode geometry")
	}
	return b, nil
}

// Anchor returns the first coordinate of the geometry. For a well lateral
// this is the surface hole location.
func (g Geometry) Anchor() (lon, lat float64, ok bool) {
	if g.T == nil {
		return 0, 0, false
	}
	flat := g.T.FlatCoords()
	if len(flat) < 2 {
		return 0, 0, false
	}
	return flat[0], flat[1], true
}

// Feature is a GeoJSON feature with typed properties.
type Feature[P any] struct {
	Type       string   `json:"type"`
	ID         any      `json:"id,omitempty"`
	Geometry   Geometry `json:"geometry"`
	Properties P        `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection with typed properties.
// A null features member decodes as an empty collection.
type FeatureCollection[P any] struct {
	Type     string       `json:"type"`
	Features []Feature[P] `json:"features"`
}

// Len returns the number of features; nil collections are empty.
func (fc *FeatureCollection[P]) Len() int {
	if fc == nil {
		return 0
	}
	return len(fc.Features)
}

// Filter returns a new collection holding the features keep accepts.
func (fc *FeatureCollection[P]) Filter(keep func(Feature[P]) bool) *FeatureCollection[P] {
	out := &FeatureCollection[P]{Type: "FeatureCollection"}
	if fc == nil {
		return out
	}
	for _, f := range fc.Features {
		if keep(f) {
			out.Features = append(out.Features, f)
		}
	}
	return out
}
