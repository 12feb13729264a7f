package export

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/timeline"
)

// Shapefile base names written by WriteMarkersShapefile.
const (
	RigsShapefile  = "rigs.shp"
	WellsShapefile = "wells.shp"
)

var rigFields = []shp.Field{
	shp.StringField("RIG_ID", 32),
	shp.StringField("LEASE", 64),
	shp.StringField("OPERATOR", 64),
	shp.StringField("FIRST", 10),
	shp.StringField("LAST", 10),
}

var wellFields = []shp.Field{
	shp.StringField("WELL_ID", 32),
	shp.StringField("NAME", 64),
	shp.StringField("OPERATOR", 64),
	shp.StringField("TRS", 16),
	shp.StringField("COLOR", 9),
	shp.NumberField("ACTIVE", 1),
}

// WriteMarkersShapefile writes the rig markers, and the well markers when
// wellsShown is set, as point shapefiles under dir. Wells without a location
// are skipped. It returns the paths of the .shp files written.
func WriteMarkersShapefile(dir string, rigs []timeline.RigMarker, wells []timeline.WellMarker, wellsShown bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "shapefile: create dir %s", dir)
	}

	rigsPath := filepath.Join(dir, RigsShapefile)
	err := writePoints(rigsPath, rigFields, len(rigs), func(i int) (shp.Point, []any, bool) {
		r := rigs[i]
		return shp.Point{X: r.Position.X(), Y: r.Position.Y()},
			[]any{r.RigID, r.LeaseName, r.Operator, r.FirstDate.String(), r.LastDate.String()},
			true
	})
	if err != nil {
		return nil, err
	}
	written := []string{rigsPath}

	if !wellsShown {
		return written, nil
	}

	wellsPath := filepath.Join(dir, WellsShapefile)
	err = writePoints(wellsPath, wellFields, len(wells), func(i int) (shp.Point, []any, bool) {
		w := wells[i]
		active := 0
		if w.Active {
			active = 1
		}
		return shp.Point{X: w.Position.X(), Y: w.Position.Y()},
			[]any{w.WellID, w.WellName, w.Operator, w.TRS, w.Color, active},
			w.Located
	})
	if err != nil {
		return nil, err
	}
	return append(written, wellsPath), nil
}

// writePoints creates a point shapefile with the given attribute table. row
// returns the point, its attributes in field order, and whether to keep it.
func writePoints(path string, fields []shp.Field, n int, row func(i int) (shp.Point, []any, bool)) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "shapefile: create %s", path)
	}
	defer w.Close()

	if err := w.SetFields(fields); err != nil {
		return eris.Wrapf(err, "shapefile: set fields %s", path)
	}

	var skipped int
	for i := range n {
		pt, attrs, ok := row(i)
		if !ok {
			skipped++
			continue
		}
		idx := int(w.Write(&pt))
		for f, v := range attrs {
			if str, ok := v.(string); ok {
				v = fitField(str, int(fields[f].Size))
			}
			if err := w.WriteAttribute(idx, f, v); err != nil {
				return eris.Wrapf(err, "shapefile: write attribute %d of record %d", f, idx)
			}
		}
	}

	if skipped > 0 {
		zap.L().Debug("shapefile: skipped markers without location",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}
	return nil
}

// fitField trims s to at most size bytes without splitting a UTF-8 sequence.
// go-shp rejects longer values outright.
func fitField(s string, size int) string {
	if len(s) <= size {
		return s
	}
	s = s[:size]
	for len(s) > 0 {
		r, n := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || n > 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
