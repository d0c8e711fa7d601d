package geomhelp

import (
	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/muesli/reflow/truncate"
)

// WktMustEncode renders a geometry as WKT, cut off at maxLen characters.
// 0 means no limit.
func WktMustEncode(g geom.Geometry, maxLen uint) string {
	if maxLen == 0 {
		return wkt.MustEncode(g)
	}
	return truncate.StringWithTail(wkt.MustEncode(g), maxLen, "...")
}

// ExtentCentroid returns the center point of a bounding box.
func ExtentCentroid(e geom.Extent) geom.Point {
	return geom.Point{
		(e.MinX() + e.MaxX()) / 2,
		(e.MinY() + e.MaxY()) / 2,
	}
}
