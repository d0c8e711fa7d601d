package geomhelp

import (
	"strings"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
)

func TestWktMustEncode(t *testing.T) {
	point := geom.Point{1, 2}
	full := WktMustEncode(point, 0)
	assert.True(t, strings.HasPrefix(full, "POINT"))

	truncated := WktMustEncode(point, 7)
	assert.LessOrEqual(t, len(truncated), 7)
	assert.True(t, strings.HasSuffix(truncated, "..."))
}

func TestExtentCentroid(t *testing.T) {
	assert.Equal(t, geom.Point{0, 0}, ExtentCentroid(geom.Extent{-180, -90, 180, 90}))
	assert.Equal(t, geom.Point{0.5, 0.75}, ExtentCentroid(geom.Extent{0, 0.5, 1, 1}))
}
