// Package zcurve implements a position on a Z-order curve in 2D.
//
//	0 - 1
//	  /
//	2 - 3
//
// A cell on the curve is an interleaved (Morton) code plus the recursion
// depth of the quadtree it lives in. All spatial reasoning (hierarchy,
// neighbours, regions, arithmetic) happens on the code itself, without
// decoding back to coordinates.
// See https://en.wikipedia.org/wiki/Z-order_curve
// and https://en.wikipedia.org/wiki/Moser%E2%80%93de_Bruijn_sequence
package zcurve

import (
	"fmt"
	"strconv"

	"github.com/go-spatial/geom"

	"github.com/pdok/zcurve/direction"
	"github.com/pdok/zcurve/geohash"
	"github.com/pdok/zcurve/mathhelp"
)

// Z is a position on the z-order curve.
type Z = uint

// MaxDepth is the deepest supported recursion level. A cell needs 2*depth
// bits for its code and the cell count 4^depth must still be representable,
// which caps the depth at 31 for a 64-bit Z. Constructors reject deeper
// cells rather than silently truncating their codes.
const MaxDepth = 31

const (
	xBits Z = 0b0101010101010101010101010101010101010101010101010101010101010101 // even bit positions carry X
	yBits Z = 0b1010101010101010101010101010101010101010101010101010101010101010 // odd bit positions carry Y
)

var (
	interleaveMasks = [...]Z{
		0b0101010101010101010101010101010101010101010101010101010101010101,
		0b0011001100110011001100110011001100110011001100110011001100110011,
		0b0000111100001111000011110000111100001111000011110000111100001111,
		0b0000000011111111000000001111111100000000111111110000000011111111,
		0b0000000000000000111111111111111100000000000000001111111111111111,
		0b0000000000000000000000000000000011111111111111111111111111111111,
	}
	powersOfTwo = [...]uint{0, 1, 2, 4, 8, 16}
)

// WorldExtent is the default extent to scale regions into:
// the full longitude/latitude range.
var WorldExtent = geom.Extent{-180, -90, 180, 90}

// Cell is a position on a z-order curve of a certain recursion depth.
// A curve of depth d has 4^d cells; depth 0 is the single cell covering the
// whole domain. Cells are immutable, every operation returns a new one.
type Cell struct {
	z         Z
	depth     uint
	halfSplit bool
}

// New returns the cell at position z on the curve of the given depth.
func New(z Z, depth uint) (Cell, error) {
	return newCell(z, depth, false)
}

// NewHalfSplit returns a cell whose last subdivision on the X axis was
// elided, so it covers double the width: itself plus the neighbouring cell.
func NewHalfSplit(z Z, depth uint) (Cell, error) {
	return newCell(z, depth, true)
}

func newCell(z Z, depth uint, halfSplit bool) (Cell, error) {
	if depth > MaxDepth {
		return Cell{}, fmt.Errorf("depth level %d exceeds the maximum %d", depth, MaxDepth)
	}
	if z > numCells(depth)-1 {
		return Cell{}, fmt.Errorf("z-value %d does not exist on depth level %d", z, depth)
	}
	return Cell{z: z, depth: depth, halfSplit: halfSplit}, nil
}

// FromXY constructs a cell from column and row indices on the grid of
// 2^depth by 2^depth cells, by interleaving the bits of x and y.
func FromXY(x, y uint, depth uint) (Cell, error) {
	if depth > MaxDepth {
		return Cell{}, fmt.Errorf("depth level %d exceeds the maximum %d", depth, MaxDepth)
	}
	if x >= mathhelp.Pow2(depth) || y >= mathhelp.Pow2(depth) {
		return Cell{}, fmt.Errorf("coordinate (%d, %d) does not exist on depth level %d", x, y, depth)
	}
	return Cell{z: interleave(x, y), depth: depth}, nil
}

// FromBitstring constructs a cell from its textual form: '0'/'1' characters,
// most significant bit first, two bits per depth level. An uneven number of
// bits means the last X split was elided; the missing bit is read as 0 and
// the cell is marked half-split.
func FromBitstring(bitstring string) (Cell, error) {
	halfSplit := len(bitstring)%2 != 0
	if halfSplit {
		bitstring += "0"
	}
	depth := uint(len(bitstring)) / 2
	if depth > MaxDepth {
		return Cell{}, fmt.Errorf("bitstring %q is longer than the maximum depth level %d allows", bitstring, MaxDepth)
	}
	z, err := strconv.ParseUint(bitstring, 2, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("cannot read %q as a bitstring: %w", bitstring, err)
	}
	return newCell(Z(z), depth, halfSplit)
}

// FromLatLon constructs the cell containing the given point, delegating the
// encoding to the geohash package.
func FromLatLon(lat, lon float64, depth uint) (Cell, error) {
	return fromLatLon(lat, lon, depth, false)
}

// FromLatLonHalfSplit is FromLatLon with the half-split marker set.
func FromLatLonHalfSplit(lat, lon float64, depth uint) (Cell, error) {
	return fromLatLon(lat, lon, depth, true)
}

func fromLatLon(lat, lon float64, depth uint, halfSplit bool) (Cell, error) {
	if depth > MaxDepth {
		return Cell{}, fmt.Errorf("depth level %d exceeds the maximum %d", depth, MaxDepth)
	}
	z, err := geohash.Encode(lat, lon, depth*2, geohash.NumericMSB)
	if err != nil {
		return Cell{}, err
	}
	return newCell(z, depth, halfSplit)
}

// Z is the position on the curve.
func (c Cell) Z() Z {
	return c.z
}

// Depth is the recursion depth of the curve this cell lives on.
func (c Cell) Depth() uint {
	return c.depth
}

// HalfSplit reports whether the cell covers double the width on the X axis.
func (c Cell) HalfSplit() bool {
	return c.halfSplit
}

// XY de-interleaves the code back into column and row indices.
func (c Cell) XY() (x, y uint) {
	return deinterleave(c.z)
}

// Components splits the code into its Moser–de Bruijn components: the X
// bits and the Y bits, each left in place, so that x|y is the code again.
func (c Cell) Components() (x, y Z) {
	return c.z & xBits, c.z & yBits
}

// Region returns the covered area as a bounding box scaled into the given
// extent. A nil extent means WorldExtent. Depth 0 covers the whole extent.
// A half-split cell spans two columns, so its box is twice as wide.
func (c Cell) Region(extent *geom.Extent) geom.Extent {
	if extent == nil {
		extent = &WorldExtent
	}
	if c.depth == 0 {
		return *extent
	}
	x, y := c.XY()
	numY := mathhelp.Pow2(c.depth)
	numX := numY >> uint(mathhelp.Bool2int(c.halfSplit))
	spanX := extent.XSpan() / float64(numX)
	spanY := extent.YSpan() / float64(numY)
	minX := extent.MinX() + float64(x)*spanX
	minY := extent.MinY() + float64(y)*spanY
	return geom.Extent{minX, minY, minX + spanX, minY + spanY}
}

// Parent returns the corresponding cell on the curve of depthOffset less
// recursion. It saturates at depth 0.
func (c Cell) Parent(depthOffset uint) Cell {
	depth := uint(0)
	if depthOffset < c.depth {
		depth = c.depth - depthOffset
	}
	return Cell{z: c.z >> (2 * depthOffset), depth: depth}
}

// Children returns the 4^depthOffset cells this cell subdivides into on the
// curve of depthOffset deeper recursion, in ascending z order. The resulting
// depth must not exceed MaxDepth.
func (c Cell) Children(depthOffset uint) []Cell {
	zBase := c.z << (2 * depthOffset)
	num := numCells(depthOffset)
	children := make([]Cell, 0, num)
	for z := zBase; z < zBase+num; z++ {
		children = append(children, Cell{z: z, depth: c.depth + depthOffset})
	}
	return children
}

// Neighbours returns the bordering cell in each compass direction, on the
// same depth. The domain is a torus: stepping past an edge wraps around to
// the opposite side. On depth 0 every direction is the cell itself.
//
// An axis is stepped by saturating the bits of the other axis (so a carry
// or borrow cannot cross over), doing a plain +1/-1, masking the result
// back to the axis and restoring the other axis's original bits.
// See https://en.wikipedia.org/wiki/Z-order_curve#Coordinate_values
func (c Cell) Neighbours() map[direction.D]Cell {
	num := numCells(c.depth)
	return map[direction.D]Cell{
		direction.North: {z: ((((c.z & yBits) - 1) & yBits) | (c.z & xBits)) % num, depth: c.depth},
		direction.South: {z: ((((c.z | xBits) + 1) & yBits) | (c.z & xBits)) % num, depth: c.depth},
		direction.West:  {z: ((((c.z & xBits) - 1) & xBits) | (c.z & yBits)) % num, depth: c.depth},
		direction.East:  {z: ((((c.z | yBits) + 1) & xBits) | (c.z & yBits)) % num, depth: c.depth},
	}
}

// Add adds the X and Y components of both cells independently, with the
// same axis isolation as Neighbours, wrapping around the domain. Operands
// of unequal depth are first aligned by replacing the shallower one with
// its first child on the deeper depth; that direction is fixed, so
// mixed-depth addition is not commutative.
func (c Cell) Add(other Cell) Cell {
	if other.depth != c.depth {
		deeper, shallower := c, other
		if c.depth < other.depth {
			deeper, shallower = other, c
		}
		promoted := Cell{z: shallower.z << (2 * (deeper.depth - shallower.depth)), depth: deeper.depth}
		return deeper.Add(promoted)
	}
	z := ((((c.z | yBits) + (other.z & xBits)) & xBits) |
		(((c.z | xBits) + (other.z & yBits)) & yBits)) % numCells(c.depth)
	return Cell{z: z, depth: c.depth}
}

// String renders the code as a bitstring, most significant bit first,
// 2*depth bits long. The elided last X split of a half-split cell is left
// out, giving an uneven length. It is the exact inverse of FromBitstring.
func (c Cell) String() string {
	if c.depth == 0 {
		return ""
	}
	skip := uint(mathhelp.Bool2int(c.halfSplit))
	return fmt.Sprintf("%0*b", int(c.depth*2-skip), c.z>>skip)
}

// Equals reports whether both cells are the same position on the same curve
// with the same half-split state.
func (c Cell) Equals(other Cell) bool {
	return c.z == other.z &&
		c.depth == other.depth &&
		c.halfSplit == other.halfSplit
}

// Contains reports whether the other cell lies within this one: the same
// cell, or a descendant of it. The doubled width of a half-split cell is
// not taken into account.
func (c Cell) Contains(other Cell) bool {
	switch {
	case c.depth > other.depth:
		return false
	case c.depth < other.depth:
		return c.Equals(other.Parent(other.depth - c.depth))
	default:
		return c.Equals(other)
	}
}

// LessThan compares the area the cells cover: a deeper cell covers less,
// the position plays no part. Cells on the same depth are neither less nor
// greater than each other, even when they are unequal under Equals.
func (c Cell) LessThan(other Cell) bool {
	return c.depth > other.depth
}

// GreaterThan compares the area the cells cover, see LessThan.
func (c Cell) GreaterThan(other Cell) bool {
	return c.depth < other.depth
}

// LessOrEqual compares the area the cells cover, see LessThan.
func (c Cell) LessOrEqual(other Cell) bool {
	return c.depth >= other.depth
}

// GreaterOrEqual compares the area the cells cover, see LessThan.
func (c Cell) GreaterOrEqual(other Cell) bool {
	return c.depth <= other.depth
}

func numCells(depth uint) uint {
	return mathhelp.Pow4(depth)
}

// interleave spreads the bits of x and y over the even resp. odd bit
// positions. https://graphics.stanford.edu/~seander/bithacks.html#InterleaveTableObvious
func interleave(x, y uint) Z {
	for i := 4; i >= 0; i-- {
		x = (x | (x << powersOfTwo[i+1])) & interleaveMasks[i]
		y = (y | (y << powersOfTwo[i+1])) & interleaveMasks[i]
	}
	return x | (y << 1)
}

func deinterleave(z Z) (x, y uint) {
	x = z
	y = z >> 1
	for i := 0; i <= 5; i++ {
		x = (x | (x >> powersOfTwo[i])) & interleaveMasks[i]
		y = (y | (y >> powersOfTwo[i])) & interleaveMasks[i]
	}
	return x, y
}
