package geom

import (
	"fmt"
)

// AABB is the half-open box [x, x+w) × [y, y+h). A box with a zero width
// or height contains no points.
type AABB struct {
	Min Point
	Dim [Dimensions]uint32
}

func NewAABB(x, y, w, h uint32) AABB {
	return AABB{Min: Point{x, y}, Dim: [Dimensions]uint32{w, h}}
}

// FromCorners returns the box [lo, hi). An inverted corner pair yields a box
// with zero extent along that axis.
func FromCorners(lo, hi Point) AABB {
	b := AABB{Min: lo}
	for a := AxisX; a <= AxisY; a++ {
		if hi[a] > lo[a] {
			b.Dim[a] = hi[a] - lo[a]
		}
	}
	return b
}

func (b AABB) Width() uint32 {
	return b.Dim[AxisX]
}

func (b AABB) Height() uint32 {
	return b.Dim[AxisY]
}

func (b AABB) Empty() bool {
	return b.Dim[AxisX] == 0 || b.Dim[AxisY] == 0
}

// far is the exclusive upper edge along a, computed without wrapping.
func (b AABB) far(a Axis) uint64 {
	return uint64(b.Min[a]) + uint64(b.Dim[a])
}

// Max returns the exclusive corner, saturated at the uint32 limit.
func (b AABB) Max() Point {
	var p Point
	for a := AxisX; a <= AxisY; a++ {
		f := b.far(a)
		if f > uint64(^uint32(0)) {
			f = uint64(^uint32(0))
		}
		p[a] = uint32(f)
	}
	return p
}

// SplitAlong cuts the box at coord on axis. The low box spans
// [min, coord) and the high box [coord, min+dim) along axis; both keep the
// full extent of the other axis. coord is clamped into the box.
func (b AABB) SplitAlong(axis Axis, coord uint32) (AABB, AABB) {
	if coord < b.Min[axis] {
		coord = b.Min[axis]
	}
	if uint64(coord) > b.far(axis) {
		coord = uint32(b.far(axis))
	}

	low, high := b, b
	low.Dim[axis] = coord - b.Min[axis]
	high.Min[axis] = coord
	high.Dim[axis] = b.Dim[axis] - low.Dim[axis]
	return low, high
}

// Quads returns the NW, NE, SW and SE quarters of the box. Dimensions are
// halved with integer division, so for odd extents the quarters do not
// cover the last row or column of the box.
func (b AABB) Quads() [4]AABB {
	x, y := b.Min[AxisX], b.Min[AxisY]
	w, h := b.Dim[AxisX]/2, b.Dim[AxisY]/2
	return [4]AABB{
		NewAABB(x, y, w, h),
		NewAABB(x+w, y, w, h),
		NewAABB(x, y+h, w, h),
		NewAABB(x+w, y+h, w, h),
	}
}

// Subdivide splits the box through c into NW, NE, SW and SE parts whose
// union is exactly the box. Points with y < c.Y() fall in the north parts and
// points with x < c.X() in the west parts.
func (b AABB) Subdivide(c Point) [4]AABB {
	north, south := b.SplitAlong(AxisY, c[AxisY])
	nw, ne := north.SplitAlong(AxisX, c[AxisX])
	sw, se := south.SplitAlong(AxisX, c[AxisX])
	return [4]AABB{nw, ne, sw, se}
}

// Center is the truncated midpoint of the box.
func (b AABB) Center() Point {
	return Point{
		b.Min[AxisX] + b.Dim[AxisX]/2,
		b.Min[AxisY] + b.Dim[AxisY]/2,
	}
}

func (b AABB) Contains(p Point) bool {
	for a := AxisX; a <= AxisY; a++ {
		if p[a] < b.Min[a] || uint64(p[a]) >= b.far(a) {
			return false
		}
	}
	return true
}

// Intersects reports whether the interiors of b and o overlap. Boxes that
// only share an edge do not intersect.
func (b AABB) Intersects(o AABB) bool {
	for a := AxisX; a <= AxisY; a++ {
		if uint64(b.Min[a]) >= o.far(a) || b.far(a) <= uint64(o.Min[a]) {
			return false
		}
	}
	return true
}

// SquaredDistanceTo is the squared distance from p to the closest point of
// the box, zero when p lies inside it.
func (b AABB) SquaredDistanceTo(p Point) uint64 {
	var q Point
	for a := AxisX; a <= AxisY; a++ {
		switch {
		case p[a] < b.Min[a]:
			q[a] = b.Min[a]
		case uint64(p[a]) >= b.far(a) && b.Dim[a] > 0:
			q[a] = uint32(b.far(a) - 1)
		case uint64(p[a]) >= b.far(a):
			q[a] = b.Min[a]
		default:
			q[a] = p[a]
		}
	}
	return SquaredDistance(p, q)
}

func (b AABB) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", b.Min[AxisX], b.far(AxisX), b.Min[AxisY], b.far(AxisY))
}
