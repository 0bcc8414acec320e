package geom

import (
	"strconv"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

const Dimensions = 2

// Next returns the split axis used one level below a node splitting on a.
func (a Axis) Next() Axis {
	return (a + 1) % Dimensions
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Point is a position on the pixel plane. Points are compared by value, two
// points with equal coordinates are interchangeable.
type Point [Dimensions]uint32

func NewPoint(x, y uint32) Point {
	return Point{x, y}
}

func (p Point) X() uint32 {
	return p[AxisX]
}

func (p Point) Y() uint32 {
	return p[AxisY]
}

func (p Point) Dim(a Axis) uint32 {
	return p[a]
}

// Less orders points by x, then by y.
func (p Point) Less(o Point) bool {
	if p[AxisX] != o[AxisX] {
		return p[AxisX] < o[AxisX]
	}
	return p[AxisY] < o[AxisY]
}

// LessAlong orders points by the coordinate on a, then by the other one.
func (p Point) LessAlong(o Point, a Axis) bool {
	if p[a] != o[a] {
		return p[a] < o[a]
	}
	b := a.Next()
	return p[b] < o[b]
}

func (p Point) String() string {
	return "[" + strconv.FormatUint(uint64(p[AxisX]), 10) + "," + strconv.FormatUint(uint64(p[AxisY]), 10) + "]"
}

// Nearer reports whether a is a better nearest-neighbor answer for q than b.
// The smaller squared distance wins; equal distances are broken by Less.
func Nearer(q, a, b Point) bool {
	da, db := SquaredDistance(q, a), SquaredDistance(q, b)
	if da != db {
		return da < db
	}
	return a.Less(b)
}
