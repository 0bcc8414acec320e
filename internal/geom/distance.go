package geom

import (
	"math"
	"math/bits"
)

// AxisDistance is the absolute difference of a and b along one axis.
func AxisDistance(a, b Point, axis Axis) uint64 {
	if a[axis] > b[axis] {
		return uint64(a[axis] - b[axis])
	}
	return uint64(b[axis] - a[axis])
}

// SquaredDistance saturates at math.MaxUint64 for points more than about
// 2^32*sqrt(2)/2 apart on both axes.
func SquaredDistance(a, b Point) uint64 {
	dx := AxisDistance(a, b, AxisX)
	dy := AxisDistance(a, b, AxisY)
	sum, carry := bits.Add64(dx*dx, dy*dy, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func EuclideanDistance(a, b Point) float64 {
	dx := float64(AxisDistance(a, b, AxisX))
	dy := float64(AxisDistance(a, b, AxisY))
	return math.Sqrt(dx*dx + dy*dy)
}

func ManhattanDistance(a, b Point) uint64 {
	return AxisDistance(a, b, AxisX) + AxisDistance(a, b, AxisY)
}

func ChebyshevDistance(a, b Point) uint64 {
	dx := AxisDistance(a, b, AxisX)
	dy := AxisDistance(a, b, AxisY)
	if dx > dy {
		return dx
	}
	return dy
}
