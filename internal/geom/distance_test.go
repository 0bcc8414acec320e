package geom

import (
	"math"
	"testing"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected uint64
	}{
		{name: "zero", p: Point{4, 4}, p1: Point{4, 4}, expected: 0},
		{name: "positive", p: Point{1, 2}, p1: Point{4, 6}, expected: 25},
		{name: "reversed", p: Point{4, 6}, p1: Point{1, 2}, expected: 25},
		{name: "single_axis_max", p: Point{0, 0}, p1: Point{math.MaxUint32, 0}, expected: uint64(math.MaxUint32) * uint64(math.MaxUint32)},
		{name: "saturated", p: Point{0, 0}, p1: Point{math.MaxUint32, math.MaxUint32}, expected: math.MaxUint64},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SquaredDistance(test.p, test.p1)
			if got != test.expected {
				t.Errorf(
					"the distance obtained does not correspond to the expected distance, got %d, expected %d",
					got, test.expected)
			}
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected float64
	}{
		{name: "positive", p: Point{1, 2}, p1: Point{4, 6}, expected: 5},
		{name: "positive", p: Point{10, 2}, p1: Point{5, 3}, expected: 5.0990195135927845},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := EuclideanDistance(test.p, test.p1)
			if got != test.expected {
				t.Errorf(
					"the distance obtained does not correspond to the expected distance, got %f, expected %f",
					got, test.expected)
			}
		})
	}
}

func TestManhattanDistance(t *testing.T) {
	if got := ManhattanDistance(Point{10, 2}, Point{5, 3}); got != 6 {
		t.Errorf("the distance obtained does not correspond to the expected distance, got %d, expected %d", got, 6)
	}
}

func TestChebyshevDistance(t *testing.T) {
	if got := ChebyshevDistance(Point{10, 2}, Point{5, 3}); got != 5 {
		t.Errorf("the distance obtained does not correspond to the expected distance, got %d, expected %d", got, 5)
	}
}
