package geom

import "testing"

func TestAxis_Next(t *testing.T) {
	t.Parallel()
	if AxisX.Next() != AxisY {
		t.Errorf("the axis after x got: %v, expected: %v", AxisX.Next(), AxisY)
	}
	if AxisY.Next() != AxisX {
		t.Errorf("the axis after y got: %v, expected: %v", AxisY.Next(), AxisX)
	}
}

func TestPoint_Dim(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		axis     Axis
		expected uint32
	}{
		{name: "x", p: NewPoint(3, 7), axis: AxisX, expected: 3},
		{name: "y", p: NewPoint(3, 7), axis: AxisY, expected: 7},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.p.Dim(test.axis); got != test.expected {
				t.Errorf("dimension specified incorrectly, got: %d, expected: %d", got, test.expected)
			}
		})
	}
}

func TestPoint_Less(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected bool
	}{
		{name: "smaller_x", p: Point{1, 9}, p1: Point{2, 0}, expected: true},
		{name: "greater_x", p: Point{3, 0}, p1: Point{2, 9}, expected: false},
		{name: "equal_x_smaller_y", p: Point{2, 1}, p1: Point{2, 2}, expected: true},
		{name: "equal", p: Point{2, 2}, p1: Point{2, 2}, expected: false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.p.Less(test.p1); got != test.expected {
				t.Errorf("the comparison of points, got: %v, expected: %v", got, test.expected)
			}
		})
	}
}

func TestPoint_LessAlong(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		axis     Axis
		expected bool
	}{
		{name: "y_primary", p: Point{9, 1}, p1: Point{0, 2}, axis: AxisY, expected: true},
		{name: "y_tie_uses_x", p: Point{1, 2}, p1: Point{0, 2}, axis: AxisY, expected: false},
		{name: "x_tie_uses_y", p: Point{0, 1}, p1: Point{0, 2}, axis: AxisX, expected: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.p.LessAlong(test.p1, test.axis); got != test.expected {
				t.Errorf("the comparison along %v, got: %v, expected: %v", test.axis, got, test.expected)
			}
		})
	}
}

func TestNearer(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		q        Point
		a        Point
		b        Point
		expected bool
	}{
		{name: "closer", q: Point{0, 0}, a: Point{1, 1}, b: Point{2, 0}, expected: true},
		{name: "farther", q: Point{0, 0}, a: Point{3, 0}, b: Point{2, 0}, expected: false},
		{name: "tie_broken_by_order", q: Point{5, 5}, a: Point{4, 5}, b: Point{6, 5}, expected: true},
		{name: "tie_reversed", q: Point{5, 5}, a: Point{5, 6}, b: Point{5, 4}, expected: false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := Nearer(test.q, test.a, test.b); got != test.expected {
				t.Errorf("Nearer(%v, %v, %v) got: %v, expected: %v", test.q, test.a, test.b, got, test.expected)
			}
		})
	}
}

func TestPoint_String(t *testing.T) {
	if got := NewPoint(12, 4).String(); got != "[12,4]" {
		t.Errorf("point formatting got: %s, expected: [12,4]", got)
	}
}
