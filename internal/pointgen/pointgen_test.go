package pointgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-sod/geoindex/internal/geom"
)

func TestGenerator_Points(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		width  uint32
		height uint32
	}{
		{name: "square", width: 1000, height: 1000},
		{name: "thin", width: 1, height: 50},
		{name: "degenerate", width: 0, height: 0},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g := New(test.width, test.height, 42)
			bbox := geom.NewAABB(0, 0, test.width, test.height)
			for _, p := range g.Points(500) {
				if bbox.Empty() {
					if p != (geom.Point{}) {
						t.Errorf("a degenerate plane must yield the origin, got: %v", p)
					}
					continue
				}
				if !bbox.Contains(p) {
					t.Errorf("generated point %v outside %v", p, bbox)
				}
			}
		})
	}
}

func TestGenerator_Box(t *testing.T) {
	t.Parallel()
	g := New(100, 60, 7)
	for i := 0; i < 500; i++ {
		lo, hi := g.Box()
		if hi[0] < lo[0] || hi[1] < lo[1] {
			t.Fatalf("inverted box [%v, %v)", lo, hi)
		}
		if hi[0] > 100 || hi[1] > 60 {
			t.Fatalf("box [%v, %v) leaves the plane", lo, hi)
		}
	}
}

func TestGenerator_Seeded(t *testing.T) {
	t.Parallel()
	a := New(1000, 1000, 99).Points(20)
	b := New(1000, 1000, 99).Points(20)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("equal seeds must give equal points (-a +b):\n%s", diff)
	}
}
