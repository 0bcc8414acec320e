// Package brute answers the same queries as the tree indexes by scanning
// every point. It is the reference the trees are checked against.
package brute

import (
	"errors"

	"github.com/go-sod/geoindex/internal/geom"
)

var ErrEmpty = errors.New("brute: nearest neighbor query on an empty set")

type Index struct {
	points []geom.Point
}

// New keeps its own copy of points.
func New(points []geom.Point) *Index {
	return &Index{points: append([]geom.Point(nil), points...)}
}

func (b *Index) Len() int {
	return len(b.points)
}

func (b *Index) Points() []geom.Point {
	return append([]geom.Point(nil), b.points...)
}

func (b *Index) Nearest(q geom.Point) (geom.Point, error) {
	if len(b.points) == 0 {
		return geom.Point{}, ErrEmpty
	}
	best := b.points[0]
	for _, p := range b.points[1:] {
		if geom.Nearer(q, p, best) {
			best = p
		}
	}
	return best, nil
}

func (b *Index) RangeSearch(lo, hi geom.Point) []geom.Point {
	box := geom.FromCorners(lo, hi)
	var found []geom.Point
	for _, p := range b.points {
		if box.Contains(p) {
			found = append(found, p)
		}
	}
	return found
}
