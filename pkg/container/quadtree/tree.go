// Package quadtree implements an immutable point quadtree. Every Quad node
// splits its box into four quadrants about the box center, independent of
// where the points lie.
//
// A tree is never modified after New and may be shared by concurrent readers.
package quadtree

import (
	"errors"
	"sort"

	"github.com/go-sod/geoindex/internal/geom"
)

var ErrEmptyTree = errors.New("quadtree: nearest neighbor query on an empty tree")

type Tree struct {
	root *Node
	bbox geom.AABB
	len  int
}

// New builds a tree over the region [0,width) × [0,height). The points slice
// is reordered in place. An empty input gives a tree with an Empty root.
func New(points []geom.Point, width, height uint32) *Tree {
	bbox := geom.NewAABB(0, 0, width, height)
	return &Tree{
		root: split(points, bbox),
		bbox: bbox,
		len:  len(points),
	}
}

func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// BBox is the root region. Leaves do not store a box, so renderers start
// from this one and descend through Node.Quadrants.
func (t *Tree) BBox() geom.AABB {
	if t == nil {
		return geom.AABB{}
	}
	return t.bbox
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.len
}

func (t *Tree) Depth() int {
	return t.Root().depth()
}

func (t *Tree) Points() []geom.Point {
	return t.Root().Points()
}

// Walk visits the non-empty nodes in pre-order together with the region each
// one covers. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, region geom.AABB, depth int) bool) {
	t.Root().walk(t.BBox(), 0, fn)
}

// RangeSearch returns the points p with lo <= p < hi on both axes.
func (t *Tree) RangeSearch(lo, hi geom.Point) []geom.Point {
	var points []geom.Point
	t.Root().rangeSearch(geom.FromCorners(lo, hi), &points)
	return points
}

// Nearest returns the stored point closest to q, ties going to the point
// ordered first by geom.Point.Less.
func (t *Tree) Nearest(q geom.Point) (geom.Point, error) {
	if t.Root() == nil {
		return geom.Point{}, ErrEmptyTree
	}
	var best candidate
	t.root.nearest(q, &best)
	return best.point, nil
}

type byAxis struct {
	axis   geom.Axis
	points []geom.Point
}

func (b *byAxis) Len() int {
	return len(b.points)
}

func (b *byAxis) Less(i, j int) bool {
	return b.points[i][b.axis] < b.points[j][b.axis]
}

func (b *byAxis) Swap(i, j int) {
	b.points[i], b.points[j] = b.points[j], b.points[i]
}

// partition sorts points along axis and splits them into those below c and
// the rest.
func partition(points []geom.Point, axis geom.Axis, c uint32) ([]geom.Point, []geom.Point) {
	sort.Sort(&byAxis{axis: axis, points: points})
	n := sort.Search(len(points), func(i int) bool { return points[i][axis] >= c })
	return points[:n], points[n:]
}

func coincident(points []geom.Point) bool {
	for _, p := range points[1:] {
		if p != points[0] {
			return false
		}
	}
	return true
}

func split(points []geom.Point, bbox geom.AABB) *Node {
	switch {
	case len(points) == 0:
		return nil
	case len(points) == 1, coincident(points),
		bbox.Width() <= 1 && bbox.Height() <= 1:
		return &Node{kind: KindLeaf, points: append([]geom.Point(nil), points...)}
	}

	c := bbox.Center()
	north, south := partition(points, geom.AxisY, c.Y())
	nw, ne := partition(north, geom.AxisX, c.X())
	sw, se := partition(south, geom.AxisX, c.X())

	quads := bbox.Subdivide(c)
	return &Node{
		kind: KindQuad,
		bbox: bbox,
		children: [4]*Node{
			split(nw, quads[NW]),
			split(ne, quads[NE]),
			split(sw, quads[SW]),
			split(se, quads[SE]),
		},
	}
}
