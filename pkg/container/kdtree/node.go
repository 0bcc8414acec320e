package kdtree

import (
	"github.com/go-sod/geoindex/internal/geom"
)

type Kind uint8

const (
	KindEmpty Kind = iota
	KindLeaf
	KindSplit
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindSplit:
		return "Split"
	default:
		return "Empty"
	}
}

// Node is a k-d tree node. A nil *Node is the Empty node, every accessor is
// safe to call on it. Split nodes store their pivot point themselves, so
// data lives in internal nodes as well as in leaves.
type Node struct {
	kind  Kind
	point geom.Point
	bbox  geom.AABB
	axis  geom.Axis
	left  *Node
	right *Node
}

func (n *Node) Kind() Kind {
	if n == nil {
		return KindEmpty
	}
	return n.kind
}

// Point is the leaf payload or the split pivot.
func (n *Node) Point() (geom.Point, bool) {
	if n == nil {
		return geom.Point{}, false
	}
	return n.point, true
}

// BBox is the region assigned to the node during construction.
func (n *Node) BBox() (geom.AABB, bool) {
	if n == nil {
		return geom.AABB{}, false
	}
	return n.bbox, true
}

func (n *Node) Axis() geom.Axis {
	if n == nil {
		return geom.AxisX
	}
	return n.axis
}

// SplitCoord is the pivot coordinate on the split axis. Points in Left have
// a coordinate <= SplitCoord, points in Right a coordinate > SplitCoord.
func (n *Node) SplitCoord() uint32 {
	if n == nil {
		return 0
	}
	return n.point[n.axis]
}

func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node) Points() []geom.Point {
	var points []geom.Point
	if n == nil {
		return points
	}
	points = n.left.Points()
	points = append(points, n.point)
	return append(points, n.right.Points()...)
}

func (n *Node) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (n *Node) walk(depth int, fn func(n *Node, depth int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	return n.left.walk(depth+1, fn) && n.right.walk(depth+1, fn)
}

func (n *Node) RangeSearch(r geom.AABB) []geom.Point {
	var points []geom.Point
	n.rangeSearch(r, &points)
	return points
}

func (n *Node) rangeSearch(r geom.AABB, points *[]geom.Point) {
	if n == nil || !n.bbox.Intersects(r) {
		return
	}
	if r.Contains(n.point) {
		*points = append(*points, n.point)
	}
	if n.kind == KindLeaf {
		return
	}

	coord := uint64(n.point[n.axis])
	if uint64(r.Min[n.axis]) <= coord {
		n.left.rangeSearch(r, points)
	}
	if uint64(r.Min[n.axis])+uint64(r.Dim[n.axis]) > coord+1 {
		n.right.rangeSearch(r, points)
	}
}

func (n *Node) nearest(q geom.Point) geom.Point {
	if n.kind == KindLeaf {
		return n.point
	}

	near, far := n.left, n.right
	if q[n.axis] > n.point[n.axis] {
		near, far = far, near
	}

	best := n.point
	if near != nil {
		if p := near.nearest(q); geom.Nearer(q, p, best) {
			best = p
		}
	}
	if far == nil {
		return best
	}

	split := geom.AxisDistance(q, n.point, n.axis)
	if split*split > geom.SquaredDistance(q, best) {
		return best
	}
	if p := far.nearest(q); geom.Nearer(q, p, best) {
		best = p
	}
	return best
}
