package quadtree

import (
	"sort"

	"github.com/go-sod/geoindex/internal/geom"
)

type Kind uint8

const (
	KindEmpty Kind = iota
	KindLeaf
	KindQuad
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindQuad:
		return "Quad"
	default:
		return "Empty"
	}
}

// Quadrant indexes the children of a Quad node.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// Node is a quadtree node; a nil *Node is the Empty node. Leaves hold one
// point, or several coincident points when their region cannot be split.
// Leaves carry no box, a leaf region is the parent's quadrant.
type Node struct {
	kind     Kind
	points   []geom.Point
	bbox     geom.AABB
	children [4]*Node
}

func (n *Node) Kind() Kind {
	if n == nil {
		return KindEmpty
	}
	return n.kind
}

// Point is the first point of a leaf.
func (n *Node) Point() (geom.Point, bool) {
	if n.Kind() != KindLeaf {
		return geom.Point{}, false
	}
	return n.points[0], true
}

// LeafPoints returns all points of a leaf, a single one unless the leaf
// holds duplicates.
func (n *Node) LeafPoints() []geom.Point {
	if n.Kind() != KindLeaf {
		return nil
	}
	return n.points
}

// BBox is only present on Quad nodes.
func (n *Node) BBox() (geom.AABB, bool) {
	if n.Kind() != KindQuad {
		return geom.AABB{}, false
	}
	return n.bbox, true
}

// Center is where a Quad node splits its box.
func (n *Node) Center() (geom.Point, bool) {
	if n.Kind() != KindQuad {
		return geom.Point{}, false
	}
	return n.bbox.Center(), true
}

func (n *Node) Child(q Quadrant) *Node {
	if n.Kind() != KindQuad {
		return nil
	}
	return n.children[q]
}

// Quadrants returns the boxes of the four children of a Quad node.
func (n *Node) Quadrants() [4]geom.AABB {
	if n.Kind() != KindQuad {
		return [4]geom.AABB{}
	}
	return n.bbox.Subdivide(n.bbox.Center())
}

func (n *Node) Points() []geom.Point {
	switch n.Kind() {
	case KindLeaf:
		return append([]geom.Point(nil), n.points...)
	case KindQuad:
		var points []geom.Point
		for _, c := range n.children {
			points = append(points, c.Points()...)
		}
		return points
	default:
		return nil
	}
}

func (n *Node) depth() int {
	switch n.Kind() {
	case KindEmpty:
		return 0
	case KindLeaf:
		return 1
	}
	d := 0
	for _, c := range n.children {
		if cd := c.depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

func (n *Node) walk(region geom.AABB, depth int, fn func(n *Node, region geom.AABB, depth int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, region, depth) {
		return false
	}
	if n.kind != KindQuad {
		return true
	}
	quads := n.Quadrants()
	for i, c := range n.children {
		if !c.walk(quads[i], depth+1, fn) {
			return false
		}
	}
	return true
}

func (n *Node) rangeSearch(r geom.AABB, points *[]geom.Point) {
	switch n.Kind() {
	case KindLeaf:
		for _, p := range n.points {
			if r.Contains(p) {
				*points = append(*points, p)
			}
		}
	case KindQuad:
		if !n.bbox.Intersects(r) {
			return
		}
		for _, c := range n.children {
			c.rangeSearch(r, points)
		}
	}
}

type candidate struct {
	point geom.Point
	dist  uint64
	ok    bool
}

func (c *candidate) offer(q, p geom.Point) {
	if !c.ok || geom.Nearer(q, p, c.point) {
		c.point, c.dist, c.ok = p, geom.SquaredDistance(q, p), true
	}
}

func (n *Node) nearest(q geom.Point, best *candidate) {
	switch n.Kind() {
	case KindLeaf:
		for _, p := range n.points {
			best.offer(q, p)
		}
	case KindQuad:
		quads := n.Quadrants()
		order := [4]int{0, 1, 2, 3}
		var dist [4]uint64
		for i := range quads {
			dist[i] = quads[i].SquaredDistanceTo(q)
		}
		sort.Slice(order[:], func(i, j int) bool { return dist[order[i]] < dist[order[j]] })
		for _, i := range order {
			if n.children[i] == nil {
				continue
			}
			if best.ok && dist[i] > best.dist {
				return
			}
			n.children[i].nearest(q, best)
		}
	}
}
