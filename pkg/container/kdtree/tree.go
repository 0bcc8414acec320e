/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package kdtree implements an immutable 2-D k-d tree whose internal nodes
// each hold one pivot point and cache the box of the region they cover.
//
// A Tree is built once by New and never changes afterwards, so it is safe for
// concurrent use by multiple readers.
package kdtree

import (
	"errors"
	"math"
	"sort"

	"github.com/go-sod/geoindex/internal/geom"
)

var ErrEmptyTree = errors.New("kdtree: nearest neighbor query on an empty tree")

type Tree struct {
	root *Node
	bbox geom.AABB
	len  int
}

// New builds a tree over the region [0,width) × [0,height). It returns nil
// when points is empty. New sorts points in place; pass a copy if the
// original order matters. Points outside the region are stored but query
// results for them are undefined.
func New(points []geom.Point, width, height uint32) *Tree {
	if len(points) == 0 {
		return nil
	}
	bbox := geom.NewAABB(0, 0, width, height)
	return &Tree{
		root: buildTreeRecursive(points, geom.AxisX, bbox),
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

// Points returns every stored point, pivots included, in tree order.
func (t *Tree) Points() []geom.Point {
	if t == nil {
		return []geom.Point{}
	}
	return t.root.Points()
}

// Walk visits the nodes in pre-order with their depth, the root being at
// depth 0. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	t.Root().walk(0, fn)
}

// Nearest returns the stored point closest to q. Among equally distant
// points the one ordered first by geom.Point.Less wins.
func (t *Tree) Nearest(q geom.Point) (geom.Point, error) {
	if t.Root() == nil {
		return geom.Point{}, ErrEmptyTree
	}
	return t.root.nearest(q), nil
}

// RangeSearch returns the points p with lo <= p < hi on both axes, in
// traversal order.
func (t *Tree) RangeSearch(lo, hi geom.Point) []geom.Point {
	return t.Root().RangeSearch(geom.FromCorners(lo, hi))
}

type sortPoints struct {
	axis   geom.Axis
	points []geom.Point
}

func (b *sortPoints) Len() int {
	return len(b.points)
}

func (b *sortPoints) Less(i, j int) bool {
	return b.points[i].LessAlong(b.points[j], b.axis)
}

func (b *sortPoints) Swap(i, j int) {
	b.points[i], b.points[j] = b.points[j], b.points[i]
}

func buildTreeRecursive(points []geom.Point, axis geom.Axis, bbox geom.AABB) *Node {
	if len(points) == 0 {
		return nil
	}

	sort.Sort(&sortPoints{axis: axis, points: points})
	mid := len(points) / 2
	// Points equal to the pivot on the split axis stay on the low side, so
	// everything on the high side is strictly greater.
	for mid+1 < len(points) && points[mid+1][axis] == points[mid][axis] {
		mid++
	}
	pivot := points[mid]
	left, right := points[:mid], points[mid+1:]
	if len(left) == 0 && len(right) == 0 {
		return &Node{kind: KindLeaf, point: pivot, bbox: bbox, axis: axis}
	}

	cut := pivot[axis]
	if cut < math.MaxUint32 {
		cut++
	}
	low, high := bbox.SplitAlong(axis, cut)
	next := axis.Next()
	return &Node{
		kind:  KindSplit,
		point: pivot,
		bbox:  bbox,
		axis:  axis,
		left:  buildTreeRecursive(left, next, low),
		right: buildTreeRecursive(right, next, high),
	}
}
