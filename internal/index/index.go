package index

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/go-sod/geoindex/internal/geom"
	"github.com/go-sod/geoindex/pkg/container/brute"
	"github.com/go-sod/geoindex/pkg/container/kdtree"
	"github.com/go-sod/geoindex/pkg/container/quadtree"
)

var (
	_ Index = (*kdtree.Tree)(nil)
	_ Index = (*quadtree.Tree)(nil)
	_ Index = (*brute.Index)(nil)
)

var ErrUnknownAlg = errors.New("unknown index algorithm")

type AlgType string

const (
	AlgTypeKDTree   AlgType = "KD_TREE"
	AlgTypeQuadTree AlgType = "QUAD_TREE"
	AlgTypeBrute    AlgType = "BRUTE"
)

type Index interface {
	Len() int
	Nearest(q geom.Point) (geom.Point, error)
	RangeSearch(lo, hi geom.Point) []geom.Point
}

// New builds an index of the given kind over [0,width) × [0,height). The
// caller's points are copied, their order is left untouched.
func New(alg AlgType, points []geom.Point, width, height uint32) (Index, error) {
	own := append([]geom.Point(nil), points...)
	switch alg {
	case AlgTypeKDTree:
		return kdtree.New(own, width, height), nil
	case AlgTypeQuadTree:
		return quadtree.New(own, width, height), nil
	case AlgTypeBrute:
		return brute.New(own), nil
	default:
		return nil, fmt.Errorf("unable to create index with alg type %s: %w", alg, ErrUnknownAlg)
	}
}

// BuildAll builds one index per algorithm concurrently. The result is in the
// order of algs.
func BuildAll(ctx context.Context, algs []AlgType, points []geom.Point, width, height uint32) ([]Index, error) {
	indexes := make([]Index, len(algs))
	errGrp, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		errGrp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			idx, err := New(alg, points, width, height)
			if err != nil {
				return err
			}
			indexes[i] = idx
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, fmt.Errorf("build indexes: %w", err)
	}
	return indexes, nil
}

// Query is one nearest-neighbor probe and one range probe.
type Query struct {
	Point  geom.Point
	Lo, Hi geom.Point
}

// Verify runs every query against idx and oracle and reports the first
// disagreement. Nearest answers must match exactly, range answers as sets.
func Verify(idx, oracle Index, queries []Query) error {
	if idx.Len() != oracle.Len() {
		return fmt.Errorf("index holds %d points, oracle %d", idx.Len(), oracle.Len())
	}
	for _, q := range queries {
		if oracle.Len() > 0 {
			want, err := oracle.Nearest(q.Point)
			if err != nil {
				return fmt.Errorf("oracle nearest %v: %w", q.Point, err)
			}
			got, err := idx.Nearest(q.Point)
			if err != nil {
				return fmt.Errorf("nearest %v: %w", q.Point, err)
			}
			if got != want {
				return fmt.Errorf("nearest %v: got %v, expected %v", q.Point, got, want)
			}
		}

		want := Sorted(oracle.RangeSearch(q.Lo, q.Hi))
		got := Sorted(idx.RangeSearch(q.Lo, q.Hi))
		if len(got) != len(want) {
			return fmt.Errorf("range [%v, %v): got %d points, expected %d", q.Lo, q.Hi, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				return fmt.Errorf("range [%v, %v): got %v, expected %v", q.Lo, q.Hi, got[i], want[i])
			}
		}
	}
	return nil
}

// Sorted orders points in place by geom.Point.Less and returns them.
func Sorted(points []geom.Point) []geom.Point {
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	return points
}
