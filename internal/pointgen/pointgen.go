// Package pointgen produces uniformly distributed random points and query
// boxes on a bounded plane.
package pointgen

import (
	"github.com/valyala/fastrand"

	"github.com/go-sod/geoindex/internal/geom"
)

type Config struct {
	Count  int    `envconfig:"GEOINDEX_POINTS" toml:"count"`
	Width  uint32 `envconfig:"GEOINDEX_WIDTH" toml:"width"`
	Height uint32 `envconfig:"GEOINDEX_HEIGHT" toml:"height"`
	// Seed makes runs reproducible, zero picks a random seed.
	Seed uint32 `envconfig:"GEOINDEX_SEED" toml:"seed"`
}

type Generator struct {
	rng    fastrand.RNG
	width  uint32
	height uint32
}

func New(width, height uint32, seed uint32) *Generator {
	g := &Generator{width: width, height: height}
	if seed != 0 {
		g.rng.Seed(seed)
	}
	return g
}

func NewFromConfig(cfg *Config) *Generator {
	return New(cfg.Width, cfg.Height, cfg.Seed)
}

func (g *Generator) coord(limit uint32) uint32 {
	if limit == 0 {
		return 0
	}
	return g.rng.Uint32n(limit)
}

// Point returns a point inside [0,width) × [0,height).
func (g *Generator) Point() geom.Point {
	return geom.Point{g.coord(g.width), g.coord(g.height)}
}

func (g *Generator) Points(n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = g.Point()
	}
	return points
}

// Box returns the corners of a random query box [lo, hi) inside the plane.
func (g *Generator) Box() (geom.Point, geom.Point) {
	lo := g.Point()
	hi := geom.Point{
		lo[geom.AxisX] + g.coord(g.width-lo[geom.AxisX]+1),
		lo[geom.AxisY] + g.coord(g.height-lo[geom.AxisY]+1),
	}
	return lo, hi
}
