package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"

	"github.com/go-sod/geoindex/internal/buildinfo"
	"github.com/go-sod/geoindex/internal/config"
	"github.com/go-sod/geoindex/internal/geom"
	"github.com/go-sod/geoindex/internal/index"
	"github.com/go-sod/geoindex/internal/logging"
	"github.com/go-sod/geoindex/internal/pointgen"
	"github.com/go-sod/geoindex/internal/setup"
)

type depther interface {
	Depth() int
}

func main() {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	cfg := config.Config{}
	ctx, err := setup.Setup(ctx, &cfg)
	logger := logging.FromContext(ctx)
	if err != nil {
		logger.Fatalf("setup.Setup: %v", err)
	}
	fmt.Print(buildinfo.Graffiti)
	logger.Infof("%s %s", buildinfo.Info.Name(), buildinfo.Info.Tag())

	if err := run(ctx, &cfg); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx)
	w, h := cfg.Points.Width, cfg.Points.Height
	gen := pointgen.NewFromConfig(&cfg.Points)
	points := gen.Points(cfg.Points.Count)

	algs := append([]index.AlgType{index.AlgTypeBrute}, cfg.Index.Algs...)
	indexes, err := index.BuildAll(ctx, algs, points, w, h)
	if err != nil {
		return fmt.Errorf("index.BuildAll: %w", err)
	}
	oracle := indexes[0]

	q := geom.Point{w / 2, h / 2}
	lo, hi := geom.Point{w / 5 * 2, h / 5 * 2}, geom.Point{w / 5 * 3, h / 5 * 3}
	for i, idx := range indexes {
		alg := algs[i]
		if d, ok := idx.(depther); ok {
			logger.Infow("index built", "alg", alg, "points", idx.Len(), "depth", d.Depth())
		}
		if cfg.Dump {
			spew.Fdump(os.Stdout, idx)
		}
		if idx.Len() > 0 {
			nn, err := idx.Nearest(q)
			if err != nil {
				return fmt.Errorf("%s nearest: %w", alg, err)
			}
			logger.Infow("nearest", "alg", alg, "query", q, "point", nn, "distance", geom.EuclideanDistance(q, nn))
		}
		found := index.Sorted(idx.RangeSearch(lo, hi))
		logger.Infow("range search", "alg", alg, "lo", lo, "hi", hi, "count", len(found), "points", found)
	}

	queries := make([]index.Query, cfg.Queries)
	for i := range queries {
		queries[i].Point = gen.Point()
		queries[i].Lo, queries[i].Hi = gen.Box()
	}
	for i, idx := range indexes[1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := index.Verify(idx, oracle, queries); err != nil {
			return fmt.Errorf("%s disagrees with brute force: %w", algs[i+1], err)
		}
		logger.Infow("verified against brute force", "alg", algs[i+1], "queries", len(queries))
	}
	return nil
}
