package terrain

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/observability"
)

// Option tunes how [Generate] runs. Options never change the output.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers bounds the number of rows computed concurrently.
// Values below 1 mean 1. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = max(n, 1) }
}

// Generate computes the elevation of every cell of a width x height map.
//
// Dimensions and config are validated before anything is allocated. Rows are
// filled concurrently; cancellation of ctx is observed between rows and
// discards the partial grid. Identical arguments always yield identical grids.
func Generate(ctx context.Context, seed uint32, width, height int, cfg Config, opts ...Option) (*Grid, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	hooks := observability.Generate()
	hooks.OnGenerateStart(ctx, cfg.Name, width, height)
	start := time.Now()

	grid, err := fill(ctx, seed, width, height, cfg, o.workers)

	hooks.OnGenerateComplete(ctx, cfg.Name, width*height, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return grid, nil
}

func fill(ctx context.Context, seed uint32, width, height int, cfg Config, workers int) (*Grid, error) {
	field := cfg.Field(seed)
	cells := make([][]float64, height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := make([]float64, width)
			for x := range row {
				row[x] = Elevation(field, x, y, cfg)
			}
			cells[y] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Grid{Seed: seed, Width: width, Height: height, Cells: cells}, nil
}
