package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fountains/domain/core"
	"fountains/domain/fountain"
)

// FixtureService materializes bounded fixture corpora from the deterministic
// input stream, in raw generation mode: no bit extraction, no specification.
type FixtureService struct{}

// NewFixtureService creates a new fixture service
func NewFixtureService() *FixtureService {
	return &FixtureService{}
}

// Generate produces the full corpus for bounded params, in index order.
func (s *FixtureService) Generate(ctx context.Context, p fountain.Params) ([][]byte, error) {
	stream, err := fountain.NewStream(p)
	if err != nil {
		return nil, err
	}
	if !p.Bounded() {
		return nil, core.ErrUnboundedLimit
	}

	vectors := make([][]byte, 0, p.Limit)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, ok := stream.Next()
		if !ok {
			return vectors, nil
		}
		vectors = append(vectors, v)
	}
}

// GenerateParallel produces the same corpus as Generate by splitting the
// index range across shards. Every vector is a pure function of
// (seed, index), so disjoint ranges need no coordination; the shards are
// stitched back together in index order.
func (s *FixtureService) GenerateParallel(ctx context.Context, p fountain.Params, shards int) ([][]byte, error) {
	stream, err := fountain.NewStream(p)
	if err != nil {
		return nil, err
	}
	if !p.Bounded() {
		return nil, core.ErrUnboundedLimit
	}
	if shards <= 0 {
		shards = runtime.NumCPU()
	}
	if shards > p.Limit {
		shards = p.Limit
	}
	if shards <= 1 {
		return s.Generate(ctx, p)
	}

	vectors := make([][]byte, p.Limit)
	g, ctx := errgroup.WithContext(ctx)
	chunk := (p.Limit + shards - 1) / shards
	for start := 0; start < p.Limit; start += chunk {
		start := start
		end := start + chunk
		if end > p.Limit {
			end = p.Limit
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				vectors[i] = stream.At(uint64(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
