package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fountains/domain/core"
	"fountains/domain/fountain"
)

func TestGenerateMatchesStream(t *testing.T) {
	svc := NewFixtureService()
	p := fountain.Params{Seed: fountain.DefaultSeed(), Length: 3, Limit: 4}

	vectors, err := svc.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, vectors, 4)

	for i, v := range vectors {
		assert.Equal(t, fountain.HashInput(p.Seed, uint64(i), p.Length), v, "index %d", i)
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	svc := NewFixtureService()
	p := fountain.Params{Seed: fountain.SeedFromString("parallel"), Length: 16, Limit: 1000}

	sequential, err := svc.Generate(context.Background(), p)
	require.NoError(t, err)

	for _, shards := range []int{1, 2, 3, 7, 16} {
		parallel, err := svc.GenerateParallel(context.Background(), p, shards)
		require.NoError(t, err, "shards=%d", shards)
		assert.Equal(t, sequential, parallel, "shards=%d", shards)
	}
}

func TestGenerateParallelMoreShardsThanCases(t *testing.T) {
	svc := NewFixtureService()
	p := fountain.Params{Seed: fountain.DefaultSeed(), Length: 2, Limit: 3}

	vectors, err := svc.GenerateParallel(context.Background(), p, 64)
	require.NoError(t, err)
	assert.Len(t, vectors, 3)
}

func TestGenerateRequiresBoundedLimit(t *testing.T) {
	svc := NewFixtureService()

	_, err := svc.Generate(context.Background(), fountain.Params{Length: 2})
	assert.ErrorIs(t, err, core.ErrUnboundedLimit)

	_, err = svc.GenerateParallel(context.Background(), fountain.Params{Length: 2}, 4)
	assert.ErrorIs(t, err, core.ErrUnboundedLimit)
}

func TestGenerateCancellation(t *testing.T) {
	svc := NewFixtureService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, fountain.Params{Length: 2, Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
