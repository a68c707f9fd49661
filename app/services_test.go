package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fountains/adapters/bitcodec"
	"fountains/domain/core"
	"fountains/domain/fountain"
	"fountains/internal/testkit"
)

func newServices(t *testing.T) (*EncodeService, *VerifyService) {
	t.Helper()
	kit := testkit.NewTestKit()
	codec := bitcodec.New()
	return NewEncodeService(kit.SpecRepository(), codec), NewVerifyService(kit.SpecRepository(), codec)
}

func referenceFunction(t *testing.T, name string) fountain.Function {
	t.Helper()
	fn, ok := testkit.Function(name)
	require.True(t, ok, "unknown reference function %s", name)
	return fn
}

func TestEncodeAndStoreRoundTrip(t *testing.T) {
	encode, verify := newServices(t)
	ctx := context.Background()
	p := fountain.Params{Seed: fountain.DefaultSeed(), Length: 3, Limit: 8}
	sum := referenceFunction(t, "sum")

	rec, err := encode.EncodeAndStore(ctx, p, sum, "sum")
	require.NoError(t, err)
	assert.False(t, core.ID(rec.ID).IsEmpty())
	assert.Equal(t, 8, rec.Bits)
	assert.Equal(t, "cf", rec.PackedHex)
	assert.Equal(t, 3, rec.Length)

	run, results, err := verify.VerifyStored(ctx, rec.ID, sum, "sum")
	require.NoError(t, err)
	assert.True(t, run.Consistent())
	assert.Equal(t, 8, run.Passed)
	assert.Equal(t, 0, run.Failed)
	assert.Equal(t, int64(-1), run.FirstFailedIndex)
	for i, r := range results {
		assert.True(t, r, "index %d", i)
	}
}

func TestVerifyStoredDetectsMismatch(t *testing.T) {
	encode, verify := newServices(t)
	ctx := context.Background()
	p := fountain.Params{Seed: fountain.DefaultSeed(), Length: 3, Limit: 8}

	rec, err := encode.EncodeAndStore(ctx, p, referenceFunction(t, "sum"), "sum")
	require.NoError(t, err)

	run, results, err := verify.VerifyStored(ctx, rec.ID, referenceFunction(t, "product"), "product")
	require.NoError(t, err)
	assert.False(t, run.Consistent())
	assert.Positive(t, run.Failed)
	assert.Equal(t, int64(0), run.FirstFailedIndex)
	assert.Contains(t, results, false)

	runs, err := verify.repo.ListRuns(ctx, rec.ID)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestVerifyOutputs(t *testing.T) {
	encode, verify := newServices(t)
	ctx := context.Background()
	p := fountain.Params{Seed: fountain.SeedFromString("outputs"), Length: 4, Limit: 16}
	reverse := referenceFunction(t, "reverse")

	rec, err := encode.EncodeAndStore(ctx, p, reverse, "reverse")
	require.NoError(t, err)

	// Produce the candidate's outputs out-of-process, then submit them.
	checks, err := verify.Checks(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, checks, 16)

	outputs := make([][]byte, len(checks))
	for i, check := range checks {
		outputs[i] = reverse.Apply(check.Input)
	}

	run, results, err := verify.VerifyOutputs(ctx, rec.ID, outputs, "reverse-remote")
	require.NoError(t, err)
	assert.True(t, run.Consistent())
	assert.Len(t, results, 16)

	// Wrong cardinality is rejected eagerly.
	_, _, err = verify.VerifyOutputs(ctx, rec.ID, outputs[:3], "truncated")
	assert.ErrorIs(t, err, core.ErrSpecLengthMismatch)
}

func TestVerifyStoredUnknownSpec(t *testing.T) {
	_, verify := newServices(t)

	_, _, err := verify.VerifyStored(context.Background(), core.SpecID("missing"), referenceFunction(t, "sum"), "sum")
	assert.True(t, core.IsNotFoundError(err))
}
