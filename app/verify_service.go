package app

import (
	"context"

	"fountains/domain/core"
	"fountains/domain/fountain"
	"fountains/internal/errors"
	"fountains/ports"
)

// VerifyService checks candidate functions against stored specifications
// and records the outcome.
type VerifyService struct {
	repo  ports.SpecRepository
	codec ports.BitCodec
}

// NewVerifyService creates a new verify service
func NewVerifyService(repo ports.SpecRepository, codec ports.BitCodec) *VerifyService {
	return &VerifyService{repo: repo, codec: codec}
}

// load reconstructs the replay parameters and specification from a record.
func (s *VerifyService) load(ctx context.Context, specID core.SpecID) (fountain.Params, fountain.Specification, *ports.SpecRecord, error) {
	rec, err := s.repo.GetSpec(ctx, specID)
	if err != nil {
		return fountain.Params{}, fountain.Specification{}, nil, err
	}

	seed, err := fountain.SeedFromHex(rec.SeedHex)
	if err != nil {
		return fountain.Params{}, fountain.Specification{}, nil, err
	}
	spec, err := s.codec.DecodeBits(rec.PackedHex, rec.Bits)
	if err != nil {
		return fountain.Params{}, fountain.Specification{}, nil, err
	}
	return fountain.Params{Seed: seed, Length: rec.Length}, spec, rec, nil
}

// VerifyStored replays a stored specification against a candidate function,
// records a verification run, and returns the run with the per-case results.
func (s *VerifyService) VerifyStored(ctx context.Context, specID core.SpecID, fn fountain.Function, functionLabel string) (*ports.VerificationRun, []bool, error) {
	p, spec, _, err := s.load(ctx, specID)
	if err != nil {
		return nil, nil, err
	}

	results, err := fountain.Verify(p, fn, spec)
	if err != nil {
		return nil, nil, err
	}
	return s.record(ctx, specID, functionLabel, results)
}

// VerifyOutputs checks candidate outputs supplied directly, one per test
// case in index order, against a stored specification. This is the deferred
// form used when the candidate function cannot run in-process.
func (s *VerifyService) VerifyOutputs(ctx context.Context, specID core.SpecID, outputs [][]byte, functionLabel string) (*ports.VerificationRun, []bool, error) {
	p, spec, _, err := s.load(ctx, specID)
	if err != nil {
		return nil, nil, err
	}
	if len(outputs) != spec.Len() {
		return nil, nil, core.ErrSpecLengthMismatch
	}

	checks, err := fountain.Checks(p, spec)
	if err != nil {
		return nil, nil, err
	}
	results := make([]bool, len(checks))
	for i, check := range checks {
		match, err := check.Apply(outputs[i])
		if err != nil {
			return nil, nil, err
		}
		results[i] = match
	}
	return s.record(ctx, specID, functionLabel, results)
}

// Checks exposes the deferred verification inputs for a stored
// specification: the caller applies its candidate elsewhere and submits the
// outputs through VerifyOutputs.
func (s *VerifyService) Checks(ctx context.Context, specID core.SpecID) ([]fountain.Check, error) {
	p, spec, _, err := s.load(ctx, specID)
	if err != nil {
		return nil, err
	}
	return fountain.Checks(p, spec)
}

func (s *VerifyService) record(ctx context.Context, specID core.SpecID, functionLabel string, results []bool) (*ports.VerificationRun, []bool, error) {
	run := &ports.VerificationRun{
		ID:               core.RunID(core.NewID()),
		SpecID:           specID,
		FunctionLabel:    functionLabel,
		FirstFailedIndex: -1,
		CreatedAt:        core.Now(),
	}
	for i, r := range results {
		if r {
			run.Passed++
			continue
		}
		run.Failed++
		if run.FirstFailedIndex < 0 {
			run.FirstFailedIndex = int64(i)
		}
	}

	if err := s.repo.CreateRun(ctx, run); err != nil {
		return nil, nil, errors.StorageFailed(err, "failed to persist verification run")
	}
	return run, results, nil
}
