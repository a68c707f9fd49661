package app

import (
	"context"

	"fountains/domain/core"
	"fountains/domain/fountain"
	"fountains/internal/errors"
	"fountains/ports"
)

// EncodeService encodes reference functions into specifications and
// persists them for later verification.
type EncodeService struct {
	repo  ports.SpecRepository
	codec ports.BitCodec
}

// NewEncodeService creates a new encode service
func NewEncodeService(repo ports.SpecRepository, codec ports.BitCodec) *EncodeService {
	return &EncodeService{repo: repo, codec: codec}
}

// Encode produces a specification without persisting it.
func (s *EncodeService) Encode(ctx context.Context, p fountain.Params, fn fountain.Function) (fountain.Specification, error) {
	return fountain.Encode(p, fn)
}

// EncodeAndStore encodes fn's behavior and persists the resulting
// specification under a fresh ID.
func (s *EncodeService) EncodeAndStore(ctx context.Context, p fountain.Params, fn fountain.Function, label string) (*ports.SpecRecord, error) {
	spec, err := fountain.Encode(p, fn)
	if err != nil {
		return nil, err
	}

	rec := &ports.SpecRecord{
		ID:          core.SpecID(core.NewID()),
		Label:       label,
		SeedHex:     p.Seed.Hex(),
		Length:      p.Length,
		Bits:        spec.Len(),
		PackedHex:   s.codec.Encode(spec),
		Fingerprint: spec.Fingerprint(),
		CreatedAt:   core.Now(),
	}
	if err := s.repo.CreateSpec(ctx, rec); err != nil {
		return nil, errors.StorageFailed(err, "failed to persist specification")
	}
	return rec, nil
}
