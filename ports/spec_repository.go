package ports

import (
	"context"

	"fountains/domain/core"
)

// SpecRecord is the persisted form of an encoded specification together
// with the parameters needed to replay its input stream.
type SpecRecord struct {
	ID          core.SpecID      `json:"id" db:"id"`
	Label       string           `json:"label" db:"label"`
	SeedHex     string           `json:"seed_hex" db:"seed_hex"`
	Length      int              `json:"length" db:"length"`
	Bits        int              `json:"bits" db:"bits"`
	PackedHex   string           `json:"packed_hex" db:"packed_hex"`
	Fingerprint core.Fingerprint `json:"fingerprint" db:"fingerprint"`
	CreatedAt   core.Timestamp   `json:"created_at" db:"created_at"`
}

// VerificationRun records the outcome of checking a candidate function
// against a stored specification.
type VerificationRun struct {
	ID            core.RunID     `json:"id" db:"id"`
	SpecID        core.SpecID    `json:"spec_id" db:"spec_id"`
	FunctionLabel string         `json:"function_label" db:"function_label"`
	Passed        int            `json:"passed" db:"passed"`
	Failed        int            `json:"failed" db:"failed"`
	// FirstFailedIndex is -1 when every test case passed.
	FirstFailedIndex int64          `json:"first_failed_index" db:"first_failed_index"`
	CreatedAt        core.Timestamp `json:"created_at" db:"created_at"`
}

// Consistent reports whether the run observed no mismatch. True does not
// prove the candidate equals the reference; it certifies agreement on every
// sampled bit only.
func (r VerificationRun) Consistent() bool {
	return r.Failed == 0
}

// SpecRepository persists specifications and their verification runs.
type SpecRepository interface {
	CreateSpec(ctx context.Context, rec *SpecRecord) error
	GetSpec(ctx context.Context, id core.SpecID) (*SpecRecord, error)
	ListSpecs(ctx context.Context, limit, offset int) ([]*SpecRecord, error)
	CreateRun(ctx context.Context, run *VerificationRun) error
	ListRuns(ctx context.Context, specID core.SpecID) ([]*VerificationRun, error)
}
