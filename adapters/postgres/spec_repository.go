package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fountains/domain/core"
	"fountains/ports"

	"github.com/jmoiron/sqlx"
)

// specRepository implements the SpecRepository interface
type specRepository struct {
	db *sqlx.DB
}

// NewSpecRepository creates a new specification repository
func NewSpecRepository(db *sqlx.DB) ports.SpecRepository {
	return &specRepository{db: db}
}

// CreateSpec inserts a new specification record
func (r *specRepository) CreateSpec(ctx context.Context, rec *ports.SpecRecord) error {
	query := `INSERT INTO specifications (
		id, label, seed_hex, length, bits, packed_hex, fingerprint, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Label, rec.SeedHex, rec.Length, rec.Bits,
		rec.PackedHex, rec.Fingerprint.String(), rec.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to create specification: %w", err)
	}

	return nil
}

// GetSpec retrieves a specification by its ID
func (r *specRepository) GetSpec(ctx context.Context, id core.SpecID) (*ports.SpecRecord, error) {
	query := `SELECT
		id, COALESCE(label, '') as label, seed_hex, length, bits, packed_hex, fingerprint, created_at
	FROM specifications WHERE id = $1`

	var rec ports.SpecRecord
	var fingerprint string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.Label, &rec.SeedHex, &rec.Length, &rec.Bits,
		&rec.PackedHex, &fingerprint, (*timestampScanner)(&rec.CreatedAt),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", core.ErrSpecNotFound, id)
		}
		return nil, fmt.Errorf("failed to get specification: %w", err)
	}
	rec.Fingerprint = core.Fingerprint(fingerprint)

	return &rec, nil
}

// ListSpecs retrieves specifications ordered by creation time with pagination
func (r *specRepository) ListSpecs(ctx context.Context, limit, offset int) ([]*ports.SpecRecord, error) {
	query := `SELECT
		id, COALESCE(label, '') as label, seed_hex, length, bits, packed_hex, fingerprint, created_at
	FROM specifications
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list specifications: %w", err)
	}
	defer rows.Close()

	var records []*ports.SpecRecord
	for rows.Next() {
		var rec ports.SpecRecord
		var fingerprint string
		err := rows.Scan(
			&rec.ID, &rec.Label, &rec.SeedHex, &rec.Length, &rec.Bits,
			&rec.PackedHex, &fingerprint, (*timestampScanner)(&rec.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan specification: %w", err)
		}
		rec.Fingerprint = core.Fingerprint(fingerprint)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate specifications: %w", err)
	}

	return records, nil
}

// CreateRun inserts a verification run record
func (r *specRepository) CreateRun(ctx context.Context, run *ports.VerificationRun) error {
	query := `INSERT INTO verification_runs (
		id, spec_id, function_label, passed, failed, first_failed_index, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.SpecID, run.FunctionLabel, run.Passed, run.Failed,
		run.FirstFailedIndex, run.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to create verification run: %w", err)
	}

	return nil
}

// ListRuns retrieves all verification runs for a specification
func (r *specRepository) ListRuns(ctx context.Context, specID core.SpecID) ([]*ports.VerificationRun, error) {
	query := `SELECT
		id, spec_id, COALESCE(function_label, '') as function_label,
		passed, failed, first_failed_index, created_at
	FROM verification_runs
	WHERE spec_id = $1
	ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, specID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification runs: %w", err)
	}
	defer rows.Close()

	var runs []*ports.VerificationRun
	for rows.Next() {
		var run ports.VerificationRun
		err := rows.Scan(
			&run.ID, &run.SpecID, &run.FunctionLabel,
			&run.Passed, &run.Failed, &run.FirstFailedIndex,
			(*timestampScanner)(&run.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verification runs: %w", err)
	}

	return runs, nil
}
