package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"fountains/domain/core"

	"github.com/jmoiron/sqlx"
)

// schema creates the tables this adapter owns. Idempotent, so it can run on
// every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS specifications (
		id TEXT PRIMARY KEY,
		label TEXT,
		seed_hex TEXT NOT NULL,
		length INTEGER NOT NULL,
		bits INTEGER NOT NULL,
		packed_hex TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS verification_runs (
		id TEXT PRIMARY KEY,
		spec_id TEXT NOT NULL REFERENCES specifications(id),
		function_label TEXT,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		first_failed_index BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_verification_runs_spec_id
		ON verification_runs(spec_id)`,
	`CREATE INDEX IF NOT EXISTS idx_specifications_fingerprint
		ON specifications(fingerprint)`,
}

// Migrate ensures the repository schema exists
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// timestampScanner adapts core.Timestamp to database/sql scanning
type timestampScanner core.Timestamp

func (t *timestampScanner) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = timestampScanner(core.NewTimestamp(v))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

var _ driver.Valuer = timestampScanner{}

func (t timestampScanner) Value() (driver.Value, error) {
	return core.Timestamp(t).Time(), nil
}
