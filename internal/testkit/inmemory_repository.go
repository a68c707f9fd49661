package testkit

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fountains/domain/core"
	"fountains/ports"
)

// InMemorySpecRepository is a map-backed SpecRepository for tests and
// database-free deployments.
type InMemorySpecRepository struct {
	mu    sync.RWMutex
	specs map[core.SpecID]*ports.SpecRecord
	runs  map[core.SpecID][]*ports.VerificationRun
}

// NewInMemorySpecRepository creates an empty in-memory repository
func NewInMemorySpecRepository() *InMemorySpecRepository {
	return &InMemorySpecRepository{
		specs: make(map[core.SpecID]*ports.SpecRecord),
		runs:  make(map[core.SpecID][]*ports.VerificationRun),
	}
}

var _ ports.SpecRepository = (*InMemorySpecRepository)(nil)

func (r *InMemorySpecRepository) CreateSpec(ctx context.Context, rec *ports.SpecRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[rec.ID]; exists {
		return fmt.Errorf("specification already exists: %s", rec.ID)
	}
	cp := *rec
	r.specs[rec.ID] = &cp
	return nil
}

func (r *InMemorySpecRepository) GetSpec(ctx context.Context, id core.SpecID) (*ports.SpecRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.specs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrSpecNotFound, id)
	}
	cp := *rec
	return &cp, nil
}

func (r *InMemorySpecRepository) ListSpecs(ctx context.Context, limit, offset int) ([]*ports.SpecRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*ports.SpecRecord, 0, len(r.specs))
	for _, rec := range r.specs {
		cp := *rec
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[j].CreatedAt.Before(all[i].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *InMemorySpecRepository) CreateRun(ctx context.Context, run *ports.VerificationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.specs[run.SpecID]; !ok {
		return fmt.Errorf("%w: %s", core.ErrSpecNotFound, run.SpecID)
	}
	cp := *run
	r.runs[run.SpecID] = append(r.runs[run.SpecID], &cp)
	return nil
}

func (r *InMemorySpecRepository) ListRuns(ctx context.Context, specID core.SpecID) ([]*ports.VerificationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := r.runs[specID]
	out := make([]*ports.VerificationRun, len(runs))
	for i, run := range runs {
		cp := *run
		out[i] = &cp
	}
	return out, nil
}
