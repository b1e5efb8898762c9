package memory

import (
	"context"
	"sync"
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// EstimationMemoryRepository is the default record store. Nothing survives a
// restart.
type EstimationMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]entities.EstimationRecord
}

var _ interfaces.IEstimationRepository = (*EstimationMemoryRepository)(nil)

func NewEstimationMemoryRepository(seed []entities.EstimationRecord) *EstimationMemoryRepository {
	r := &EstimationMemoryRepository{records: make(map[string]entities.EstimationRecord, len(seed))}
	for _, rec := range seed {
		r.records[rec.ID] = rec.Clone()
	}
	return r
}

// Create checks the siblings and inserts under one lock, so a concurrent
// ReplaceBatch lands either before (version conflict here) or after (version
// conflict there).
func (r *EstimationMemoryRepository) Create(_ context.Context, rec entities.EstimationRecord, siblings []entities.EstimationRecord) (entities.EstimationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; ok {
		return entities.EstimationRecord{}, errors.Wrapf(interfaces.ErrEstimationExists, "id %s", rec.ID)
	}
	for _, sib := range siblings {
		stored, ok := r.records[sib.ID]
		if !ok || stored.Version != sib.Version {
			return entities.EstimationRecord{}, errors.Wrapf(interfaces.ErrVersionConflict, "estimation %s changed since it was read", sib.ID)
		}
	}

	for _, sib := range siblings {
		stored := r.records[sib.ID]
		stored.Version++
		r.records[sib.ID] = stored
	}
	r.records[rec.ID] = rec.Clone()
	return rec.Clone(), nil
}

func (r *EstimationMemoryRepository) GetByID(_ context.Context, id string) (entities.EstimationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return entities.EstimationRecord{}, nil
	}
	return rec.Clone(), nil
}

func (r *EstimationMemoryRepository) ListByBudgetLineItem(ctx context.Context, lineItemID string) ([]entities.EstimationRecord, error) {
	return r.List(ctx, entities.RecordFilter{BudgetLineItemID: lineItemID})
}

func (r *EstimationMemoryRepository) List(_ context.Context, filter entities.RecordFilter) ([]entities.EstimationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.FilterMap(lo.Values(r.records), func(rec entities.EstimationRecord, _ int) (entities.EstimationRecord, bool) {
		return rec.Clone(), filter.Matches(rec)
	})
	entities.SortRecords(out)
	return out, nil
}

// ReplaceBatch validates every record before writing any of them.
func (r *EstimationMemoryRepository) ReplaceBatch(_ context.Context, batch []entities.EstimationRecord) ([]entities.EstimationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range batch {
		stored, ok := r.records[rec.ID]
		if !ok {
			return nil, errors.Wrapf(interfaces.ErrVersionConflict, "estimation %s no longer exists", rec.ID)
		}
		if stored.Version != rec.Version {
			return nil, errors.Wrapf(interfaces.ErrVersionConflict, "estimation %s at version %d, have %d", rec.ID, stored.Version, rec.Version)
		}
	}
	if dup := lo.FindDuplicatesBy(batch, func(rec entities.EstimationRecord) string { return rec.ID }); len(dup) > 0 {
		return nil, errors.Newf("estimation %s appears twice in batch", dup[0].ID)
	}

	now := time.Now().UTC()
	out := make([]entities.EstimationRecord, 0, len(batch))
	for _, rec := range batch {
		next := rec.Clone()
		next.Version++
		if next.UpdatedAt.IsZero() {
			next.UpdatedAt = now
		}
		r.records[next.ID] = next
		out = append(out, next.Clone())
	}
	return out, nil
}
