package interfaces

import (
	"context"

	"budget_portal/internal/domain/entities"

	"github.com/cockroachdb/errors"
)

// ErrVersionConflict is returned by ReplaceBatch when a record changed since it
// was read. Nothing is written in that case.
var ErrVersionConflict = errors.New("estimation version conflict")

var ErrEstimationExists = errors.New("estimation already exists")

// IEstimationRepository abstracts the record store.
//
// Lookups return a zero-value record (empty ID) when nothing matches, the same
// convention the use cases rely on to raise not-found.
//
// Create stores r next to siblings, the records of r's line item as the caller
// read them. Every sibling must still be at its Version, and each is bumped to
// Version+1 in the same write so a ReplaceBatch built from the old read fails
// with ErrVersionConflict.
//
// ReplaceBatch is all-or-nothing: every record must exist with the Version it
// carries; stored copies get Version+1 and the given UpdatedAt.
type IEstimationRepository interface {
	Create(ctx context.Context, r entities.EstimationRecord, siblings []entities.EstimationRecord) (entities.EstimationRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimationRecord, error)
	ListByBudgetLineItem(ctx context.Context, lineItemID string) ([]entities.EstimationRecord, error)
	List(ctx context.Context, filter entities.RecordFilter) ([]entities.EstimationRecord, error)
	ReplaceBatch(ctx context.Context, records []entities.EstimationRecord) ([]entities.EstimationRecord, error)
}
