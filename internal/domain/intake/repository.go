package intake

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// RecordRepository persists intake records of every kind
type RecordRepository interface {
	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*Record, error)
	FindAll(ctx context.Context, kind Kind, filter shared.Filter) ([]Record, error)
	Count(ctx context.Context, kind Kind, filter shared.Filter) (int64, error)
	Create(ctx context.Context, record *Record) error
	// Update saves the record if its stored version is one behind, else ErrConcurrencyConflict
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
	// Each walks every record of every kind in batches, stopping at the first error fn returns.
	Each(ctx context.Context, batchSize int, fn func(*Record) error) error
}
