package block

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// BlockRepository defines the interface for block persistence
type BlockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Block, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Block, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, block *Block) error
	Update(ctx context.Context, block *Block) error
	Delete(ctx context.Context, id uuid.UUID) error
	Each(ctx context.Context, batchSize int, fn func(*Block) error) error
}
