package stone

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// StoneRepository defines the interface for stone persistence
type StoneRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Stone, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Stone, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, stone *Stone) error
	Update(ctx context.Context, stone *Stone) error
	Delete(ctx context.Context, id uuid.UUID) error
	Each(ctx context.Context, batchSize int, fn func(*Stone) error) error
}
