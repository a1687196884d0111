package cache

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/domain/shared"
)

// NewIdempotencyStore returns a Redis-backed store when client is non-nil, otherwise an
// in-memory one. The in-memory store does not share keys between instances.
func NewIdempotencyStore(client redis.UniversalClient, logger *zap.Logger) shared.IdempotencyStore {
	if client != nil {
		logger.Info("Using Redis idempotency store")
		return NewRedisIdempotencyStore(client, "")
	}
	logger.Warn("Redis disabled, using in-memory idempotency store; keys are not shared between instances")
	return NewInMemoryIdempotencyStore(0)
}
