package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader names the client-chosen key for a create request
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// IdempotencyConfig configures the idempotency middleware
type IdempotencyConfig struct {
	Store shared.IdempotencyStore
	TTL   time.Duration
	// SkipPaths are exact paths that never record keys, such as login.
	SkipPaths []string
	Logger    *zap.Logger
}

// Idempotency rejects a replayed POST carrying an Idempotency-Key already seen
// for the same user and path. Keys of failed or panicking requests are
// released so the client may retry them.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if cfg.Store == nil || c.Request.Method != http.MethodPost || key == "" || skip[c.Request.URL.Path] {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidInput, "Idempotency-Key is too long", getRequestID(c)))
			return
		}

		scoped := GetJWTUserID(c) + ":" + c.Request.URL.Path + ":" + key
		fresh, err := cfg.Store.MarkProcessed(c.Request.Context(), scoped, cfg.TTL)
		if err != nil {
			log.Error("Idempotency store unavailable", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeServiceUnavailable, "Unable to check idempotency key", getRequestID(c)))
			return
		}
		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeDuplicateRequest, "Request with this Idempotency-Key was already processed", getRequestID(c)))
			return
		}

		completed := false
		defer func() {
			// a panic unwinds through here before Recovery writes the 500
			if completed && c.Writer.Status() < http.StatusBadRequest {
				return
			}
			// request context may already be cancelled
			ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 2*time.Second)
			defer cancel()
			if err := cfg.Store.Release(ctx, scoped); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}()

		c.Next()
		completed = true
	}
}
