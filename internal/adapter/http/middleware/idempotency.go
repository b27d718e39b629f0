package middleware

import (
	"bytes"
	"net/http"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
	"fractional-asset-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderIdempotencyKey is the optional client-chosen request key.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplay marks a response served from the idempotency log.
	HeaderIdempotentReplay = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 128
	inFlightTTL          = 30 * time.Second
)

// captureWriter tees the response body so it can be stored after the
// handler ran.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a payment-bearing request
// that carries an Idempotency-Key the principal already used for scope.
// Requests without the header pass through untouched. lock may be nil.
func Idempotency(svc ports.IdempotencyService, lock ports.IdempotencyLock, scope string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			response.Error(c, apperror.Validation("Idempotency-Key is too long"))
			c.Abort()
			return
		}
		principal, ok := Principal(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		fullKey := domain.BuildIdempotencyKey(principal, scope, key)

		entry, err := svc.Lookup(ctx, fullKey)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if entry != nil {
			c.Header(HeaderIdempotentReplay, "true")
			c.Data(entry.StatusCode, "application/json; charset=utf-8", entry.ResponseJSON)
			c.Abort()
			return
		}

		if lock != nil {
			acquired, err := lock.Acquire(ctx, fullKey, inFlightTTL)
			switch {
			case err != nil:
				log.Warn().Err(err).Str("key", fullKey).Msg("idempotency lock unavailable, proceeding without it")
			case !acquired:
				response.Error(c, apperror.ErrRequestInFlight())
				c.Abort()
				return
			default:
				defer func() {
					if err := lock.Release(ctx, fullKey); err != nil {
						log.Warn().Err(err).Str("key", fullKey).Msg("failed to release idempotency lock")
					}
				}()
			}
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		if err := svc.Store(ctx, &domain.IdempotencyLog{
			Key:          fullKey,
			StatusCode:   status,
			ResponseJSON: w.body.Bytes(),
		}); err != nil {
			log.Warn().Err(err).Str("key", fullKey).Msg("failed to store idempotent response")
		}
	}
}
