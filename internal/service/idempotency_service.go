package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

const idempotencyTTL = domain.IdempotencyWindow

// idempotencyService implements ports.IdempotencyService with Redis as the
// fast path and PostgreSQL as the durable record.
type idempotencyService struct {
	cache ports.IdempotencyCache
	repo  ports.IdempotencyRepository
	log   zerolog.Logger
}

// NewIdempotencyService creates a new idempotency service.
func NewIdempotencyService(cache ports.IdempotencyCache, repo ports.IdempotencyRepository, log zerolog.Logger) ports.IdempotencyService {
	return &idempotencyService{cache: cache, repo: repo, log: log}
}

// Lookup returns the stored response for key, or nil.
func (s *idempotencyService) Lookup(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	// Layer 1: Redis
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		entry := &domain.IdempotencyLog{}
		if err := json.Unmarshal(cached, entry); err == nil {
			return entry, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding malformed cached idempotency entry")
	}

	// Layer 2: DB
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if entry != nil {
		s.warm(ctx, entry)
	}
	return entry, nil
}

// Store records a response durably, then caches it best-effort.
func (s *idempotencyService) Store(ctx context.Context, entry *domain.IdempotencyLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}
	s.warm(ctx, entry)
	return nil
}

func (s *idempotencyService) warm(ctx context.Context, entry *domain.IdempotencyLog) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, entry.Key, data, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", entry.Key).Msg("failed to cache idempotency in redis")
	}
}
