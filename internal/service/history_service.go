package service

import (
	"context"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// historyService implements ports.HistoryService.
type historyService struct {
	repo ports.EventRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(repo ports.EventRepository) ports.HistoryService {
	return &historyService{repo: repo}
}

// ListEvents returns one page of persisted events, newest first.
func (s *historyService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error) {
	if filter.From != nil && filter.To != nil && *filter.From > *filter.To {
		return nil, 0, apperror.Validation("from must not be after to")
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PageSize < 1:
		filter.PageSize = defaultPageSize
	case filter.PageSize > maxPageSize:
		filter.PageSize = maxPageSize
	}

	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return events, total, nil
}
