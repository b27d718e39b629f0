package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fractional-asset-registry/internal/core/domain"

	"github.com/google/uuid"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Save inserts the events of one committed mutation in a single database
// transaction.
func (r *EventRepo) Save(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin event tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `INSERT INTO events (id, event_type, source, actor, asset_id, vault_id, data, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, e := range events {
		var data []byte
		if len(e.Data) > 0 {
			if data, err = json.Marshal(e.Data); err != nil {
				return fmt.Errorf("marshal event data: %w", err)
			}
		}
		var assetID *int64
		if e.AssetID != 0 {
			id := int64(e.AssetID)
			assetID = &id
		}
		_, err := tx.Exec(ctx, query,
			e.ID, string(e.Type), e.Source, e.Actor.String(),
			assetID, e.VaultID, data, e.OccurredAt,
		)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit events: %w", err)
	}
	return nil
}

// List fetches events with filtering and pagination, newest first.
func (r *EventRepo) List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", argIdx))
		args = append(args, string(*filter.Type))
		argIdx++
	}
	if filter.AssetID != nil {
		conditions = append(conditions, fmt.Sprintf("asset_id = $%d", argIdx))
		args = append(args, int64(*filter.AssetID))
		argIdx++
	}
	if filter.VaultID != nil {
		conditions = append(conditions, fmt.Sprintf("vault_id = $%d", argIdx))
		args = append(args, *filter.VaultID)
		argIdx++
	}
	if filter.Actor != nil {
		conditions = append(conditions, fmt.Sprintf("actor = $%d", argIdx))
		args = append(args, filter.Actor.String())
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("occurred_at >= to_timestamp($%d)", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("occurred_at <= to_timestamp($%d)", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	// Fetch page
	offset := (filter.Page - 1) * filter.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, event_type, source, actor, asset_id, vault_id, data, occurred_at
		FROM events %s ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			eventType string
			actor     string
			assetID   *int64
			vaultID   *uuid.UUID
			data      []byte
		)
		if err := rows.Scan(&e.ID, &eventType, &e.Source, &actor, &assetID, &vaultID, &data, &e.OccurredAt); err != nil {
			return nil, 0, fmt.Errorf("scan event row: %w", err)
		}
		e.Type = domain.EventType(eventType)
		if addr, ok := domain.ParseAddress(actor); ok {
			e.Actor = addr
		}
		if assetID != nil {
			e.AssetID = uint64(*assetID)
		}
		e.VaultID = vaultID
		if len(data) > 0 {
			if err := json.Unmarshal(data, &e.Data); err != nil {
				return nil, 0, fmt.Errorf("decode event data: %w", err)
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate event rows: %w", err)
	}
	return events, total, nil
}
