package service

import (
	"context"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// EventDispatcher implements ports.EventSink. It persists each batch, then
// fans every event out to the live publisher and the webhook queue.
// Failures are logged: the mutation behind an event is already committed.
type EventDispatcher struct {
	repo      ports.EventRepository
	publisher ports.EventPublisher
	webhooks  ports.WebhookService
	log       zerolog.Logger
}

// NewEventDispatcher creates a dispatcher. Any collaborator may be nil.
func NewEventDispatcher(repo ports.EventRepository, publisher ports.EventPublisher, webhooks ports.WebhookService, log zerolog.Logger) *EventDispatcher {
	return &EventDispatcher{repo: repo, publisher: publisher, webhooks: webhooks, log: log}
}

// Publish delivers a committed batch.
func (d *EventDispatcher) Publish(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}

	if d.repo != nil {
		if err := d.repo.Save(ctx, events); err != nil {
			d.log.Error().Err(err).Int("count", len(events)).Msg("failed to persist events")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range events {
		e := e
		if d.publisher != nil {
			g.Go(func() error {
				if err := d.publisher.Publish(gctx, e); err != nil {
					d.log.Warn().Err(err).Str("event_id", e.ID.String()).Str("type", string(e.Type)).Msg("failed to publish event")
				}
				return nil
			})
		}
		if d.webhooks != nil {
			g.Go(func() error {
				if err := d.webhooks.Enqueue(gctx, e); err != nil {
					d.log.Warn().Err(err).Str("event_id", e.ID.String()).Str("type", string(e.Type)).Msg("failed to enqueue webhook")
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	for _, e := range events {
		d.log.Debug().Str("event_id", e.ID.String()).Str("type", string(e.Type)).Msg("event dispatched")
	}
}
