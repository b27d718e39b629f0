package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"

	"github.com/rs/zerolog"
)

// webhookRetryIntervals defines the wait before each redelivery.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// HeaderWebhookSignature carries "t=<unix>,v1=<hmac>", where the HMAC covers
// SignedContent of the timestamp and the JSON of the payload's data field.
const HeaderWebhookSignature = "X-Registry-Signature"

// WebhookPayload is the JSON structure posted to the webhook URL.
type WebhookPayload struct {
	EventType string       `json:"event_type"`
	Data      domain.Event `json:"data"`
	Timestamp int64        `json:"timestamp"`
	Signature string       `json:"signature"`
}

// webhookService implements ports.WebhookService.
type webhookService struct {
	url        string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	retries    []time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewWebhookService creates a new webhook service. An empty url disables
// delivery.
func NewWebhookService(url, secret string, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) ports.WebhookService {
	return &webhookService{
		url:        url,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		retries:    webhookRetryIntervals,
		now:        time.Now,
		log:        log,
	}
}

// Enqueue signs the event and delivers it asynchronously with retries.
func (s *webhookService) Enqueue(_ context.Context, event domain.Event) error {
	if s.url == "" {
		s.log.Debug().Str("event_id", event.ID.String()).Msg("webhook: no webhook URL configured, skipping")
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	ts := s.now().Unix()
	payload := WebhookPayload{
		EventType: string(event.Type),
		Data:      event,
		Timestamp: ts,
		Signature: s.sigSvc.Sign(s.secret, SignedContent(ts, data)),
	}

	go s.deliverWithRetries(payload, event.ID.String())

	return nil
}

// deliverWithRetries attempts delivery until a 2xx response or the retry
// schedule is exhausted.
func (s *webhookService) deliverWithRetries(payload WebhookPayload, eventID string) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("event_id", eventID).Msg("webhook: failed to marshal payload")
		return
	}

	for attempt := 0; attempt <= len(s.retries); attempt++ {
		if attempt > 0 {
			time.Sleep(s.retries[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payloadBytes))
		if err != nil {
			s.log.Error().Err(err).Str("event_id", eventID).Int("attempt", attempt+1).Msg("webhook: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWebhookSignature, FormatSignatureHeader(payload.Timestamp, payload.Signature))

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", eventID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered successfully")
			return
		}

		s.log.Warn().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	s.log.Error().Str("event_id", eventID).Msg("webhook: all retry attempts exhausted")
}
