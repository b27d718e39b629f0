package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}
}

func TestWebhookService_Enqueue_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSigSvc := mocks.NewMockSignatureService(ctrl)
	delivered := make(chan *http.Request, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			delivered <- req
			return okResponse(), nil
		},
	}

	svc := NewWebhookService("https://hooks.example.com/registry", "hook-secret", mockSigSvc, httpClient, newTestLogger())
	svc.(*webhookService).now = func() time.Time { return time.Unix(1700000000, 0) }

	event := domain.NewEvent(domain.EventAssetMinted, "registry", minterAddr, map[string]any{"valuation": 100000}).ForAsset(1)
	data, err := json.Marshal(event)
	require.NoError(t, err)
	mockSigSvc.EXPECT().Sign("hook-secret", "1700000000."+string(data)).Return("signature-hash")

	require.NoError(t, svc.Enqueue(context.Background(), event))

	select {
	case req := <-delivered:
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "t=1700000000,v1=signature-hash", req.Header.Get(HeaderWebhookSignature))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var payload WebhookPayload
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		assert.Equal(t, string(domain.EventAssetMinted), payload.EventType)
		assert.Equal(t, event.ID, payload.Data.ID)
		assert.Equal(t, "signature-hash", payload.Signature)
		assert.Equal(t, int64(1700000000), payload.Timestamp)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook not delivered in time")
	}
}

func TestWebhookService_Enqueue_NoURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			t.Error("no request expected without a webhook URL")
			return okResponse(), nil
		},
	}
	svc := NewWebhookService("", "hook-secret", mocks.NewMockSignatureService(ctrl), httpClient, newTestLogger())

	err := svc.Enqueue(context.Background(), domain.NewEvent(domain.EventAssetFrozen, "registry", recoveryAddr, nil))
	assert.NoError(t, err)
}

func TestWebhookService_RetriesUntilSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSigSvc := mocks.NewMockSignatureService(ctrl)
	mockSigSvc.EXPECT().Sign("hook-secret", gomock.Any()).Return("sig")

	var attempts int32
	done := make(chan struct{})
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			switch atomic.AddInt32(&attempts, 1) {
			case 1:
				return nil, errors.New("connection refused")
			case 2:
				return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader(""))}, nil
			default:
				close(done)
				return okResponse(), nil
			}
		},
	}

	svc := NewWebhookService("https://hooks.example.com/registry", "hook-secret", mockSigSvc, httpClient, newTestLogger())
	svc.(*webhookService).retries = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

	require.NoError(t, svc.Enqueue(context.Background(), domain.NewEvent(domain.EventSharesBought, "vault", bobAddr, nil)))

	select {
	case <-done:
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	case <-time.After(2 * time.Second):
		t.Fatal("webhook not redelivered in time")
	}
}

func TestWebhookService_ReceiverCanVerifyDelivery(t *testing.T) {
	sigSvc := NewHMACSignatureService()
	delivered := make(chan *http.Request, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			delivered <- req
			return okResponse(), nil
		},
	}

	svc := NewWebhookService("https://hooks.example.com/registry", "hook-secret", sigSvc, httpClient, newTestLogger())
	require.NoError(t, svc.Enqueue(context.Background(), domain.NewEvent(domain.EventVaultCreated, "factory", minterAddr, nil)))

	select {
	case req := <-delivered:
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&envelope))
		err := sigSvc.VerifyHeader("hook-secret", envelope.Data, req.Header.Get(HeaderWebhookSignature), 5*time.Minute, time.Now())
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook not delivered in time")
	}
}
