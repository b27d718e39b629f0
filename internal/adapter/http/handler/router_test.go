package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fractional-asset-registry/internal/adapter/ledger/memory"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiHarness struct {
	router *gin.Engine
	tokens *service.JWTTokenService
}

// newAPIHarness wires the real services over in-memory ledgers behind the
// full router, the way cmd/api does over the configured stores.
func newAPIHarness(t *testing.T, admin domain.Address) *apiHarness {
	t.Helper()
	log := zerolog.New(io.Discard)
	sink := service.NewEventDispatcher(nil, nil, nil, log)

	roles := service.NewAccessControl(admin, sink, log)
	policy := service.NewPolicyEngine(roles, sink, log)
	funds := memory.NewFundsLedger()

	registry, err := service.NewRegistryService(service.RegistryParams{
		Address:        registryAddr,
		FeeCollector:   domain.DeriveAddress("handler", "collector"),
		MintFeeBps:     300,
		TransferFeeBps: 200,
	}, memory.NewAssetLedger(), funds, policy, roles, sink, log)
	require.NoError(t, err)

	factory, err := service.NewFactoryService(service.FactoryParams{
		Address:        domain.DeriveAddress("handler", "factory"),
		FeeCollector:   domain.DeriveAddress("handler", "collector"),
		CreationFeeBps: 100,
	}, []ports.AssetCustodian{registry}, memory.ShareLedgers{}, funds, policy, roles, sink, log)
	require.NoError(t, err)

	tokens := service.NewJWTTokenService("router-test-secret", time.Hour, "fractional-asset-registry")

	router := SetupRouter(RouterDeps{
		Registry: registry,
		Policy:   policy,
		Roles:    roles,
		Factory:  factory,
		Funds:    service.NewFundsService(funds, roles, sink, log),
		TokenSvc: tokens,
		Logger:   log,
	})
	return &apiHarness{router: router, tokens: tokens}
}

func (h *apiHarness) do(t *testing.T, as domain.Address, method, path string, body any) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		token, _, err := h.tokens.Generate(as)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestRouter_HealthIsPublic(t *testing.T) {
	h := newAPIHarness(t, aliceAddr)

	code, resp := h.do(t, "", http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp["status"])
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	h := newAPIHarness(t, aliceAddr)

	code, resp := h.do(t, "", http.MethodGet, "/api/v1/assets/1", nil)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_003", resp["error_code"])
}

func TestRouter_MintFractionalizeAndBuy(t *testing.T) {
	admin := aliceAddr
	minter := domain.DeriveAddress("handler", "minter")
	buyer := bobAddr
	h := newAPIHarness(t, admin)

	code, _ := h.do(t, admin, http.MethodPost, "/api/v1/roles/grant", map[string]any{
		"principal": minter.String(),
		"role":      "MINTER",
	})
	require.Equal(t, http.StatusOK, code)

	for _, account := range []domain.Address{minter, buyer} {
		code, _ = h.do(t, admin, http.MethodPost, "/api/v1/balances/topup", map[string]any{
			"account": account.String(),
			"amount":  1_000,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	// Mint to the minter itself, paying more than the 3% fee.
	code, resp := h.do(t, minter, http.MethodPost, "/api/v1/assets", map[string]any{
		"owner":     minter.String(),
		"title":     "Warehouse 7",
		"category":  "real-estate",
		"valuation": 10_000,
		"payment":   400,
	})
	require.Equal(t, http.StatusCreated, code, resp)
	minted := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(300), minted["fee"])
	assert.Equal(t, float64(100), minted["refund"])

	code, resp = h.do(t, minter, http.MethodGet, "/api/v1/balances/me", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(700), resp["data"].(map[string]interface{})["balance"])

	// Fractionalize into 100 shares at 10 each; 1% of 1000 notional.
	code, resp = h.do(t, minter, http.MethodPost, "/api/v1/vaults", map[string]any{
		"name":         "Warehouse Shares",
		"symbol":       "WH7",
		"asset_id":     1,
		"total_shares": 100,
		"unit_price":   10,
		"payment":      10,
	})
	require.Equal(t, http.StatusCreated, code, resp)
	vault := resp["data"].(map[string]interface{})["vault"].(map[string]interface{})
	vaultID := vault["id"].(string)
	assert.Equal(t, float64(100), vault["circulating_shares"])

	code, resp = h.do(t, minter, http.MethodGet, "/api/v1/assets/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, vault["address"], resp["data"].(map[string]interface{})["owner"])

	// A second vault for the same asset is refused.
	code, resp = h.do(t, minter, http.MethodPost, "/api/v1/vaults", map[string]any{
		"name":         "Again",
		"symbol":       "AGN",
		"asset_id":     1,
		"total_shares": 10,
		"unit_price":   1,
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "STATE_007", resp["error_code"])

	code, resp = h.do(t, buyer, http.MethodPost, "/api/v1/vaults/"+vaultID+"/buy", map[string]any{
		"amount":  10,
		"payment": 200,
	})
	require.Equal(t, http.StatusOK, code, resp)
	receipt := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(100), receipt["price"])

	code, resp = h.do(t, buyer, http.MethodGet, "/api/v1/vaults/"+vaultID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(10), resp["data"].(map[string]interface{})["caller_shares"])

	// Blocking the buyer stops further purchases with the policy reason.
	code, _ = h.do(t, admin, http.MethodPost, "/api/v1/roles/grant", map[string]any{
		"principal": admin.String(),
		"role":      "POLICY",
	})
	require.Equal(t, http.StatusOK, code)
	code, _ = h.do(t, admin, http.MethodPut, "/api/v1/policy/blacklist", map[string]any{
		"account": buyer.String(),
		"blocked": true,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp = h.do(t, buyer, http.MethodPost, "/api/v1/vaults/"+vaultID+"/buy", map[string]any{
		"amount":  1,
		"payment": 20,
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "RECIPIENT_BLOCKED", resp["reason"])
}
