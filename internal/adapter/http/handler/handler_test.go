package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fractional-asset-registry/internal/adapter/http/middleware"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/internal/core/ports/mocks"
	"fractional-asset-registry/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	aliceAddr    = domain.DeriveAddress("handler", "alice")
	bobAddr      = domain.DeriveAddress("handler", "bob")
	registryAddr = domain.DeriveAddress("handler", "registry")
)

// newContext builds a test context for method/target carrying body as JSON.
// An empty principal leaves the request unauthenticated.
func newContext(method, target string, body any, principal domain.Address) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewReader(raw)
	}
	c.Request = httptest.NewRequest(method, target, buf)
	c.Request.Header.Set("Content-Type", "application/json")
	if principal != "" {
		c.Set(middleware.CtxPrincipal, principal)
	}
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	resp := decode(t, w)
	assert.Equal(t, code, resp["error_code"])
}

// --- Asset Handler Tests ---

func TestMint_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().Mint(gomock.Any(), ports.MintRequest{
		Caller: aliceAddr,
		Owner:  bobAddr,
		Metadata: domain.AssetMetadata{
			Title:          "Warehouse 7",
			Category:       "real-estate",
			LifecycleStage: domain.LifecycleStageRegistered,
		},
		Valuation: 10_000,
		Payment:   400,
	}).Return(&ports.MintResult{
		Asset:  &domain.Asset{ID: 1, Owner: bobAddr, Valuation: 10_000},
		Fee:    300,
		Refund: 100,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/assets", map[string]any{
		"owner":     bobAddr.String(),
		"title":     "  Warehouse 7 ",
		"category":  "real-estate",
		"valuation": 10_000,
		"payment":   400,
	}, aliceAddr)

	h.Mint(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(300), data["fee"])
	assert.Equal(t, float64(100), data["refund"])
	asset := data["asset"].(map[string]interface{})
	assert.Equal(t, float64(1), asset["id"])
	assert.Equal(t, bobAddr.String(), asset["owner"])
}

func TestMint_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAssetHandler(mocks.NewMockAssetRegistry(ctrl))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing owner", map[string]any{"title": "x", "category": "art", "valuation": 1}},
		{"malformed owner", map[string]any{"owner": "0x1234", "title": "x", "category": "art", "valuation": 1}},
		{"zero owner", map[string]any{"owner": domain.ZeroAddress.String(), "title": "x", "category": "art", "valuation": 1}},
		{"zero valuation", map[string]any{"owner": bobAddr.String(), "title": "x", "category": "art", "valuation": 0}},
		{"unsafe category", map[string]any{"owner": bobAddr.String(), "title": "x", "category": "<b>", "valuation": 1}},
		{"unknown stage", map[string]any{"owner": bobAddr.String(), "title": "x", "category": "art", "valuation": 1, "lifecycle_stage": "GONE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodPost, "/api/v1/assets", tt.body, aliceAddr)
			h.Mint(c)
			assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
		})
	}
}

func TestMint_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAssetHandler(mocks.NewMockAssetRegistry(ctrl))

	c, w := newContext(http.MethodPost, "/api/v1/assets", map[string]any{}, "")
	h.Mint(c)

	assertErrorCode(t, w, http.StatusUnauthorized, "AUTH_003")
}

func TestMint_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().Mint(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrMintCooldown())

	c, w := newContext(http.MethodPost, "/api/v1/assets", map[string]any{
		"owner":     bobAddr.String(),
		"title":     "Deed",
		"category":  "art",
		"valuation": 500,
	}, aliceAddr)
	h.Mint(c)

	assertErrorCode(t, w, http.StatusConflict, "STATE_012")
}

func TestGetAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	t.Run("found", func(t *testing.T) {
		mockRegistry.EXPECT().Asset(gomock.Any(), uint64(7)).Return(&domain.Asset{ID: 7, Owner: aliceAddr}, nil)

		c, w := newContext(http.MethodGet, "/api/v1/assets/7", nil, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		h.Get(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(7), data["id"])
	})

	t.Run("not found", func(t *testing.T) {
		mockRegistry.EXPECT().Asset(gomock.Any(), uint64(8)).Return(nil, apperror.ErrAssetNotFound(8))

		c, w := newContext(http.MethodGet, "/api/v1/assets/8", nil, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: "8"}}
		h.Get(c)

		assertErrorCode(t, w, http.StatusNotFound, "NF_001")
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-1"} {
			c, w := newContext(http.MethodGet, "/api/v1/assets/"+raw, nil, aliceAddr)
			c.Params = gin.Params{{Key: "id", Value: raw}}
			h.Get(c)

			assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
		}
	})
}

func TestQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().QuoteTransfer(gomock.Any(), uint64(3)).Return(&domain.TransferQuote{
		AssetID:     3,
		Valuation:   10_000,
		FeeBps:      200,
		PlatformFee: 200,
		Total:       200,
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/assets/3/quote", nil, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(200), data["platform_fee"])
	assert.Equal(t, float64(200), data["total"])
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().TransferWithFee(gomock.Any(), ports.TransferRequest{
		Caller:  aliceAddr,
		AssetID: 5,
		To:      bobAddr,
		Payment: 250,
	}).Return(&ports.TransferResult{
		Quote:  domain.TransferQuote{AssetID: 5, Total: 200},
		Refund: 50,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/assets/5/transfer", map[string]any{
		"to":      bobAddr.String(),
		"payment": 250,
	}, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	h.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(50), data["refund"])
}

func TestTransfer_PolicyDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().TransferWithFee(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrPolicyDenied(string(domain.DenyReasonRecipientBlocked)))

	c, w := newContext(http.MethodPost, "/api/v1/assets/5/transfer", map[string]any{
		"to": bobAddr.String(),
	}, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	h.Transfer(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "POL_001", resp["error_code"])
	assert.Equal(t, "RECIPIENT_BLOCKED", resp["reason"])
}

func TestApprove_EmptyOperatorClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().Approve(gomock.Any(), aliceAddr, domain.ZeroAddress, uint64(2)).Return(nil)

	c, w := newContext(http.MethodPost, "/api/v1/assets/2/approve", map[string]any{}, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: "2"}}
	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, domain.ZeroAddress.String(), data["operator"])
}

func TestFreeze_RespondsWithAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	gomock.InOrder(
		mockRegistry.EXPECT().Freeze(gomock.Any(), aliceAddr, uint64(4)).Return(nil),
		mockRegistry.EXPECT().Asset(gomock.Any(), uint64(4)).Return(&domain.Asset{ID: 4, Frozen: true}, nil),
	)

	c, w := newContext(http.MethodPost, "/api/v1/assets/4/freeze", nil, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	h.Freeze(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["frozen"])
}

func TestRecover_MissingRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().Recover(gomock.Any(), aliceAddr, uint64(4)).Return(apperror.ErrMissingRole(string(domain.RoleRecovery)))

	c, w := newContext(http.MethodPost, "/api/v1/assets/4/recover", nil, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	h.Recover(c)

	assertErrorCode(t, w, http.StatusForbidden, "AUTH_001")
}

func TestSetFeeOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	t.Run("set", func(t *testing.T) {
		bps := uint64(150)
		mockRegistry.EXPECT().SetTransferFeeOverride(gomock.Any(), aliceAddr, uint64(9), &bps).Return(nil)
		mockRegistry.EXPECT().Asset(gomock.Any(), uint64(9)).Return(&domain.Asset{ID: 9, TransferFeeOverride: &bps}, nil)

		c, w := newContext(http.MethodPut, "/api/v1/assets/9/fee-override", map[string]any{"bps": 150}, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		h.SetFeeOverride(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("clear with null", func(t *testing.T) {
		mockRegistry.EXPECT().SetTransferFeeOverride(gomock.Any(), aliceAddr, uint64(9), gomock.Nil()).Return(nil)
		mockRegistry.EXPECT().Asset(gomock.Any(), uint64(9)).Return(&domain.Asset{ID: 9}, nil)

		c, w := newContext(http.MethodPut, "/api/v1/assets/9/fee-override", `{"bps":null}`, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		h.SetFeeOverride(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("above 100%", func(t *testing.T) {
		c, w := newContext(http.MethodPut, "/api/v1/assets/9/fee-override", map[string]any{"bps": 10_001}, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		h.SetFeeOverride(c)

		assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
	})
}

func TestUpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockAssetRegistry(ctrl)
	h := NewAssetHandler(mockRegistry)

	t.Run("applies fields in order", func(t *testing.T) {
		gomock.InOrder(
			mockRegistry.EXPECT().SetMintFeePercentage(gomock.Any(), aliceAddr, uint64(100)).Return(nil),
			mockRegistry.EXPECT().SetMintCooldown(gomock.Any(), aliceAddr, time.Minute).Return(nil),
			mockRegistry.EXPECT().Settings().Return(ports.RegistrySettings{MintFeeBps: 100, MintCooldown: time.Minute}),
		)

		c, w := newContext(http.MethodPut, "/api/v1/registry/settings", map[string]any{
			"mint_fee_bps":          100,
			"mint_cooldown_seconds": 60,
		}, aliceAddr)
		h.UpdateSettings(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(100), data["mint_fee_bps"])
	})

	t.Run("stops at first failure", func(t *testing.T) {
		mockRegistry.EXPECT().SetTransferFeePercentage(gomock.Any(), bobAddr, uint64(200)).
			Return(apperror.ErrMissingRole(string(domain.RoleAdmin)))

		c, w := newContext(http.MethodPut, "/api/v1/registry/settings", map[string]any{
			"transfer_fee_bps": 200,
			"fee_collector":    aliceAddr.String(),
		}, bobAddr)
		h.UpdateSettings(c)

		assertErrorCode(t, w, http.StatusForbidden, "AUTH_001")
	})

	t.Run("rejects a capped fee before applying anything", func(t *testing.T) {
		c, w := newContext(http.MethodPut, "/api/v1/registry/settings", map[string]any{
			"mint_fee_bps":     100,
			"transfer_fee_bps": 2000,
		}, aliceAddr)
		h.UpdateSettings(c)

		assertErrorCode(t, w, http.StatusUnprocessableEntity, "INV_003")
	})

	t.Run("rejects durations time.Duration cannot hold", func(t *testing.T) {
		for _, field := range []string{"mint_cooldown_seconds", "min_valuation_update_interval_seconds"} {
			c, w := newContext(http.MethodPut, "/api/v1/registry/settings", map[string]any{
				"mint_fee_bps": 100,
				field:          int64(9223372037),
			}, aliceAddr)
			h.UpdateSettings(c)

			assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
		}
	})
}

// --- Vault Handler Tests ---

func TestCreateVault_DefaultContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	vaultID := uuid.New()
	mockFactory.EXPECT().Create(gomock.Any(), ports.CreateVaultRequest{
		Caller:        aliceAddr,
		Name:          "Warehouse Shares",
		Symbol:        "WH7",
		AssetContract: registryAddr,
		AssetID:       1,
		TotalShares:   1000,
		UnitPrice:     10,
		Payment:       100,
	}).Return(&ports.CreateVaultResult{
		Vault: &domain.VaultInfo{ID: vaultID, TotalShares: 1000},
		Fee:   100,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/vaults", map[string]any{
		"name":         "Warehouse Shares",
		"symbol":       "WH7",
		"asset_id":     1,
		"total_shares": 1000,
		"unit_price":   10,
		"payment":      100,
	}, aliceAddr)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	vault := data["vault"].(map[string]interface{})
	assert.Equal(t, vaultID.String(), vault["id"])
}

func TestCreateVault_AlreadyFractionalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	mockFactory.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrAlreadyFractionalized())

	c, w := newContext(http.MethodPost, "/api/v1/vaults", map[string]any{
		"name":           "Again",
		"symbol":         "AGN",
		"asset_contract": bobAddr.String(),
		"asset_id":       1,
		"total_shares":   10,
		"unit_price":     1,
	}, aliceAddr)
	h.Create(c)

	assertErrorCode(t, w, http.StatusConflict, "STATE_007")
}

func TestGetVault_IncludesCallerShares(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	mockVault := mocks.NewMockFractionalVault(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	vaultID := uuid.New()
	mockFactory.EXPECT().Vault(gomock.Any(), vaultID).Return(mockVault, nil)
	mockVault.EXPECT().Info(gomock.Any()).Return(&domain.VaultInfo{ID: vaultID, TotalShares: 1000, CirculatingShares: 40}, nil)
	mockVault.EXPECT().BalanceOf(gomock.Any(), aliceAddr).Return(uint64(25), nil)

	c, w := newContext(http.MethodGet, "/api/v1/vaults/"+vaultID.String(), nil, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, vaultID.String(), data["id"])
	assert.Equal(t, float64(40), data["circulating_shares"])
	assert.Equal(t, float64(25), data["caller_shares"])
}

func TestGetVault_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	t.Run("invalid id", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/api/v1/vaults/nope", nil, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: "nope"}}
		h.Get(c)

		assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
	})

	t.Run("unknown vault", func(t *testing.T) {
		id := uuid.New()
		mockFactory.EXPECT().Vault(gomock.Any(), id).Return(nil, apperror.ErrVaultNotFound())

		c, w := newContext(http.MethodGet, "/api/v1/vaults/"+id.String(), nil, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		h.Get(c)

		assertErrorCode(t, w, http.StatusNotFound, "NF_002")
	})
}

func TestBuy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	mockVault := mocks.NewMockFractionalVault(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	vaultID := uuid.New()
	mockFactory.EXPECT().Vault(gomock.Any(), vaultID).Return(mockVault, nil).Times(3)

	t.Run("success", func(t *testing.T) {
		mockVault.EXPECT().Buy(gomock.Any(), bobAddr, uint64(10), uint64(120)).Return(&domain.TradeReceipt{
			VaultID: vaultID,
			Trader:  bobAddr,
			Amount:  10,
			Price:   100,
			Fee:     1,
			Refund:  19,
		}, nil)

		c, w := newContext(http.MethodPost, "/api/v1/vaults/"+vaultID.String()+"/buy", map[string]any{
			"amount":  10,
			"payment": 120,
		}, bobAddr)
		c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
		h.Buy(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(19), data["refund"])
	})

	t.Run("original owner", func(t *testing.T) {
		mockVault.EXPECT().Buy(gomock.Any(), aliceAddr, uint64(1), uint64(10)).Return(nil, apperror.ErrOriginalOwnerCannotBuy())

		c, w := newContext(http.MethodPost, "/api/v1/vaults/"+vaultID.String()+"/buy", map[string]any{
			"amount":  1,
			"payment": 10,
		}, aliceAddr)
		c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
		h.Buy(c)

		assertErrorCode(t, w, http.StatusForbidden, "AUTH_005")
	})

	t.Run("zero amount never reaches the vault", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/vaults/"+vaultID.String()+"/buy", map[string]any{
			"amount": 0,
		}, bobAddr)
		c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
		h.Buy(c)

		assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
	})
}

func TestDepositLiquidity_RespondsWithVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	mockVault := mocks.NewMockFractionalVault(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	vaultID := uuid.New()
	mockFactory.EXPECT().Vault(gomock.Any(), vaultID).Return(mockVault, nil)
	gomock.InOrder(
		mockVault.EXPECT().DepositLiquidity(gomock.Any(), aliceAddr, uint64(500)).Return(nil),
		mockVault.EXPECT().Info(gomock.Any()).Return(&domain.VaultInfo{ID: vaultID, Liquidity: 500}, nil),
	)

	c, w := newContext(http.MethodPost, "/api/v1/vaults/"+vaultID.String()+"/liquidity/deposit", map[string]any{
		"amount": 500,
	}, aliceAddr)
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
	h.DepositLiquidity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["liquidity"])
}

func TestRedeem_PartialHolding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	mockVault := mocks.NewMockFractionalVault(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	vaultID := uuid.New()
	mockFactory.EXPECT().Vault(gomock.Any(), vaultID).Return(mockVault, nil)
	mockVault.EXPECT().Redeem(gomock.Any(), bobAddr).Return(apperror.ErrPartialShareholding())

	c, w := newContext(http.MethodPost, "/api/v1/vaults/"+vaultID.String()+"/redeem", nil, bobAddr)
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
	h.Redeem(c)

	assertErrorCode(t, w, http.StatusConflict, "STATE_013")
}

func TestPauseFactory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockVaultFactory(ctrl)
	h := NewVaultHandler(mockFactory, registryAddr)

	gomock.InOrder(
		mockFactory.EXPECT().Pause(gomock.Any(), aliceAddr).Return(nil),
		mockFactory.EXPECT().Settings().Return(ports.FactorySettings{Paused: true}),
	)

	c, w := newContext(http.MethodPost, "/api/v1/factory/pause", nil, aliceAddr)
	h.PauseFactory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["paused"])
}

// --- Policy Handler Tests ---

func TestEvaluate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPolicy := mocks.NewMockPolicyEngine(ctrl)
	h := NewPolicyHandler(mockPolicy, mocks.NewMockRoleManager(ctrl))

	t.Run("denied", func(t *testing.T) {
		mockPolicy.EXPECT().Evaluate(gomock.Any(), aliceAddr, bobAddr, uint64(3)).
			Return(domain.Deny(domain.DenyReasonPairRestricted))

		target := "/api/v1/policy/evaluate?from=" + aliceAddr.String() + "&to=" + bobAddr.String() + "&asset_id=3"
		c, w := newContext(http.MethodGet, target, nil, aliceAddr)
		h.Evaluate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, false, data["allowed"])
		assert.Equal(t, "PAIR_RESTRICTED", data["reason"])
	})

	t.Run("bad address", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/api/v1/policy/evaluate?from=0xzz&to="+bobAddr.String(), nil, aliceAddr)
		h.Evaluate(c)

		assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
	})
}

func TestSetBlacklist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPolicy := mocks.NewMockPolicyEngine(ctrl)
	h := NewPolicyHandler(mockPolicy, mocks.NewMockRoleManager(ctrl))

	gomock.InOrder(
		mockPolicy.EXPECT().SetBlacklist(gomock.Any(), aliceAddr, bobAddr, true).Return(nil),
		mockPolicy.EXPECT().Snapshot().Return(domain.PolicySnapshot{Blacklist: []domain.Address{bobAddr}}),
	)

	c, w := newContext(http.MethodPut, "/api/v1/policy/blacklist", map[string]any{
		"account": bobAddr.String(),
		"blocked": true,
	}, aliceAddr)
	h.SetBlacklist(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{bobAddr.String()}, data["blacklist"])
}

func TestGrantRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoles := mocks.NewMockRoleManager(ctrl)
	h := NewPolicyHandler(mocks.NewMockPolicyEngine(ctrl), mockRoles)

	t.Run("success", func(t *testing.T) {
		gomock.InOrder(
			mockRoles.EXPECT().GrantRole(gomock.Any(), aliceAddr, bobAddr, domain.RoleMinter).Return(nil),
			mockRoles.EXPECT().RolesOf(bobAddr).Return([]domain.Role{domain.RoleMinter}),
		)

		c, w := newContext(http.MethodPost, "/api/v1/roles/grant", map[string]any{
			"principal": bobAddr.String(),
			"role":      "MINTER",
		}, aliceAddr)
		h.GrantRole(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, []interface{}{"MINTER"}, data["roles"])
	})

	t.Run("unknown role", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/roles/grant", map[string]any{
			"principal": bobAddr.String(),
			"role":      "OWNER",
		}, aliceAddr)
		h.GrantRole(c)

		assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
	})

	t.Run("not admin", func(t *testing.T) {
		mockRoles.EXPECT().GrantRole(gomock.Any(), bobAddr, bobAddr, domain.RoleAdmin).
			Return(apperror.ErrMissingRole(string(domain.RoleAdmin)))

		c, w := newContext(http.MethodPost, "/api/v1/roles/grant", map[string]any{
			"principal": bobAddr.String(),
			"role":      "ADMIN",
		}, bobAddr)
		h.GrantRole(c)

		assertErrorCode(t, w, http.StatusForbidden, "AUTH_001")
	})
}

func TestRoles_InvalidPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPolicyHandler(mocks.NewMockPolicyEngine(ctrl), mocks.NewMockRoleManager(ctrl))

	c, w := newContext(http.MethodGet, "/api/v1/roles/nope", nil, aliceAddr)
	c.Params = gin.Params{{Key: "principal", Value: "nope"}}
	h.Roles(c)

	assertErrorCode(t, w, http.StatusUnprocessableEntity, "INV_008")
}

// --- Funds Handler Tests ---

func TestTopup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFunds := mocks.NewMockFundsService(ctrl)
	h := NewFundsHandler(mockFunds, nil)

	t.Run("success", func(t *testing.T) {
		mockFunds.EXPECT().Topup(gomock.Any(), aliceAddr, bobAddr, uint64(1000)).Return(uint64(1500), nil)

		c, w := newContext(http.MethodPost, "/api/v1/balances/topup", map[string]any{
			"account": bobAddr.String(),
			"amount":  1000,
		}, aliceAddr)
		h.Topup(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, bobAddr.String(), data["account"])
		assert.Equal(t, float64(1500), data["balance"])
	})

	t.Run("ledger failure", func(t *testing.T) {
		mockFunds.EXPECT().Topup(gomock.Any(), aliceAddr, bobAddr, uint64(1)).
			Return(uint64(0), apperror.ErrDatabaseError(errors.New("connection reset")))

		c, w := newContext(http.MethodPost, "/api/v1/balances/topup", map[string]any{
			"account": bobAddr.String(),
			"amount":  1,
		}, aliceAddr)
		h.Topup(c)

		assertErrorCode(t, w, http.StatusInternalServerError, "SYS_001")
	})
}

func TestGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFunds := mocks.NewMockFundsService(ctrl)
	h := NewFundsHandler(mockFunds, nil)

	mockFunds.EXPECT().Balance(gomock.Any(), aliceAddr).Return(uint64(42), nil)

	c, w := newContext(http.MethodGet, "/api/v1/balances/me", nil, aliceAddr)
	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["balance"])
}

func TestListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryService(ctrl)
	h := NewFundsHandler(mocks.NewMockFundsService(ctrl), mockHistory)

	t.Run("filters", func(t *testing.T) {
		vaultID := uuid.New()
		mockHistory.EXPECT().ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, f domain.EventFilter) ([]domain.Event, int64, error) {
				require.NotNil(t, f.Type)
				assert.Equal(t, domain.EventAssetMinted, *f.Type)
				require.NotNil(t, f.AssetID)
				assert.Equal(t, uint64(4), *f.AssetID)
				require.NotNil(t, f.VaultID)
				assert.Equal(t, vaultID, *f.VaultID)
				require.NotNil(t, f.Actor)
				assert.Equal(t, aliceAddr, *f.Actor)
				assert.Equal(t, 2, f.Page)
				assert.Equal(t, 10, f.PageSize)
				return []domain.Event{domain.NewEvent(domain.EventAssetMinted, "registry", aliceAddr, nil).ForAsset(4)}, 11, nil
			})

		target := "/api/v1/events?type=ASSET_MINTED&asset_id=4&vault_id=" + vaultID.String() +
			"&actor=" + aliceAddr.String() + "&page=2&page_size=10"
		c, w := newContext(http.MethodGet, target, nil, aliceAddr)
		h.ListEvents(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		items := data["items"].([]interface{})
		assert.Len(t, items, 1)
		pagination := data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(2), pagination["page"])
		assert.Equal(t, float64(11), pagination["total"])
	})

	t.Run("defaults", func(t *testing.T) {
		mockHistory.EXPECT().ListEvents(gomock.Any(), domain.EventFilter{}).Return(nil, int64(0), nil)

		c, w := newContext(http.MethodGet, "/api/v1/events", nil, aliceAddr)
		h.ListEvents(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		pagination := data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(20), pagination["page_size"])
	})

	t.Run("page size too large", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/api/v1/events?page_size=500", nil, aliceAddr)
		h.ListEvents(c)

		assertErrorCode(t, w, http.StatusBadRequest, "VAL_001")
	})
}

func TestListEvents_HistoryDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFundsHandler(mocks.NewMockFundsService(ctrl), nil)

	c, w := newContext(http.MethodGet, "/api/v1/events", nil, aliceAddr)
	h.ListEvents(c)

	assertErrorCode(t, w, http.StatusNotFound, "NF_004")
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	rdb := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Name().Return("postgres").AnyTimes()
	rdb.EXPECT().Name().Return("redis").AnyTimes()

	t.Run("healthy", func(t *testing.T) {
		pg.EXPECT().Ping(gomock.Any()).Return(nil)
		rdb.EXPECT().Ping(gomock.Any()).Return(nil)

		c, w := newContext(http.MethodGet, "/health", nil, "")
		HealthCheck(pg, rdb)(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", decode(t, w)["status"])
	})

	t.Run("degraded", func(t *testing.T) {
		pg.EXPECT().Ping(gomock.Any()).Return(nil)
		rdb.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		c, w := newContext(http.MethodGet, "/health", nil, "")
		HealthCheck(pg, rdb)(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "degraded", resp["status"])
		deps := resp["dependencies"].(map[string]interface{})
		assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
	})
}
