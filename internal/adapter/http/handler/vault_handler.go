package handler

import (
	"context"

	"fractional-asset-registry/internal/adapter/http/dto"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// VaultHandler handles fractionalization endpoints.
type VaultHandler struct {
	factory         ports.VaultFactory
	defaultContract domain.Address
}

// NewVaultHandler creates a new VaultHandler. defaultContract is used when
// a create request names no asset contract.
func NewVaultHandler(factory ports.VaultFactory, defaultContract domain.Address) *VaultHandler {
	return &VaultHandler{factory: factory, defaultContract: defaultContract}
}

// Create handles POST /api/v1/vaults.
func (h *VaultHandler) Create(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateVaultRequest
	if !bind(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	contract := h.defaultContract
	if req.AssetContract != "" {
		contract = dto.Addr(req.AssetContract)
	}
	result, err := h.factory.Create(c.Request.Context(), ports.CreateVaultRequest{
		Caller:        principal,
		Name:          req.Name,
		Symbol:        req.Symbol,
		AssetContract: contract,
		AssetID:       req.AssetID,
		TotalShares:   req.TotalShares,
		UnitPrice:     req.UnitPrice,
		Payment:       req.Payment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get handles GET /api/v1/vaults/:id.
func (h *VaultHandler) Get(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vault, ok := h.vault(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	info, err := vault.Info(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	shares, err := vault.BalanceOf(ctx, principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.VaultResponse{VaultInfo: info, CallerShares: shares})
}

// ListMine handles GET /api/v1/vaults, listing vaults the caller created.
func (h *VaultHandler) ListMine(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vaults, err := h.factory.VaultsByOwner(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, vaults)
}

// Buy handles POST /api/v1/vaults/:id/buy.
func (h *VaultHandler) Buy(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vault, ok := h.vault(c)
	if !ok {
		return
	}
	var req dto.BuyRequest
	if !bind(c, &req) {
		return
	}
	receipt, err := vault.Buy(c.Request.Context(), principal, req.Amount, req.Payment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}

// Sell handles POST /api/v1/vaults/:id/sell.
func (h *VaultHandler) Sell(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vault, ok := h.vault(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if !bind(c, &req) {
		return
	}
	receipt, err := vault.Sell(c.Request.Context(), principal, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}

// DepositLiquidity handles POST /api/v1/vaults/:id/liquidity/deposit.
func (h *VaultHandler) DepositLiquidity(c *gin.Context) {
	h.amountOp(c, func(v ports.FractionalVault) func(context.Context, domain.Address, uint64) error {
		return v.DepositLiquidity
	})
}

// WithdrawLiquidity handles POST /api/v1/vaults/:id/liquidity/withdraw.
func (h *VaultHandler) WithdrawLiquidity(c *gin.Context) {
	h.amountOp(c, func(v ports.FractionalVault) func(context.Context, domain.Address, uint64) error {
		return v.WithdrawLiquidity
	})
}

// EnableRedemption handles POST /api/v1/vaults/:id/redemption.
func (h *VaultHandler) EnableRedemption(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vault, ok := h.vault(c)
	if !ok {
		return
	}
	var req dto.RedemptionRequest
	if !bind(c, &req) {
		return
	}
	if err := vault.EnableRedemption(c.Request.Context(), principal, req.Price); err != nil {
		response.Error(c, err)
		return
	}
	h.respondVault(c, vault)
}

// Redeem handles POST /api/v1/vaults/:id/redeem.
func (h *VaultHandler) Redeem(c *gin.Context) {
	h.plainOp(c, func(v ports.FractionalVault) func(context.Context, domain.Address) error { return v.Redeem })
}

// Pause handles POST /api/v1/vaults/:id/pause.
func (h *VaultHandler) Pause(c *gin.Context) {
	h.plainOp(c, func(v ports.FractionalVault) func(context.Context, domain.Address) error { return v.Pause })
}

// Unpause handles POST /api/v1/vaults/:id/unpause.
func (h *VaultHandler) Unpause(c *gin.Context) {
	h.plainOp(c, func(v ports.FractionalVault) func(context.Context, domain.Address) error { return v.Unpause })
}

// FactorySettings handles GET /api/v1/factory/settings.
func (h *VaultHandler) FactorySettings(c *gin.Context) {
	response.OK(c, h.factory.Settings())
}

// UpdateFactorySettings handles PUT /api/v1/factory/settings.
func (h *VaultHandler) UpdateFactorySettings(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.FactorySettingsRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if req.CreationFeeBps != nil {
		if err := h.factory.SetCreationFeePercentage(ctx, principal, *req.CreationFeeBps); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.FeeCollector != nil {
		if err := h.factory.SetFeeCollector(ctx, principal, dto.Addr(*req.FeeCollector)); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.OK(c, h.factory.Settings())
}

// PauseFactory handles POST /api/v1/factory/pause.
func (h *VaultHandler) PauseFactory(c *gin.Context) {
	h.factoryToggle(c, h.factory.Pause)
}

// UnpauseFactory handles POST /api/v1/factory/unpause.
func (h *VaultHandler) UnpauseFactory(c *gin.Context) {
	h.factoryToggle(c, h.factory.Unpause)
}

func (h *VaultHandler) factoryToggle(c *gin.Context, op func(context.Context, domain.Address) error) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), principal); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.factory.Settings())
}

func (h *VaultHandler) amountOp(c *gin.Context, pick func(ports.FractionalVault) func(context.Context, domain.Address, uint64) error) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vault, ok := h.vault(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if !bind(c, &req) {
		return
	}
	if err := pick(vault)(c.Request.Context(), principal, req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	h.respondVault(c, vault)
}

func (h *VaultHandler) plainOp(c *gin.Context, pick func(ports.FractionalVault) func(context.Context, domain.Address) error) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	vault, ok := h.vault(c)
	if !ok {
		return
	}
	if err := pick(vault)(c.Request.Context(), principal); err != nil {
		response.Error(c, err)
		return
	}
	h.respondVault(c, vault)
}

// vault resolves the :id path segment.
func (h *VaultHandler) vault(c *gin.Context) (ports.FractionalVault, bool) {
	id, ok := vaultIDParam(c)
	if !ok {
		return nil, false
	}
	vault, err := h.factory.Vault(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return vault, true
}

func (h *VaultHandler) respondVault(c *gin.Context, vault ports.FractionalVault) {
	info, err := vault.Info(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

