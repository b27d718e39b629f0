package handler

import (
	"context"
	"time"

	"fractional-asset-registry/internal/adapter/http/dto"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
	"fractional-asset-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles asset registry endpoints.
type AssetHandler struct {
	registry ports.AssetRegistry
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(registry ports.AssetRegistry) *AssetHandler {
	return &AssetHandler{registry: registry}
}

// Mint handles POST /api/v1/assets.
func (h *AssetHandler) Mint(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.MintRequest
	if !bind(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	stage := domain.LifecycleStage(req.LifecycleStage)
	if stage == "" {
		stage = domain.LifecycleStageRegistered
	}
	result, err := h.registry.Mint(c.Request.Context(), ports.MintRequest{
		Caller: principal,
		Owner:  dto.Addr(req.Owner),
		Metadata: domain.AssetMetadata{
			Title:          req.Title,
			Category:       req.Category,
			URI:            req.URI,
			Fingerprint:    req.Fingerprint,
			LifecycleStage: stage,
		},
		Valuation: req.Valuation,
		Payment:   req.Payment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get handles GET /api/v1/assets/:id.
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	asset, err := h.registry.Asset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, asset)
}

// Quote handles GET /api/v1/assets/:id/quote.
func (h *AssetHandler) Quote(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	quote, err := h.registry.QuoteTransfer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, quote)
}

// Royalties handles GET /api/v1/assets/:id/royalties.
func (h *AssetHandler) Royalties(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	recipients, err := h.registry.RoyaltyRecipients(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, recipients)
}

// Verify handles POST /api/v1/assets/:id/verify.
func (h *AssetHandler) Verify(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.VerifyRequest
	if !bind(c, &req) {
		return
	}
	if err := h.registry.Verify(c.Request.Context(), principal, id, req.Level); err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// UpdateValuation handles PUT /api/v1/assets/:id/valuation.
func (h *AssetHandler) UpdateValuation(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.ValuationRequest
	if !bind(c, &req) {
		return
	}
	if err := h.registry.UpdateValuation(c.Request.Context(), principal, id, req.Valuation); err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// Freeze handles POST /api/v1/assets/:id/freeze.
func (h *AssetHandler) Freeze(c *gin.Context) {
	h.lifecycle(c, h.registry.Freeze)
}

// Unfreeze handles POST /api/v1/assets/:id/unfreeze.
func (h *AssetHandler) Unfreeze(c *gin.Context) {
	h.lifecycle(c, h.registry.Unfreeze)
}

// Recover handles POST /api/v1/assets/:id/recover.
func (h *AssetHandler) Recover(c *gin.Context) {
	h.lifecycle(c, h.registry.Recover)
}

// Transfer handles POST /api/v1/assets/:id/transfer.
func (h *AssetHandler) Transfer(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bind(c, &req) {
		return
	}
	result, err := h.registry.TransferWithFee(c.Request.Context(), ports.TransferRequest{
		Caller:  principal,
		AssetID: id,
		To:      dto.Addr(req.To),
		Payment: req.Payment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Approve handles POST /api/v1/assets/:id/approve.
func (h *AssetHandler) Approve(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if !bind(c, &req) {
		return
	}
	operator := domain.ZeroAddress
	if req.Operator != "" {
		operator = dto.Addr(req.Operator)
	}
	if err := h.registry.Approve(c.Request.Context(), principal, operator, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"asset_id": id, "operator": operator})
}

// AddRoyaltyRecipient handles POST /api/v1/assets/:id/royalties.
func (h *AssetHandler) AddRoyaltyRecipient(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.RoyaltyRecipientRequest
	if !bind(c, &req) {
		return
	}
	err := h.registry.AddRoyaltyRecipient(c.Request.Context(), principal, id, dto.Addr(req.Recipient), req.ShareBps)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// RemoveRoyaltyRecipient handles DELETE /api/v1/assets/:id/royalties.
func (h *AssetHandler) RemoveRoyaltyRecipient(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.RoyaltyRecipientRequest
	if !bind(c, &req) {
		return
	}
	if err := h.registry.RemoveRoyaltyRecipient(c.Request.Context(), principal, id, dto.Addr(req.Recipient)); err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// SetRoyaltyRate handles PUT /api/v1/assets/:id/royalty-rate.
func (h *AssetHandler) SetRoyaltyRate(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.BpsRequest
	if !bind(c, &req) {
		return
	}
	if err := h.registry.SetRoyaltyRate(c.Request.Context(), principal, id, req.Bps); err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// SetFeeOverride handles PUT /api/v1/assets/:id/fee-override.
func (h *AssetHandler) SetFeeOverride(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.FeeOverrideRequest
	if !bind(c, &req) {
		return
	}
	if err := h.registry.SetTransferFeeOverride(c.Request.Context(), principal, id, req.Bps); err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// Settings handles GET /api/v1/registry/settings.
func (h *AssetHandler) Settings(c *gin.Context) {
	response.OK(c, h.registry.Settings())
}

// UpdateSettings handles PUT /api/v1/registry/settings. Every field is
// checked before any is applied; the setters then run one at a time, so
// only a failure inside the registry itself (a missing admin role fails
// the first one) can stop the update part way.
func (h *AssetHandler) UpdateSettings(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.RegistrySettingsRequest
	if !bind(c, &req) {
		return
	}
	if err := checkSettings(&req); err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	var steps []func() error
	if req.MintFeeBps != nil {
		steps = append(steps, func() error { return h.registry.SetMintFeePercentage(ctx, principal, *req.MintFeeBps) })
	}
	if req.TransferFeeBps != nil {
		steps = append(steps, func() error { return h.registry.SetTransferFeePercentage(ctx, principal, *req.TransferFeeBps) })
	}
	if req.FeeCollector != nil {
		steps = append(steps, func() error { return h.registry.SetFeeCollector(ctx, principal, dto.Addr(*req.FeeCollector)) })
	}
	if req.MintCooldownSeconds != nil {
		d := time.Duration(*req.MintCooldownSeconds) * time.Second
		steps = append(steps, func() error { return h.registry.SetMintCooldown(ctx, principal, d) })
	}
	if req.MinValuationUpdateIntervalSeconds != nil {
		d := time.Duration(*req.MinValuationUpdateIntervalSeconds) * time.Second
		steps = append(steps, func() error { return h.registry.SetMinValuationUpdateInterval(ctx, principal, d) })
	}
	for _, step := range steps {
		if err := step(); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.OK(c, h.registry.Settings())
}

// checkSettings applies the registry's own bounds up front.
func checkSettings(req *dto.RegistrySettingsRequest) error {
	for _, bps := range []*uint64{req.MintFeeBps, req.TransferFeeBps} {
		if bps != nil && *bps > domain.MaxFeeBps {
			return apperror.ErrFeeAboveCap(domain.MaxFeeBps)
		}
	}
	if req.FeeCollector != nil && dto.Addr(*req.FeeCollector).IsZero() {
		return apperror.ErrInvalidAddress(*req.FeeCollector)
	}
	return nil
}

// lifecycle runs a privileged per-asset operation that takes no body.
func (h *AssetHandler) lifecycle(c *gin.Context, op func(context.Context, domain.Address, uint64) error) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), principal, id); err != nil {
		response.Error(c, err)
		return
	}
	h.respondAsset(c, id)
}

// respondAsset writes the current state of an asset after a mutation.
func (h *AssetHandler) respondAsset(c *gin.Context, id uint64) {
	asset, err := h.registry.Asset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, asset)
}
