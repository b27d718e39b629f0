package handler

import (
	"fractional-asset-registry/internal/adapter/http/dto"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
	"fractional-asset-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FundsHandler handles balance and event history endpoints.
type FundsHandler struct {
	funds   ports.FundsService
	history ports.HistoryService
}

// NewFundsHandler creates a new FundsHandler. history may be nil when no
// event store is configured.
func NewFundsHandler(funds ports.FundsService, history ports.HistoryService) *FundsHandler {
	return &FundsHandler{funds: funds, history: history}
}

// GetBalance handles GET /api/v1/balances/me.
func (h *FundsHandler) GetBalance(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	balance, err := h.funds.Balance(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Account: principal, Balance: balance})
}

// Topup handles POST /api/v1/balances/topup.
func (h *FundsHandler) Topup(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.TopupRequest
	if !bind(c, &req) {
		return
	}
	account := dto.Addr(req.Account)
	balance, err := h.funds.Topup(c.Request.Context(), principal, account, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BalanceResponse{Account: account, Balance: balance})
}

// ListEvents handles GET /api/v1/events.
func (h *FundsHandler) ListEvents(c *gin.Context) {
	if h.history == nil {
		response.Error(c, apperror.ErrNotFound("event history"))
		return
	}
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	filter := domain.EventFilter{
		AssetID:  q.AssetID,
		From:     q.From,
		To:       q.To,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Type != "" {
		t := domain.EventType(q.Type)
		filter.Type = &t
	}
	if q.VaultID != "" {
		id, err := uuid.Parse(q.VaultID)
		if err != nil {
			response.Error(c, apperror.Validation("vault_id must be a UUID"))
			return
		}
		filter.VaultID = &id
	}
	if q.Actor != "" {
		a := dto.Addr(q.Actor)
		filter.Actor = &a
	}

	events, total, err := h.history.ListEvents(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	response.Paginated(c, events, response.PageMeta{Page: page, PageSize: pageSize, Total: total})
}
