package handler

import (
	"context"

	"fractional-asset-registry/internal/adapter/http/dto"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
	"fractional-asset-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles transfer policy and role administration endpoints.
type PolicyHandler struct {
	policy ports.PolicyEngine
	roles  ports.RoleManager
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(policy ports.PolicyEngine, roles ports.RoleManager) *PolicyHandler {
	return &PolicyHandler{policy: policy, roles: roles}
}

// Evaluate handles GET /api/v1/policy/evaluate.
func (h *PolicyHandler) Evaluate(c *gin.Context) {
	var q dto.EvaluateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, h.policy.Evaluate(c.Request.Context(), dto.Addr(q.From), dto.Addr(q.To), q.AssetID))
}

// Snapshot handles GET /api/v1/policy.
func (h *PolicyHandler) Snapshot(c *gin.Context) {
	response.OK(c, h.policy.Snapshot())
}

// SetBlacklist handles PUT /api/v1/policy/blacklist.
func (h *PolicyHandler) SetBlacklist(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.BlacklistRequest
	if !bind(c, &req) {
		return
	}
	if err := h.policy.SetBlacklist(c.Request.Context(), principal, dto.Addr(req.Account), req.Blocked); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.policy.Snapshot())
}

// SetPairRestriction handles PUT /api/v1/policy/pairs.
func (h *PolicyHandler) SetPairRestriction(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.PairRestrictionRequest
	if !bind(c, &req) {
		return
	}
	err := h.policy.SetPairRestriction(c.Request.Context(), principal, dto.Addr(req.From), dto.Addr(req.To), req.Restricted)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.policy.Snapshot())
}

// SetAssetRestriction handles PUT /api/v1/policy/assets.
func (h *PolicyHandler) SetAssetRestriction(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.AssetRestrictionRequest
	if !bind(c, &req) {
		return
	}
	if err := h.policy.SetAssetRestriction(c.Request.Context(), principal, req.AssetID, req.Restricted); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.policy.Snapshot())
}

// Pause handles POST /api/v1/policy/pause.
func (h *PolicyHandler) Pause(c *gin.Context) {
	h.toggle(c, h.policy.Pause)
}

// Unpause handles POST /api/v1/policy/unpause.
func (h *PolicyHandler) Unpause(c *gin.Context) {
	h.toggle(c, h.policy.Unpause)
}

func (h *PolicyHandler) toggle(c *gin.Context, op func(context.Context, domain.Address) error) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), principal); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.policy.Snapshot())
}

// GrantRole handles POST /api/v1/roles/grant.
func (h *PolicyHandler) GrantRole(c *gin.Context) {
	h.changeRole(c, h.roles.GrantRole)
}

// RevokeRole handles POST /api/v1/roles/revoke.
func (h *PolicyHandler) RevokeRole(c *gin.Context) {
	h.changeRole(c, h.roles.RevokeRole)
}

// Roles handles GET /api/v1/roles/:principal.
func (h *PolicyHandler) Roles(c *gin.Context) {
	p, ok := domain.ParseAddress(c.Param("principal"))
	if !ok {
		response.Error(c, apperror.ErrInvalidAddress(c.Param("principal")))
		return
	}
	response.OK(c, gin.H{"principal": p, "roles": h.roles.RolesOf(p)})
}

func (h *PolicyHandler) changeRole(c *gin.Context, op func(context.Context, domain.Address, domain.Address, domain.Role) error) {
	principal, ok := caller(c)
	if !ok {
		return
	}
	var req dto.RoleRequest
	if !bind(c, &req) {
		return
	}
	role, _ := domain.ParseRole(req.Role)
	target := dto.Addr(req.Principal)
	if err := op(c.Request.Context(), principal, target, role); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"principal": target, "roles": h.roles.RolesOf(target)})
}
