package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auditRoutes maps "METHOD route-template" to the audit action and the
// resource type it touches. Routes not listed are not audited.
var auditRoutes = map[string]struct {
	action   domain.AuditAction
	resource string
}{
	"POST /api/v1/assets":                        {domain.AuditActionMint, "asset"},
	"POST /api/v1/assets/:id/verify":             {domain.AuditActionVerify, "asset"},
	"PUT /api/v1/assets/:id/valuation":           {domain.AuditActionValuation, "asset"},
	"POST /api/v1/assets/:id/freeze":             {domain.AuditActionFreeze, "asset"},
	"POST /api/v1/assets/:id/unfreeze":           {domain.AuditActionFreeze, "asset"},
	"POST /api/v1/assets/:id/recover":            {domain.AuditActionRecover, "asset"},
	"POST /api/v1/assets/:id/transfer":           {domain.AuditActionTransfer, "asset"},
	"POST /api/v1/assets/:id/approve":            {domain.AuditActionTransfer, "asset"},
	"POST /api/v1/assets/:id/royalties":          {domain.AuditActionRoyalty, "asset"},
	"DELETE /api/v1/assets/:id/royalties":        {domain.AuditActionRoyalty, "asset"},
	"PUT /api/v1/assets/:id/royalty-rate":        {domain.AuditActionRoyalty, "asset"},
	"PUT /api/v1/assets/:id/fee-override":        {domain.AuditActionSettings, "asset"},
	"PUT /api/v1/registry/settings":              {domain.AuditActionSettings, "registry"},
	"PUT /api/v1/policy/blacklist":               {domain.AuditActionPolicyChange, "policy"},
	"PUT /api/v1/policy/pairs":                   {domain.AuditActionPolicyChange, "policy"},
	"PUT /api/v1/policy/assets":                  {domain.AuditActionPolicyChange, "policy"},
	"POST /api/v1/policy/pause":                  {domain.AuditActionPolicyChange, "policy"},
	"POST /api/v1/policy/unpause":                {domain.AuditActionPolicyChange, "policy"},
	"POST /api/v1/roles/grant":                   {domain.AuditActionRoleChange, "role"},
	"POST /api/v1/roles/revoke":                  {domain.AuditActionRoleChange, "role"},
	"POST /api/v1/vaults":                        {domain.AuditActionVaultCreate, "vault"},
	"POST /api/v1/vaults/:id/buy":                {domain.AuditActionTrade, "vault"},
	"POST /api/v1/vaults/:id/sell":               {domain.AuditActionTrade, "vault"},
	"POST /api/v1/vaults/:id/redeem":             {domain.AuditActionRedemption, "vault"},
	"POST /api/v1/vaults/:id/redemption":         {domain.AuditActionRedemption, "vault"},
	"POST /api/v1/vaults/:id/pause":              {domain.AuditActionSettings, "vault"},
	"POST /api/v1/vaults/:id/unpause":            {domain.AuditActionSettings, "vault"},
	"POST /api/v1/vaults/:id/liquidity/deposit":  {domain.AuditActionLiquidity, "vault"},
	"POST /api/v1/vaults/:id/liquidity/withdraw": {domain.AuditActionLiquidity, "vault"},
	"PUT /api/v1/factory/settings":               {domain.AuditActionSettings, "factory"},
	"POST /api/v1/factory/pause":                 {domain.AuditActionSettings, "factory"},
	"POST /api/v1/factory/unpause":               {domain.AuditActionSettings, "factory"},
	"POST /api/v1/balances/topup":                {domain.AuditActionTopup, "balance"},
}

// AuditLog creates an audit middleware that logs successful write operations.
// It maps the matched route template to an audit action.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		var principal *domain.Address
		if p, ok := Principal(c); ok {
			principal = &p
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Principal:    principal,
			Action:       route.action,
			ResourceType: route.resource,
			ResourceID:   strings.TrimSpace(c.Param("id")),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
