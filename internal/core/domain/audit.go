package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionMint         AuditAction = "MINT"
	AuditActionVerify       AuditAction = "VERIFY"
	AuditActionValuation    AuditAction = "VALUATION"
	AuditActionFreeze       AuditAction = "FREEZE"
	AuditActionRecover      AuditAction = "RECOVER"
	AuditActionTransfer     AuditAction = "TRANSFER"
	AuditActionRoyalty      AuditAction = "ROYALTY"
	AuditActionSettings     AuditAction = "SETTINGS"
	AuditActionPolicyChange AuditAction = "POLICY_CHANGE"
	AuditActionRoleChange   AuditAction = "ROLE_CHANGE"
	AuditActionVaultCreate  AuditAction = "VAULT_CREATE"
	AuditActionTrade        AuditAction = "TRADE"
	AuditActionLiquidity    AuditAction = "LIQUIDITY"
	AuditActionRedemption   AuditAction = "REDEMPTION"
	AuditActionTopup        AuditAction = "TOPUP"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Principal    *Address    `json:"principal,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
