package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups error codes into the families callers branch on.
type Kind string

const (
	KindAuthorization     Kind = "AUTHORIZATION"
	KindState             Kind = "STATE"
	KindInvariant         Kind = "INVARIANT"
	KindInsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	KindNotFound          Kind = "NOT_FOUND"
	KindPolicyDenied      Kind = "POLICY_DENIED"
	KindValidation        Kind = "VALIDATION"
	KindRateLimit         Kind = "RATE_LIMIT"
	KindSystem            Kind = "SYSTEM"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Reason     string `json:"reason,omitempty"` // Policy deny reason, set only for POL_* errors
	Kind       Kind   `json:"-"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so errors.Is works against the constructor results.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of err, or KindSystem for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindSystem
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// CodeOf returns the error code of err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Authorization (AUTH) ----

func ErrMissingRole(role string) *AppError {
	return New(KindAuthorization, "AUTH_001", fmt.Sprintf("Caller lacks the %s role", role), http.StatusForbidden)
}

func ErrNotAssetOwner() *AppError {
	return New(KindAuthorization, "AUTH_002", "Caller does not own the asset", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(KindAuthorization, "AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotApprovedOperator() *AppError {
	return New(KindAuthorization, "AUTH_004", "Caller is neither owner nor approved operator", http.StatusForbidden)
}

func ErrOriginalOwnerCannotBuy() *AppError {
	return New(KindAuthorization, "AUTH_005", "Original owner cannot buy shares of its own vault", http.StatusForbidden)
}

// ---- Lifecycle state (STATE) ----

func ErrAlreadyFrozen() *AppError {
	return New(KindState, "STATE_001", "Asset is already frozen", http.StatusConflict)
}

func ErrNotFrozen() *AppError {
	return New(KindState, "STATE_002", "Asset is not frozen", http.StatusConflict)
}

func ErrAlreadyVerified() *AppError {
	return New(KindState, "STATE_003", "Asset is already verified at this level or higher", http.StatusConflict)
}

func ErrRedemptionAlreadyEnabled() *AppError {
	return New(KindState, "STATE_004", "Redemption is already enabled", http.StatusConflict)
}

func ErrRedemptionNotEnabled() *AppError {
	return New(KindState, "STATE_005", "Redemption is not enabled", http.StatusConflict)
}

func ErrPaused(component string) *AppError {
	return New(KindState, "STATE_006", fmt.Sprintf("%s is paused", component), http.StatusConflict)
}

func ErrAlreadyFractionalized() *AppError {
	return New(KindState, "STATE_007", "Asset is already fractionalized", http.StatusConflict)
}

func ErrReentrantCall(component string) *AppError {
	return New(KindState, "STATE_008", fmt.Sprintf("Reentrant call into %s", component), http.StatusConflict)
}

func ErrAssetFrozen() *AppError {
	return New(KindState, "STATE_009", "Asset is frozen", http.StatusConflict)
}

func ErrAlreadyWithOriginalOwner() *AppError {
	return New(KindState, "STATE_010", "Asset is already held by its original owner", http.StatusConflict)
}

func ErrValuationCooldown() *AppError {
	return New(KindState, "STATE_011", "Valuation update interval has not elapsed", http.StatusConflict)
}

func ErrMintCooldown() *AppError {
	return New(KindState, "STATE_012", "Mint cooldown has not elapsed", http.StatusConflict)
}

func ErrPartialShareholding() *AppError {
	return New(KindState, "STATE_013", "Redemption requires holding the entire share supply", http.StatusConflict)
}

func ErrVaultClosed() *AppError {
	return New(KindState, "STATE_014", "Vault has been redeemed", http.StatusConflict)
}

func ErrRequestInFlight() *AppError {
	return New(KindState, "STATE_015", "A request with this idempotency key is already in progress", http.StatusConflict)
}

// ---- Invariants (INV) ----

func ErrZeroAmount() *AppError {
	return New(KindInvariant, "INV_001", "Amount must be greater than zero", http.StatusUnprocessableEntity)
}

func ErrRoyaltySharesExceeded() *AppError {
	return New(KindInvariant, "INV_002", "Royalty shares exceed 10000 basis points", http.StatusUnprocessableEntity)
}

func ErrFeeAboveCap(maxBps uint64) *AppError {
	return New(KindInvariant, "INV_003", fmt.Sprintf("Fee exceeds the %d basis point cap", maxBps), http.StatusUnprocessableEntity)
}

func ErrShareCapExceeded() *AppError {
	return New(KindInvariant, "INV_004", "Share cap exceeded", http.StatusUnprocessableEntity)
}

func ErrArithmeticOverflow() *AppError {
	return New(KindInvariant, "INV_005", "Amount overflows", http.StatusUnprocessableEntity)
}

func ErrInsufficientShares() *AppError {
	return New(KindInvariant, "INV_006", "Insufficient share balance", http.StatusUnprocessableEntity)
}

func ErrInsufficientLiquidity() *AppError {
	return New(KindInvariant, "INV_007", "Insufficient vault liquidity", http.StatusUnprocessableEntity)
}

func ErrInvalidAddress(addr string) *AppError {
	return New(KindInvariant, "INV_008", fmt.Sprintf("Invalid address %q", addr), http.StatusUnprocessableEntity)
}

func ErrInvalidVerificationLevel() *AppError {
	return New(KindInvariant, "INV_009", "Verification level must be greater than zero", http.StatusUnprocessableEntity)
}

// ---- Funds (FUNDS) ----

func ErrInsufficientPayment(required, provided uint64) *AppError {
	return New(KindInsufficientFunds, "FUNDS_001",
		fmt.Sprintf("Insufficient payment: required %d, provided %d", required, provided),
		http.StatusPaymentRequired)
}

func ErrInsufficientBalance() *AppError {
	return New(KindInsufficientFunds, "FUNDS_002", "Insufficient balance", http.StatusPaymentRequired)
}

// ---- Not found (NF) ----

func ErrAssetNotFound(id uint64) *AppError {
	return New(KindNotFound, "NF_001", fmt.Sprintf("Asset %d not found", id), http.StatusNotFound)
}

func ErrVaultNotFound() *AppError {
	return New(KindNotFound, "NF_002", "Vault not found", http.StatusNotFound)
}

func ErrRoyaltyRecipientNotFound() *AppError {
	return New(KindNotFound, "NF_003", "Royalty recipient not found", http.StatusNotFound)
}

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "NF_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Policy (POL) ----

// ErrPolicyDenied carries the first reason the policy engine triggered.
func ErrPolicyDenied(reason string) *AppError {
	e := New(KindPolicyDenied, "POL_001", fmt.Sprintf("Transfer denied by policy: %s", reason), http.StatusForbidden)
	e.Reason = reason
	return e
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimit, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(KindSystem, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrRollbackFailed(err error) *AppError {
	return Wrap(KindSystem, "SYS_002", "Failed to undo partial operation", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindSystem, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 request validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message, http.StatusBadRequest)
}
