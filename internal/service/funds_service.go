package service

import (
	"context"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

// fundsService implements ports.FundsService.
type fundsService struct {
	funds ports.FundsLedger
	roles ports.RoleManager
	sink  ports.EventSink
	log   zerolog.Logger
}

// NewFundsService creates a new funds service.
func NewFundsService(funds ports.FundsLedger, roles ports.RoleManager, sink ports.EventSink, log zerolog.Logger) ports.FundsService {
	return &fundsService{funds: funds, roles: roles, sink: sink, log: log}
}

// Topup credits amount to the account. ADMIN only.
func (s *fundsService) Topup(ctx context.Context, caller, to domain.Address, amount uint64) (uint64, error) {
	if err := requireAny(s.roles, caller, domain.RoleAdmin); err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, apperror.ErrZeroAmount()
	}
	if to.IsZero() {
		return 0, apperror.ErrInvalidAddress(to.String())
	}

	if err := s.funds.Credit(ctx, to, amount); err != nil {
		return 0, err
	}
	balance, err := s.funds.BalanceOf(ctx, to)
	if err != nil {
		return 0, err
	}

	if s.sink != nil {
		s.sink.Publish(ctx, []domain.Event{domain.NewEvent(domain.EventFundsCredited, "funds", caller, map[string]any{
			"account": to,
			"amount":  amount,
		})})
	}

	s.log.Info().
		Str("account", to.String()).
		Uint64("amount", amount).
		Str("caller", caller.String()).
		Msg("topup processed successfully")

	return balance, nil
}

// Balance returns the account balance.
func (s *fundsService) Balance(ctx context.Context, holder domain.Address) (uint64, error) {
	return s.funds.BalanceOf(ctx, holder)
}
