package service

import (
	"context"
	"sort"
	"sync"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccessControl implements ports.RoleManager as a flat principal -> roles
// table. No role implies another; ADMIN only gates role administration and
// the entry points that name it explicitly.
type AccessControl struct {
	mu    sync.RWMutex
	roles map[domain.Address]map[domain.Role]struct{}
	sink  ports.EventSink
	log   zerolog.Logger
}

// NewAccessControl creates the table with admin holding ADMIN.
func NewAccessControl(admin domain.Address, sink ports.EventSink, log zerolog.Logger) *AccessControl {
	ac := &AccessControl{
		roles: make(map[domain.Address]map[domain.Role]struct{}),
		sink:  sink,
		log:   log,
	}
	if !admin.IsZero() {
		ac.roles[admin] = map[domain.Role]struct{}{domain.RoleAdmin: {}}
	}
	return ac
}

// HasRole reports whether principal holds role.
func (a *AccessControl) HasRole(principal domain.Address, role domain.Role) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.roles[principal][role]
	return ok
}

// RolesOf lists principal's roles in a stable order.
func (a *AccessControl) RolesOf(principal domain.Address) []domain.Role {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Role, 0, len(a.roles[principal]))
	for r := range a.roles[principal] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GrantRole gives principal role. Granting a held role is a no-op that
// still notifies.
func (a *AccessControl) GrantRole(ctx context.Context, caller, principal domain.Address, role domain.Role) error {
	if err := a.checkAdmin(caller, principal); err != nil {
		return err
	}

	a.mu.Lock()
	set, ok := a.roles[principal]
	if !ok {
		set = make(map[domain.Role]struct{})
		a.roles[principal] = set
	}
	set[role] = struct{}{}
	a.mu.Unlock()

	a.notify(ctx, domain.EventRoleGranted, caller, principal, role)
	return nil
}

// RevokeRole removes role from principal.
func (a *AccessControl) RevokeRole(ctx context.Context, caller, principal domain.Address, role domain.Role) error {
	if err := a.checkAdmin(caller, principal); err != nil {
		return err
	}

	a.mu.Lock()
	delete(a.roles[principal], role)
	if len(a.roles[principal]) == 0 {
		delete(a.roles, principal)
	}
	a.mu.Unlock()

	a.notify(ctx, domain.EventRoleRevoked, caller, principal, role)
	return nil
}

func (a *AccessControl) checkAdmin(caller, principal domain.Address) error {
	if !a.HasRole(caller, domain.RoleAdmin) {
		return apperror.ErrMissingRole(string(domain.RoleAdmin))
	}
	if principal.IsZero() {
		return apperror.ErrInvalidAddress(principal.String())
	}
	return nil
}

func (a *AccessControl) notify(ctx context.Context, typ domain.EventType, caller, principal domain.Address, role domain.Role) {
	a.log.Info().
		Str("event", string(typ)).
		Str("principal", principal.String()).
		Str("role", string(role)).
		Str("caller", caller.String()).
		Msg("role table changed")

	if a.sink != nil {
		a.sink.Publish(ctx, []domain.Event{domain.NewEvent(typ, "access", caller, map[string]any{
			"principal": principal,
			"role":      role,
		})})
	}
}

// requireAny returns AUTH_001 unless principal holds one of roles.
func requireAny(roles ports.RoleManager, principal domain.Address, want ...domain.Role) error {
	for _, r := range want {
		if roles.HasRole(principal, r) {
			return nil
		}
	}
	return apperror.ErrMissingRole(string(want[0]))
}
