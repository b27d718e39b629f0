package service

import (
	"context"
	"sync"

	"fractional-asset-registry/pkg/apperror"
)

type guardKey struct{ g *Guard }

// Guard is the execution lock of one component instance. It serializes
// callers and rejects calls that re-enter the instance through the context
// it handed to collaborators, instead of deadlocking on them. Re-entry is
// only detectable through that context: a callback that starts over from
// context.Background blocks until the holder returns, which it never does.
type Guard struct {
	mu   sync.Mutex
	name string
}

// NewGuard creates the guard for the named component.
func NewGuard(name string) *Guard {
	return &Guard{name: name}
}

// Enter acquires the lock. The returned context must be passed to every
// collaborator called while the lock is held, and release must be called
// on every exit path.
func (g *Guard) Enter(ctx context.Context) (context.Context, func(), error) {
	if Holds(ctx, g) {
		return ctx, func() {}, apperror.ErrReentrantCall(g.name)
	}
	g.mu.Lock()
	return context.WithValue(ctx, guardKey{g}, true), g.mu.Unlock, nil
}

// Holds reports whether ctx was issued by g.Enter.
func Holds(ctx context.Context, g *Guard) bool {
	v, _ := ctx.Value(guardKey{g}).(bool)
	return v
}
