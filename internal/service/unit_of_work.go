package service

import (
	"context"
	"errors"
	"fmt"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

// unitOfWork journals the compensations and notifications of one mutating
// call. Compensations replay in reverse on failure; notifications are only
// published on commit.
type unitOfWork struct {
	undo   []func(ctx context.Context) error
	events []domain.Event
	sink   ports.EventSink
	log    zerolog.Logger
}

type unitKey struct{}

func newUnitOfWork(sink ports.EventSink, log zerolog.Logger) *unitOfWork {
	return &unitOfWork{sink: sink, log: log}
}

// enclosingUnit returns the unit of work a guarded call is running inside,
// if any.
func enclosingUnit(ctx context.Context) *unitOfWork {
	u, _ := ctx.Value(unitKey{}).(*unitOfWork)
	return u
}

// onRollback registers the compensation of a step that just completed.
func (u *unitOfWork) onRollback(fn func(ctx context.Context) error) {
	u.undo = append(u.undo, fn)
}

func (u *unitOfWork) emit(e domain.Event) {
	u.events = append(u.events, e)
}

// move transfers funds and journals the reverse transfer.
func (u *unitOfWork) move(ctx context.Context, funds ports.FundsLedger, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := funds.Transfer(ctx, from, to, amount); err != nil {
		return err
	}
	u.onRollback(func(ctx context.Context) error {
		return funds.Transfer(ctx, to, from, amount)
	})
	return nil
}

// rollback replays the journal and returns cause, or a SYS_002 error when
// a compensation itself failed.
func (u *unitOfWork) rollback(ctx context.Context, cause error) error {
	cctx := ports.WithCompensation(context.WithoutCancel(ctx))
	var failed []error
	for i := len(u.undo) - 1; i >= 0; i-- {
		if err := u.undo[i](cctx); err != nil {
			failed = append(failed, err)
		}
	}
	u.undo = nil
	u.events = nil
	if len(failed) > 0 {
		joined := errors.Join(failed...)
		u.log.Error().Err(joined).AnErr("cause", cause).Msg("compensation failed, state may be inconsistent")
		return apperror.ErrRollbackFailed(fmt.Errorf("%w (cause: %v)", joined, cause))
	}
	return cause
}

// commit drops the journal and publishes the collected notifications.
func (u *unitOfWork) commit(ctx context.Context) {
	u.undo = nil
	if u.sink != nil && len(u.events) > 0 {
		u.sink.Publish(context.WithoutCancel(ctx), u.events)
	}
	u.events = nil
}

// absorb hands a finished nested unit over to u. The nested compensations
// re-acquire guard when they replay, since by then the nested call has
// released it.
func (u *unitOfWork) absorb(nested *unitOfWork, guard *Guard) {
	for _, fn := range nested.undo {
		fn := fn
		u.undo = append(u.undo, func(ctx context.Context) error {
			gctx, release, err := guard.Enter(ctx)
			if err != nil {
				return err
			}
			defer release()
			return fn(gctx)
		})
	}
	u.events = append(u.events, nested.events...)
	nested.undo = nil
	nested.events = nil
}

// runGuarded executes op as one unit of work under guard. The op must use
// the context it is given for every collaborator call. A call made from
// inside another component's unit of work joins it: its compensations and
// notifications only settle when the outermost unit commits or rolls back.
func runGuarded(ctx context.Context, guard *Guard, sink ports.EventSink, log zerolog.Logger, op func(ctx context.Context, uow *unitOfWork) error) error {
	ctx, release, err := guard.Enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	outer := enclosingUnit(ctx)
	uow := newUnitOfWork(sink, log)
	if err := op(context.WithValue(ctx, unitKey{}, uow), uow); err != nil {
		return uow.rollback(ctx, err)
	}
	if outer != nil {
		outer.absorb(uow, guard)
		return nil
	}
	uow.commit(ctx)
	return nil
}
