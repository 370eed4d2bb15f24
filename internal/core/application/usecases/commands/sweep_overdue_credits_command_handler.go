package commands

import (
	"context"
	"time"
)

// SweepOverdueCreditsCommandHandler runs the overdue sweep. Marking a credit
// vencido does not block payments; it flags the account for collection.
type SweepOverdueCreditsCommandHandler struct {
	uowFactory CreditUoWFactory
}

// NewSweepOverdueCreditsCommandHandler creates a handler for the overdue sweep.
func NewSweepOverdueCreditsCommandHandler(uowFactory CreditUoWFactory) SweepOverdueCreditsCommandHandler {
	return SweepOverdueCreditsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every overdue candidate vencido in one transaction. A version
// conflict on any credit aborts the batch; the next scheduled run picks up
// whatever is still overdue.
func (h SweepOverdueCreditsCommandHandler) Handle(
	ctx context.Context, cmd SweepOverdueCreditsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	creditRepo := uow.CreditRepository()
	candidates, err := creditRepo.GetAllOverdueCandidates(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, cr := range candidates {
		if err = cr.MarkOverdue(); err != nil {
			return 0, err
		}
		if err = creditRepo.Update(ctx, cr); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(candidates), nil
}
