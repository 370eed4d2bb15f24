package commands

import (
	"context"
)

// RejectCreditCommandHandler declines a credit line before any payment has
// been taken against it.
type RejectCreditCommandHandler struct {
	uowFactory CreditUoWFactory
}

// NewRejectCreditCommandHandler creates a handler for credit rejection.
func NewRejectCreditCommandHandler(uowFactory CreditUoWFactory) RejectCreditCommandHandler {
	return RejectCreditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection.
func (h RejectCreditCommandHandler) Handle(ctx context.Context, cmd RejectCreditCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	creditRepo := uow.CreditRepository()
	cr, err := creditRepo.Get(ctx, cmd.CreditID())
	if err != nil {
		return err
	}

	if err = cr.Rechazar(cmd.Motivo()); err != nil {
		return err
	}

	if err = creditRepo.Update(ctx, cr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
