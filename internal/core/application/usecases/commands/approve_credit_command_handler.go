package commands

import (
	"context"
	"time"
)

// ApproveCreditCommandHandler approves a credit line, starting its payment
// term clock.
type ApproveCreditCommandHandler struct {
	uowFactory CreditUoWFactory
}

// NewApproveCreditCommandHandler creates a handler for credit approval.
func NewApproveCreditCommandHandler(uowFactory CreditUoWFactory) ApproveCreditCommandHandler {
	return ApproveCreditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval. A second approval fails with DuplicateCredit.
func (h ApproveCreditCommandHandler) Handle(ctx context.Context, cmd ApproveCreditCommand) error {
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

	if err = cr.Aprobar(cmd.Monto(), cmd.PlazoDias(), cmd.Notas(), time.Now()); err != nil {
		return err
	}

	if err = creditRepo.Update(ctx, cr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
