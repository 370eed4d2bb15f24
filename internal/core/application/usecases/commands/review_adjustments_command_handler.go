package commands

import (
	"context"

	"pedidos/internal/pkg/errs"
)

// ReviewAdjustmentsCommandHandler applies the client's accept/reject verdict
// to a warehouse-adjusted order.
type ReviewAdjustmentsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReviewAdjustmentsCommandHandler creates a handler for adjustment reviews.
func NewReviewAdjustmentsCommandHandler(uowFactory OrderUoWFactory) ReviewAdjustmentsCommandHandler {
	return ReviewAdjustmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review. Only the order's own client may decide;
// acceptance lands the order in validado, rejection in rechazado_cliente.
func (h ReviewAdjustmentsCommandHandler) Handle(
	ctx context.Context, cmd ReviewAdjustmentsCommand,
) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.ClienteID().IsEqual(cmd.Actor().ID()) {
		return errs.NewInvalidRequestError("only the order's client may review its adjustments")
	}

	if cmd.Aceptar() {
		err = o.AcceptAdjustments()
	} else {
		err = o.RejectAdjustments(cmd.Motivo())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
