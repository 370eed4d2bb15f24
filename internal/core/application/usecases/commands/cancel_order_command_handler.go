package commands

import (
	"context"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order that has not yet gone on route.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. A client may only cancel their own order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if cmd.Actor().Role() == actor.RoleCliente && !o.ClienteID().IsEqual(cmd.Actor().ID()) {
		return errs.NewInvalidRequestError("only the order's client may cancel it")
	}

	if err = o.Cancel(cmd.Motivo()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
