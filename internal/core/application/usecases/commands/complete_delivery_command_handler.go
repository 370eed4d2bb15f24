package commands

import (
	"context"
	"time"

	"pedidos/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler closes a delivery at the door and marks the
// order entregado in the same transaction. The evidence gate for full
// completions lives in the aggregate.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion. Only the assigned carrier may close the
// delivery; both completion modes move the order to entregado.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CompleteDeliveryCommand,
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

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !d.TransportistaID().IsEqual(cmd.Actor().ID()) {
		return errs.NewInvalidRequestError("only the assigned carrier may complete this delivery")
	}

	now := time.Now()
	if cmd.Parcial() {
		err = d.CompletePartial(now, cmd.MotivoParcial(), cmd.Observaciones(), cmd.Ubicacion())
	} else {
		err = d.Complete(now, cmd.Observaciones(), cmd.Ubicacion())
	}
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.PedidoID())
	if err != nil {
		return err
	}
	if err = o.MarkDelivered(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
