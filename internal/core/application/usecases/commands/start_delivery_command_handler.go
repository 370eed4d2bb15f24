package commands

import (
	"context"
	"time"

	"pedidos/internal/pkg/errs"
)

// StartDeliveryCommandHandler puts a pending delivery on route and moves its
// order to en_ruta atomically.
type StartDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for route departure.
func NewStartDeliveryCommandHandler(uowFactory OrderDeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the departure. Only the assigned carrier may start the route.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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
		return errs.NewInvalidRequestError("only the assigned carrier may start this delivery")
	}

	if err = d.StartRoute(time.Now()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.PedidoID())
	if err != nil {
		return err
	}
	if err = o.StartRoute(); err != nil {
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
