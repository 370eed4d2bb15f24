package commands

import (
	"context"

	"pedidos/internal/pkg/errs"
)

// MarkNoDeliveryCommandHandler records a failed hand-off. The delivery
// terminates; the order drops back to asignado_ruta for manual follow-up.
type MarkNoDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewMarkNoDeliveryCommandHandler creates a handler for failed deliveries.
func NewMarkNoDeliveryCommandHandler(uowFactory OrderDeliveryUoWFactory) MarkNoDeliveryCommandHandler {
	return MarkNoDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failed hand-off report.
func (h MarkNoDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkNoDeliveryCommand) error {
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
		return errs.NewInvalidRequestError("only the assigned carrier may report this delivery")
	}

	if err = d.MarkNotDelivered(cmd.Motivo(), cmd.Ubicacion()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.PedidoID())
	if err != nil {
		return err
	}
	if err = o.MarkNotDelivered(); err != nil {
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
