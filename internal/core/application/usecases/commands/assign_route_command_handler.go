package commands

import (
	"context"
	"errors"
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/pkg/errs"
)

// AssignRouteCommandHandler routes a validated order. The promotion and
// credit guards are re-checked inside the transaction, so a snapshot that
// went stale between read and commit fails instead of routing a blocked
// order; the optimistic version guard on the order update catches the
// remaining races.
type AssignRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRouteCommandHandler creates a handler for route assignment.
func NewAssignRouteCommandHandler(uowFactory UoWFactory) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route assignment: moves the order to asignado_ruta
// and creates its pending delivery in one transaction.
func (h AssignRouteCommandHandler) Handle(ctx context.Context, cmd AssignRouteCommand) error {
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

	var cr *credit.Credit
	if o.NeedsCredit() {
		cr, err = uow.CreditRepository().GetByOrder(ctx, o.ID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	newDelivery, err := services.NewRouteDispatcher().Dispatch(
		o, cr, cmd.RuteroLogisticoID(), cmd.TransportistaID(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
