package commands

import (
	"context"
	"time"
)

// ReconcilePromotionsCommandHandler applies a supervisor's discount verdict
// to an order. Approval is idempotent; a second approval keeps the original
// approval timestamp.
type ReconcilePromotionsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReconcilePromotionsCommandHandler creates a handler for promotion
// reconciliation.
func NewReconcilePromotionsCommandHandler(uowFactory OrderUoWFactory) ReconcilePromotionsCommandHandler {
	return ReconcilePromotionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verdict against the whole order or a single item.
func (h ReconcilePromotionsCommandHandler) Handle(
	ctx context.Context, cmd ReconcilePromotionsCommand,
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

	now := time.Now()
	switch {
	case cmd.ItemID() != nil && cmd.Aprobar():
		err = o.ApprovePromotionItem(*cmd.ItemID(), now)
	case cmd.ItemID() != nil:
		err = o.RejectPromotionItem(*cmd.ItemID())
	case cmd.Aprobar():
		err = o.ApprovePromotions(now)
	default:
		err = o.RejectPromotions()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
