package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrReconcilePromotionsCommandIsNotConstructed = errors.New(
	"ReconcilePromotionsCommand must be created via NewReconcilePromotionsCommand constructor",
)

// ReconcilePromotionsCommand represents a supervisor's verdict on an order's
// discounted items. With a nil item ID the verdict covers every pending
// discount on the order; with one set it covers that single line.
// Rejection restores the line to its base price and recomputes the total.
type ReconcilePromotionsCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	aprobar bool
	itemID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcilePromotionsCommand creates a command for promotion reconciliation.
// Restricted to the supervisor role.
func NewReconcilePromotionsCommand(
	a actor.Actor, orderID kernel.UUID, aprobar bool, itemID *kernel.UUID,
) (ReconcilePromotionsCommand, error) {
	cmd := ReconcilePromotionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return ReconcilePromotionsCommand{}, err
	}
	cmd.aprobar = aprobar

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePromotionsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePromotionsCommandIsNotConstructed)
}

// Actor returns the supervisor issuing the verdict.
func (c ReconcilePromotionsCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order whose discounts are being reconciled.
func (c ReconcilePromotionsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Aprobar reports whether the discounts are approved.
func (c ReconcilePromotionsCommand) Aprobar() bool {
	return c.aprobar
}

// ItemID returns the single targeted item, or nil for the whole order.
func (c ReconcilePromotionsCommand) ItemID() *kernel.UUID {
	return c.itemID
}

func (c *ReconcilePromotionsCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ReconcilePromotionsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReconcilePromotionsCommand) setItemID(itemID *kernel.UUID) error {
	if itemID != nil {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	c.itemID = itemID
	return nil
}
