package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents cancelling an order before it goes on route.
// Once the order is en_ruta, cancellation must go through the delivery.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	motivo  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates an order cancellation command. Clients cancel
// their own orders; supervisors may cancel any.
func NewCancelOrderCommand(
	a actor.Actor, orderID kernel.UUID, motivo string,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setMotivo(motivo),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Actor returns the caller requesting the cancellation.
func (c CancelOrderCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Motivo returns the cancellation motive.
func (c CancelOrderCommand) Motivo() string {
	return c.motivo
}

func (c *CancelOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleCliente, actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setMotivo(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo_cancelacion")
	}

	c.motivo = motivo
	return nil
}
