package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
)

// AssignRouteCommand represents a supervisor routing a validated order:
// naming the logistics router and the carrier who will run the delivery.
//
// Example:
//
//	cmd, err := NewAssignRouteCommand(supervisor, orderID, ruteroID, transportistaID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignRouteCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // pending discounts or an unapproved credit block the route
//	}
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	actor             actor.Actor
	orderID           kernel.UUID
	ruteroLogisticoID kernel.UUID
	transportistaID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRouteCommand creates a command to route an order.
// Restricted to the supervisor role.
func NewAssignRouteCommand(
	a actor.Actor, orderID, ruteroLogisticoID, transportistaID kernel.UUID,
) (AssignRouteCommand, error) {
	cmd := AssignRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setRuteroLogisticoID(ruteroLogisticoID),
		cmd.setTransportistaID(transportistaID),
	); err != nil {
		return AssignRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

// Actor returns the supervisor assigning the route.
func (c AssignRouteCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order to route.
func (c AssignRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RuteroLogisticoID returns the logistics router in charge of the route.
func (c AssignRouteCommand) RuteroLogisticoID() kernel.UUID {
	return c.ruteroLogisticoID
}

// TransportistaID returns the carrier who will execute the delivery.
func (c AssignRouteCommand) TransportistaID() kernel.UUID {
	return c.transportistaID
}

func (c *AssignRouteCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *AssignRouteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRouteCommand) setRuteroLogisticoID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ruteroLogisticoID = id
	return nil
}

func (c *AssignRouteCommand) setTransportistaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.transportistaID = id
	return nil
}
