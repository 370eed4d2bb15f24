package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents the carrier departing with a pending
// delivery. The order follows onto en_ruta in the same transaction.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to put a delivery on route.
// Restricted to the transportista role.
func NewStartDeliveryCommand(a actor.Actor, deliveryID kernel.UUID) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// Actor returns the carrier starting the route.
func (c StartDeliveryCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the delivery to start.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *StartDeliveryCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleTransportista); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *StartDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
