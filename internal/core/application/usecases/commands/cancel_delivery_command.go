package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a supervisor pulling a delivery off the
// street. The linked order is cancelled in the same transaction; this is the
// only cancellation path once the order is en_ruta.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	deliveryID kernel.UUID
	motivo     string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a delivery cancellation command.
// Restricted to the supervisor role; the motive is mandatory.
func NewCancelDeliveryCommand(
	a actor.Actor, deliveryID kernel.UUID, motivo string,
) (CancelDeliveryCommand, error) {
	cmd := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
		cmd.setMotivo(motivo),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// Actor returns the supervisor cancelling the delivery.
func (c CancelDeliveryCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Motivo returns the cancellation motive.
func (c CancelDeliveryCommand) Motivo() string {
	return c.motivo
}

func (c *CancelDeliveryCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CancelDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CancelDeliveryCommand) setMotivo(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo_cancelacion")
	}

	c.motivo = motivo
	return nil
}
