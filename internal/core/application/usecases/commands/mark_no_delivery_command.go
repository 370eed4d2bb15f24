package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrMarkNoDeliveryCommandIsNotConstructed = errors.New(
	"MarkNoDeliveryCommand must be created via NewMarkNoDeliveryCommand constructor",
)

// MarkNoDeliveryCommand represents the carrier reporting a failed hand-off.
// The delivery terminates as no_entregado; the order returns to asignado_ruta
// so a supervisor can re-route or cancel it.
type MarkNoDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	deliveryID kernel.UUID
	motivo     string
	ubicacion  *delivery.Coordinates

	guard guard.ConstructorGuard
}

// NewMarkNoDeliveryCommand creates a failed-delivery command.
// Restricted to the transportista role; the motive is mandatory.
func NewMarkNoDeliveryCommand(
	a actor.Actor, deliveryID kernel.UUID, motivo string, ubicacion *delivery.Coordinates,
) (MarkNoDeliveryCommand, error) {
	cmd := MarkNoDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
		cmd.setMotivo(motivo),
	); err != nil {
		return MarkNoDeliveryCommand{}, err
	}
	cmd.ubicacion = ubicacion

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNoDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkNoDeliveryCommandIsNotConstructed)
}

// Actor returns the carrier reporting the failure.
func (c MarkNoDeliveryCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the failed delivery.
func (c MarkNoDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Motivo returns why the hand-off failed.
func (c MarkNoDeliveryCommand) Motivo() string {
	return c.motivo
}

// Ubicacion returns the coordinates where the attempt was made, when reported.
func (c MarkNoDeliveryCommand) Ubicacion() *delivery.Coordinates {
	return c.ubicacion
}

func (c *MarkNoDeliveryCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleTransportista); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *MarkNoDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *MarkNoDeliveryCommand) setMotivo(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo_no_entrega")
	}

	c.motivo = motivo
	return nil
}
