package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the carrier closing a delivery at the
// client's door. A full completion needs hand-off evidence already on file;
// a partial one needs a motive. Either way the order ends up entregado.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor         actor.Actor
	deliveryID    kernel.UUID
	parcial       bool
	motivoParcial string
	observaciones string
	ubicacion     *delivery.Coordinates

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a delivery completion command.
// Restricted to the transportista role.
func NewCompleteDeliveryCommand(
	a actor.Actor,
	deliveryID kernel.UUID,
	parcial bool,
	motivoParcial string,
	observaciones string,
	ubicacion *delivery.Coordinates,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
		cmd.setCompletion(parcial, motivoParcial),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	cmd.observaciones = observaciones
	cmd.ubicacion = ubicacion

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// Actor returns the carrier closing the delivery.
func (c CompleteDeliveryCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the delivery being closed.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Parcial reports whether the delivery closes as entregado_parcial.
func (c CompleteDeliveryCommand) Parcial() bool {
	return c.parcial
}

// MotivoParcial returns the partial-delivery motive; empty on full completion.
func (c CompleteDeliveryCommand) MotivoParcial() string {
	return c.motivoParcial
}

// Observaciones returns the carrier's free-form notes.
func (c CompleteDeliveryCommand) Observaciones() string {
	return c.observaciones
}

// Ubicacion returns the completion coordinates when reported.
func (c CompleteDeliveryCommand) Ubicacion() *delivery.Coordinates {
	return c.ubicacion
}

func (c *CompleteDeliveryCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleTransportista); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setCompletion(parcial bool, motivoParcial string) error {
	if parcial && motivoParcial == "" {
		return errs.NewValueIsRequiredError("motivo_parcial")
	}

	c.parcial = parcial
	c.motivoParcial = motivoParcial
	return nil
}
