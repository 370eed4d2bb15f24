package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrValidateOrderCommandIsNotConstructed = errors.New(
	"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
)

// ResolutionInput is the warehouse verdict for one order line. Estado carries
// the wire value (aprobado, aprobado_parcial, sustituido, rechazado);
// SKUAprobadoCodigo is set only for substitutions.
type ResolutionInput struct {
	ItemID            kernel.UUID
	Estado            string
	CantidadAprobada  int
	SKUAprobadoCodigo string
	Motivo            string
}

// ValidateOrderCommand represents a warehouse operator submitting the
// resolution batch for an order. The batch must cover every item; the
// handler applies it all-or-nothing.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         actor.Actor
	orderID       kernel.UUID
	observaciones string
	resolutions   []ResolutionInput

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command to validate an order's items.
// Restricted to the bodega role.
func NewValidateOrderCommand(
	a actor.Actor,
	orderID kernel.UUID,
	observaciones string,
	resolutions []ResolutionInput,
) (ValidateOrderCommand, error) {
	cmd := ValidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setResolutions(resolutions),
	); err != nil {
		return ValidateOrderCommand{}, err
	}
	cmd.observaciones = observaciones

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// Actor returns the warehouse operator submitting the batch.
func (c ValidateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order being validated.
func (c ValidateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Observaciones returns the operator's free-form notes.
func (c ValidateOrderCommand) Observaciones() string {
	return c.observaciones
}

// Resolutions returns the per-item verdicts.
func (c ValidateOrderCommand) Resolutions() []ResolutionInput {
	return c.resolutions
}

func (c *ValidateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleBodega); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ValidateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ValidateOrderCommand) setResolutions(resolutions []ResolutionInput) error {
	if len(resolutions) == 0 {
		return errs.NewValueIsRequiredError("resoluciones")
	}
	for _, res := range resolutions {
		if err := res.ItemID.Validate(); err != nil {
			return err
		}
		if _, err := order.ResolutionStatusFromString(res.Estado); err != nil {
			return err
		}
	}

	c.resolutions = resolutions
	return nil
}
