package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrReviewAdjustmentsCommandIsNotConstructed = errors.New(
	"ReviewAdjustmentsCommand must be created via NewReviewAdjustmentsCommand constructor",
)

// ReviewAdjustmentsCommand represents the client's decision on a warehouse-
// adjusted order: accept the adjustments or reject the whole order. A
// rejection requires a motive; the order then terminates as rechazado_cliente.
type ReviewAdjustmentsCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	aceptar bool
	motivo  string

	guard guard.ConstructorGuard
}

// NewReviewAdjustmentsCommand creates a command carrying the client's verdict.
// Only the cliente role may review adjustments; ownership of the order is
// checked by the handler.
func NewReviewAdjustmentsCommand(
	a actor.Actor, orderID kernel.UUID, aceptar bool, motivo string,
) (ReviewAdjustmentsCommand, error) {
	cmd := ReviewAdjustmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setDecision(aceptar, motivo),
	); err != nil {
		return ReviewAdjustmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewAdjustmentsCommand) Validate() error {
	return c.guard.Validate(ErrReviewAdjustmentsCommandIsNotConstructed)
}

// Actor returns the client reviewing the adjustments.
func (c ReviewAdjustmentsCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the order under review.
func (c ReviewAdjustmentsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Aceptar reports whether the client accepted the adjustments.
func (c ReviewAdjustmentsCommand) Aceptar() bool {
	return c.aceptar
}

// Motivo returns the rejection motive; empty on acceptance.
func (c ReviewAdjustmentsCommand) Motivo() string {
	return c.motivo
}

func (c *ReviewAdjustmentsCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleCliente); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ReviewAdjustmentsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewAdjustmentsCommand) setDecision(aceptar bool, motivo string) error {
	if !aceptar && motivo == "" {
		return errs.NewValueIsRequiredError("motivo_rechazo")
	}

	c.aceptar = aceptar
	c.motivo = motivo
	return nil
}
