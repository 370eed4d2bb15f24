package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrRejectCreditCommandIsNotConstructed = errors.New(
	"RejectCreditCommand must be created via NewRejectCreditCommand constructor",
)

// RejectCreditCommand represents a supervisor declining a credit line. A
// credit with registered payments cannot be rejected; a rejected credit
// permanently blocks routing of its credito order.
type RejectCreditCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	creditID kernel.UUID
	motivo   string

	guard guard.ConstructorGuard
}

// NewRejectCreditCommand creates a credit rejection command.
// Restricted to the supervisor role; the motive is mandatory.
func NewRejectCreditCommand(
	a actor.Actor, creditID kernel.UUID, motivo string,
) (RejectCreditCommand, error) {
	cmd := RejectCreditCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setCreditID(creditID),
		cmd.setMotivo(motivo),
	); err != nil {
		return RejectCreditCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCreditCommand) Validate() error {
	return c.guard.Validate(ErrRejectCreditCommandIsNotConstructed)
}

// Actor returns the rejecting supervisor.
func (c RejectCreditCommand) Actor() actor.Actor {
	return c.actor
}

// CreditID returns the credit to reject.
func (c RejectCreditCommand) CreditID() kernel.UUID {
	return c.creditID
}

// Motivo returns the rejection motive.
func (c RejectCreditCommand) Motivo() string {
	return c.motivo
}

func (c *RejectCreditCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *RejectCreditCommand) setCreditID(creditID kernel.UUID) error {
	if err := creditID.Validate(); err != nil {
		return err
	}

	c.creditID = creditID
	return nil
}

func (c *RejectCreditCommand) setMotivo(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo")
	}

	c.motivo = motivo
	return nil
}
