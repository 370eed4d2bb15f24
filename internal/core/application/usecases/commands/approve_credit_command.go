package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrApproveCreditCommandIsNotConstructed = errors.New(
	"ApproveCreditCommand must be created via NewApproveCreditCommand constructor",
)

// ApproveCreditCommand represents a supervisor approving the credit line
// opened for a credito order: the approved amount and the payment term in
// days. Approval happens once per credit.
type ApproveCreditCommand struct { //nolint:recvcheck //using for validation
	actor     actor.Actor
	creditID  kernel.UUID
	monto     kernel.Money
	plazoDias int
	notas     string

	guard guard.ConstructorGuard
}

// NewApproveCreditCommand creates a credit approval command.
// Restricted to the supervisor role.
func NewApproveCreditCommand(
	a actor.Actor, creditID kernel.UUID, monto kernel.Money, plazoDias int, notas string,
) (ApproveCreditCommand, error) {
	cmd := ApproveCreditCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setCreditID(creditID),
		cmd.setMonto(monto),
		cmd.setPlazoDias(plazoDias),
	); err != nil {
		return ApproveCreditCommand{}, err
	}
	cmd.notas = notas

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCreditCommand) Validate() error {
	return c.guard.Validate(ErrApproveCreditCommandIsNotConstructed)
}

// Actor returns the approving supervisor.
func (c ApproveCreditCommand) Actor() actor.Actor {
	return c.actor
}

// CreditID returns the credit to approve.
func (c ApproveCreditCommand) CreditID() kernel.UUID {
	return c.creditID
}

// Monto returns the approved amount.
func (c ApproveCreditCommand) Monto() kernel.Money {
	return c.monto
}

// PlazoDias returns the payment term in days.
func (c ApproveCreditCommand) PlazoDias() int {
	return c.plazoDias
}

// Notas returns the supervisor's notes.
func (c ApproveCreditCommand) Notas() string {
	return c.notas
}

func (c *ApproveCreditCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ApproveCreditCommand) setCreditID(creditID kernel.UUID) error {
	if err := creditID.Validate(); err != nil {
		return err
	}

	c.creditID = creditID
	return nil
}

func (c *ApproveCreditCommand) setMonto(monto kernel.Money) error {
	if !monto.IsPositive() {
		return errs.NewInvalidAmountError(
			fmt.Sprintf("monto_aprobado %s must be greater than 0", monto))
	}

	c.monto = monto
	return nil
}

func (c *ApproveCreditCommand) setPlazoDias(plazoDias int) error {
	if plazoDias <= 0 {
		return errs.NewValueIsOutOfRangeError("plazo_dias", plazoDias, 1, "unbounded")
	}

	c.plazoDias = plazoDias
	return nil
}
