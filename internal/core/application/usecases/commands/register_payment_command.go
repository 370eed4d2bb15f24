package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrRegisterPaymentCommandIsNotConstructed = errors.New(
	"RegisterPaymentCommand must be created via NewRegisterPaymentCommand constructor",
)

// RegisterPaymentCommand represents recording a payment against a credit.
// Payments are append-only; a payment that clears the balance closes the
// credit as pagado.
type RegisterPaymentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	creditID   kernel.UUID
	monto      kernel.Money
	referencia string
	notas      string

	guard guard.ConstructorGuard
}

// NewRegisterPaymentCommand creates a payment registration command.
// Restricted to the supervisor role.
func NewRegisterPaymentCommand(
	a actor.Actor, creditID kernel.UUID, monto kernel.Money, referencia, notas string,
) (RegisterPaymentCommand, error) {
	cmd := RegisterPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setCreditID(creditID),
		cmd.setMonto(monto),
	); err != nil {
		return RegisterPaymentCommand{}, err
	}
	cmd.referencia = referencia
	cmd.notas = notas

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPaymentCommandIsNotConstructed)
}

// Actor returns the supervisor recording the payment.
func (c RegisterPaymentCommand) Actor() actor.Actor {
	return c.actor
}

// CreditID returns the credit being paid.
func (c RegisterPaymentCommand) CreditID() kernel.UUID {
	return c.creditID
}

// Monto returns the payment amount.
func (c RegisterPaymentCommand) Monto() kernel.Money {
	return c.monto
}

// Referencia returns the external payment reference.
func (c RegisterPaymentCommand) Referencia() string {
	return c.referencia
}

// Notas returns the payment notes.
func (c RegisterPaymentCommand) Notas() string {
	return c.notas
}

func (c *RegisterPaymentCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *RegisterPaymentCommand) setCreditID(creditID kernel.UUID) error {
	if err := creditID.Validate(); err != nil {
		return err
	}

	c.creditID = creditID
	return nil
}

func (c *RegisterPaymentCommand) setMonto(monto kernel.Money) error {
	if !monto.IsPositive() {
		return errs.NewInvalidAmountError(
			fmt.Sprintf("monto_pago %s must be greater than 0", monto))
	}

	c.monto = monto
	return nil
}
