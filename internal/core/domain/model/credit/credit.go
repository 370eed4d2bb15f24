package credit

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrCreditIsNotConstructed is returned when a Credit instance was not created
// through NewCredit or RestoreCredit.
var ErrCreditIsNotConstructed = errors.New("Credit must be created via NewCredit constructor")

// Credit is the aggregate root of one order's credit sub-ledger. A credit is
// opened automatically when a credito order is created: active but unapproved,
// with a zero amount. Approval sets the amount and term exactly once; from
// then on the balance is derived from the append-only payment list.
//
// The credit gates routing of its order: an unapproved or canceled credit
// keeps the order out of asignado_ruta.
type Credit struct {
	id            kernel.UUID
	pedidoID      kernel.UUID
	clienteID     kernel.UUID
	montoAprobado kernel.Money
	plazoDias     int
	status        Status
	aprobadoEn    *time.Time
	notas         string
	payments      []*Payment

	version       int
	isConstructed bool
}

// NewCredit opens an unapproved credit for a credito order.
func NewCredit(id, pedidoID, clienteID kernel.UUID) (*Credit, error) {
	if err := errors.Join(
		id.Validate(),
		pedidoID.Validate(),
		clienteID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Credit{
		id:            id,
		pedidoID:      pedidoID,
		clienteID:     clienteID,
		montoAprobado: kernel.ZeroMoney(),
		status:        Active,
		isConstructed: true,
	}, nil
}

// RestoreCredit reconstructs a credit from persistence.
func RestoreCredit(
	id kernel.UUID,
	pedidoID kernel.UUID,
	clienteID kernel.UUID,
	montoAprobado kernel.Money,
	plazoDias int,
	status Status,
	aprobadoEn *time.Time,
	notas string,
	payments []*Payment,
	version int,
) (*Credit, error) {
	if err := errors.Join(
		id.Validate(),
		pedidoID.Validate(),
		clienteID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Credit{
		id:            id,
		pedidoID:      pedidoID,
		clienteID:     clienteID,
		montoAprobado: montoAprobado,
		plazoDias:     plazoDias,
		status:        status,
		aprobadoEn:    aprobadoEn,
		notas:         notas,
		payments:      payments,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Credit was created through a constructor.
func (c *Credit) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCreditIsNotConstructed
	}
	return nil
}

// IsEqual compares credits by identifier.
func (c *Credit) IsEqual(other *Credit) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the credit identifier.
func (c *Credit) ID() kernel.UUID { return c.id }

// PedidoID returns the linked order's identifier.
func (c *Credit) PedidoID() kernel.UUID { return c.pedidoID }

// ClienteID returns the debtor client's identifier.
func (c *Credit) ClienteID() kernel.UUID { return c.clienteID }

// MontoAprobado returns the approved amount, zero while unapproved.
func (c *Credit) MontoAprobado() kernel.Money { return c.montoAprobado }

// PlazoDias returns the payment term in days, zero while unapproved.
func (c *Credit) PlazoDias() int { return c.plazoDias }

// Status returns the current lifecycle state.
func (c *Credit) Status() Status { return c.status }

// AprobadoEn returns the approval timestamp, nil while unapproved.
func (c *Credit) AprobadoEn() *time.Time { return c.aprobadoEn }

// Notas returns the approval notes.
func (c *Credit) Notas() string { return c.notas }

// Payments returns the append-only payment list in registration order.
func (c *Credit) Payments() []*Payment { return c.payments }

// Version returns the optimistic-lock version restored from persistence.
func (c *Credit) Version() int { return c.version }

// IsApproved reports whether the amount and term were set.
func (c *Credit) IsApproved() bool { return c.aprobadoEn != nil }

// TotalPagado sums the registered payments.
func (c *Credit) TotalPagado() kernel.Money {
	total := kernel.ZeroMoney()
	for _, p := range c.payments {
		total = total.Add(p.Monto())
	}
	return total
}

// Saldo is the derived outstanding balance: monto_aprobado minus payments.
func (c *Credit) Saldo() kernel.Money {
	saldo, err := c.montoAprobado.Sub(c.TotalPagado())
	if err != nil {
		// Payments never exceed the balance; RegistrarPago guards it.
		return kernel.ZeroMoney()
	}
	return saldo
}

// DueDate returns aprobado_en plus the term, nil while unapproved.
func (c *Credit) DueDate() *time.Time {
	if c.aprobadoEn == nil {
		return nil
	}
	due := c.aprobadoEn.AddDate(0, 0, c.plazoDias)
	return &due
}

// IsOverdue reports whether an active approved credit is past its due date.
func (c *Credit) IsOverdue(now time.Time) bool {
	due := c.DueDate()
	return c.status == Active && due != nil && now.After(*due)
}

// AllowsRouting reports whether the linked order may be routed: the credit
// must be approved and not canceled.
func (c *Credit) AllowsRouting() bool {
	return c.IsApproved() && c.status != Canceled
}

// Aprobar sets the amount and term, exactly once. A second approval fails with
// DuplicateCredit regardless of state.
func (c *Credit) Aprobar(monto kernel.Money, plazoDias int, notas string, now time.Time) error {
	if c.aprobadoEn != nil {
		return errs.NewDuplicateCreditError(c.pedidoID.String())
	}
	if c.status != Active {
		return errs.NewInvalidTransitionError("credito", c.status.String(), "aprobar")
	}
	if !monto.IsPositive() {
		return errs.NewInvalidAmountError(
			fmt.Sprintf("monto_aprobado %s must be greater than 0", monto))
	}
	if plazoDias <= 0 {
		return errs.NewValueIsOutOfRangeError("plazo_dias", plazoDias, 1, "unbounded")
	}

	c.montoAprobado = monto
	c.plazoDias = plazoDias
	c.notas = notas
	c.aprobadoEn = &now
	return nil
}

// RegistrarPago appends a payment and recomputes the balance. Overdue credits
// still accept payments. When the balance reaches zero the credit closes as
// pagado; further payments then fail on the saldo check, since any positive
// amount exceeds a zero balance.
func (c *Credit) RegistrarPago(p *Payment) error {
	if c.status == Canceled {
		return errs.NewInvalidTransitionError("credito", c.status.String(), "registrar_pago")
	}
	saldo := c.Saldo()
	if p.Monto().Cmp(saldo) > 0 {
		return errs.NewInvalidAmountError(
			fmt.Sprintf("monto_pago %s exceeds saldo %s", p.Monto(), saldo))
	}

	c.payments = append(c.payments, p)
	if c.Saldo().IsZero() {
		c.status = Paid
	}
	return nil
}

// Rechazar cancels the credit. Only an active credit with no registered
// payments can be rejected; this is the gate that blocks routing of the
// linked order.
func (c *Credit) Rechazar(motivo string) error {
	if c.status != Active {
		return errs.NewInvalidTransitionError("credito", c.status.String(), "rechazar")
	}
	if len(c.payments) > 0 {
		return errs.NewPreconditionFailedError("pagos",
			"credit with registered payments cannot be rejected")
	}

	c.status = Canceled
	if motivo != "" {
		c.notas = motivo
	}
	return nil
}

// MarkOverdue moves an active credit past its term to vencido. The cron sweep
// calls it after checking IsOverdue.
func (c *Credit) MarkOverdue() error {
	if c.status != Active {
		return errs.NewInvalidTransitionError("credito", c.status.String(), "marcar_vencido")
	}
	c.status = Overdue
	return nil
}
