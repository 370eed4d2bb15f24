package credit_test

import (
	"testing"
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approvedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestCredit(t *testing.T) *credit.Credit {
	t.Helper()
	c, err := credit.NewCredit(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func approvedCredit(t *testing.T, monto string, plazoDias int) *credit.Credit {
	t.Helper()
	c := newTestCredit(t)
	require.NoError(t, c.Aprobar(mustMoney(t, monto), plazoDias, "", approvedAt))
	return c
}

func newPayment(t *testing.T, monto string) *credit.Payment {
	t.Helper()
	p, err := credit.NewPayment(kernel.NewUUID(), mustMoney(t, monto),
		approvedAt.AddDate(0, 0, 5), "TRX-001", "")
	require.NoError(t, err)
	return p
}

func TestNewCredit(t *testing.T) {
	t.Run("should open active and unapproved with zero balance", func(t *testing.T) {
		c := newTestCredit(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, credit.Active, c.Status())
		assert.False(t, c.IsApproved())
		assert.True(t, c.MontoAprobado().IsZero())
		assert.True(t, c.Saldo().IsZero())
		assert.Nil(t, c.DueDate())
		assert.False(t, c.AllowsRouting(), "unapproved credit blocks routing")
	})

	t.Run("zero value should fail Validate", func(t *testing.T) {
		var c credit.Credit
		assert.Equal(t, credit.ErrCreditIsNotConstructed, c.Validate())
	})
}

func TestCredit_Aprobar(t *testing.T) {
	t.Run("should set amount, term and timestamp", func(t *testing.T) {
		c := newTestCredit(t)

		err := c.Aprobar(mustMoney(t, "100"), 30, "cliente frecuente", approvedAt)

		require.NoError(t, err)
		assert.True(t, c.IsApproved())
		assert.Equal(t, "100", c.MontoAprobado().String())
		assert.Equal(t, 30, c.PlazoDias())
		assert.Equal(t, "cliente frecuente", c.Notas())
		assert.Equal(t, "100", c.Saldo().String())
		require.NotNil(t, c.DueDate())
		assert.Equal(t, approvedAt.AddDate(0, 0, 30), *c.DueDate())
		assert.True(t, c.AllowsRouting())
	})

	t.Run("second approval fails with DuplicateCredit", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)

		err := c.Aprobar(mustMoney(t, "200"), 60, "", approvedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.DuplicateCreditError{}, err)
		assert.Equal(t, "100", c.MontoAprobado().String(), "first approval is preserved")
	})

	t.Run("should reject non-positive amounts and terms", func(t *testing.T) {
		c := newTestCredit(t)

		err := c.Aprobar(kernel.ZeroMoney(), 30, "", approvedAt)
		require.Error(t, err)
		assert.IsType(t, &errs.InvalidAmountError{}, err)

		err = c.Aprobar(mustMoney(t, "100"), 0, "", approvedAt)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	})

	t.Run("should not approve a canceled credit", func(t *testing.T) {
		c := newTestCredit(t)
		require.NoError(t, c.Rechazar("sin historial"))

		err := c.Aprobar(mustMoney(t, "100"), 30, "", approvedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestCredit_RegistrarPago(t *testing.T) {
	t.Run("payments reduce the balance until pagado", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)

		require.NoError(t, c.RegistrarPago(newPayment(t, "60")))
		assert.Equal(t, "40", c.Saldo().String())
		assert.Equal(t, credit.Active, c.Status())

		require.NoError(t, c.RegistrarPago(newPayment(t, "40")))
		assert.True(t, c.Saldo().IsZero())
		assert.Equal(t, credit.Paid, c.Status())
		assert.Len(t, c.Payments(), 2)
	})

	t.Run("payment on a paid credit fails with InvalidAmount", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)
		require.NoError(t, c.RegistrarPago(newPayment(t, "60")))
		require.NoError(t, c.RegistrarPago(newPayment(t, "40")))
		require.Equal(t, credit.Paid, c.Status())

		err := c.RegistrarPago(newPayment(t, "1"))

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidAmountError{}, err)
		assert.Contains(t, err.Error(), "monto_pago 1 exceeds saldo 0")
		assert.Len(t, c.Payments(), 2)
	})

	t.Run("payment on a canceled credit fails with InvalidTransition", func(t *testing.T) {
		c := newTestCredit(t)
		require.NoError(t, c.Rechazar("sin historial"))

		err := c.RegistrarPago(newPayment(t, "1"))

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})

	t.Run("payment exceeding the balance fails with InvalidAmount", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)
		require.NoError(t, c.RegistrarPago(newPayment(t, "60")))

		err := c.RegistrarPago(newPayment(t, "50"))

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidAmountError{}, err)
		assert.Contains(t, err.Error(), "monto_pago 50 exceeds saldo 40")
		assert.Equal(t, "40", c.Saldo().String())
		assert.Len(t, c.Payments(), 1)
	})

	t.Run("non-positive payment amounts are rejected at construction", func(t *testing.T) {
		_, err := credit.NewPayment(kernel.NewUUID(), kernel.ZeroMoney(),
			approvedAt, "", "")

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidAmountError{}, err)
	})

	t.Run("unapproved credit rejects any payment", func(t *testing.T) {
		c := newTestCredit(t)

		err := c.RegistrarPago(newPayment(t, "1"))

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidAmountError{}, err)
		assert.Contains(t, err.Error(), "exceeds saldo 0")
	})

	t.Run("overdue credit still accepts payments", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)
		require.NoError(t, c.MarkOverdue())

		require.NoError(t, c.RegistrarPago(newPayment(t, "100")))

		assert.Equal(t, credit.Paid, c.Status())
	})
}

func TestCredit_Rechazar(t *testing.T) {
	t.Run("rejecting an unapproved credit cancels it and blocks routing", func(t *testing.T) {
		c := newTestCredit(t)

		err := c.Rechazar("sin historial crediticio")

		require.NoError(t, err)
		assert.Equal(t, credit.Canceled, c.Status())
		assert.Equal(t, "sin historial crediticio", c.Notas())
		assert.False(t, c.AllowsRouting())
		assert.True(t, c.Status().IsTerminal())
	})

	t.Run("rejecting after a payment fails", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)
		require.NoError(t, c.RegistrarPago(newPayment(t, "10")))

		err := c.Rechazar("tarde")

		require.Error(t, err)
		assert.IsType(t, &errs.PreconditionFailedError{}, err)
		assert.Equal(t, credit.Active, c.Status())
	})

	t.Run("rejecting a paid credit fails", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)
		require.NoError(t, c.RegistrarPago(newPayment(t, "100")))

		err := c.Rechazar("tarde")

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestCredit_Overdue(t *testing.T) {
	t.Run("IsOverdue flips once the term elapses", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)

		assert.False(t, c.IsOverdue(approvedAt.AddDate(0, 0, 29)))
		assert.False(t, c.IsOverdue(approvedAt.AddDate(0, 0, 30)))
		assert.True(t, c.IsOverdue(approvedAt.AddDate(0, 0, 31)))
	})

	t.Run("unapproved credits are never overdue", func(t *testing.T) {
		c := newTestCredit(t)
		assert.False(t, c.IsOverdue(approvedAt.AddDate(1, 0, 0)))
	})

	t.Run("MarkOverdue moves activo to vencido", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)

		require.NoError(t, c.MarkOverdue())

		assert.Equal(t, credit.Overdue, c.Status())
		assert.True(t, c.AllowsRouting(), "vencido does not block routing")
	})

	t.Run("MarkOverdue fails outside activo", func(t *testing.T) {
		c := approvedCredit(t, "100", 30)
		require.NoError(t, c.MarkOverdue())

		require.Error(t, c.MarkOverdue())
	})
}

func TestRestoreCredit(t *testing.T) {
	t.Run("should rebuild a credit mid-ledger", func(t *testing.T) {
		payment := newPayment(t, "60")

		c, err := credit.RestoreCredit(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "100"), 30, credit.Active, &approvedAt, "",
			[]*credit.Payment{payment}, 3,
		)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "40", c.Saldo().String())
		assert.Equal(t, 3, c.Version())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		_, err := credit.RestoreCredit(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.ZeroMoney(), 0, credit.Unknown, nil, "", nil, 0,
		)

		require.Error(t, err)
	})
}
