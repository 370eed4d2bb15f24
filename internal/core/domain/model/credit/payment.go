package credit

import (
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Payment is an append-only entry in a credit's payment list. Once registered
// it is never edited or removed; the balance is always recomputed from the
// full list.
type Payment struct {
	id         kernel.UUID
	monto      kernel.Money
	fechaPago  time.Time
	referencia string
	notas      string
}

// NewPayment creates a payment entry. The amount must be strictly positive;
// the upper bound against the outstanding balance is checked by the credit.
func NewPayment(
	id kernel.UUID,
	monto kernel.Money,
	fechaPago time.Time,
	referencia string,
	notas string,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !monto.IsPositive() {
		return nil, errs.NewInvalidAmountError(
			fmt.Sprintf("monto_pago %s must be greater than 0", monto))
	}

	return &Payment{
		id:         id,
		monto:      monto,
		fechaPago:  fechaPago,
		referencia: referencia,
		notas:      notas,
	}, nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// Monto returns the paid amount.
func (p *Payment) Monto() kernel.Money { return p.monto }

// FechaPago returns the payment date.
func (p *Payment) FechaPago() time.Time { return p.fechaPago }

// Referencia returns the external payment reference, possibly empty.
func (p *Payment) Referencia() string { return p.referencia }

// Notas returns free-text notes.
func (p *Payment) Notas() string { return p.notas }
