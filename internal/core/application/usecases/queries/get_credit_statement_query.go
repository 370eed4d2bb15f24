package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCreditStatementQueryIsNotConstructed = errors.New(
	"GetCreditStatementQuery must be created via NewGetCreditStatementQuery constructor",
)

// GetCreditStatementQuery retrieves a credit with its payment history and
// derived balance.
type GetCreditStatementQuery struct {
	creditID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCreditStatementQuery creates a query for one credit statement.
func NewGetCreditStatementQuery(creditID kernel.UUID) (GetCreditStatementQuery, error) {
	if err := creditID.Validate(); err != nil {
		return GetCreditStatementQuery{}, err
	}

	return GetCreditStatementQuery{
		creditID: creditID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCreditStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetCreditStatementQueryIsNotConstructed)
}

// CreditID returns the requested credit.
func (q GetCreditStatementQuery) CreditID() kernel.UUID {
	return q.creditID
}

// GetCreditStatementPaymentResponse is one payment row, oldest first.
type GetCreditStatementPaymentResponse struct {
	ID         kernel.UUID
	Monto      decimal.Decimal
	FechaPago  time.Time
	Referencia string
	Notas      string
}

// GetCreditStatementQueryResponse is the credit statement: header, payment
// history and the balance derived from them.
type GetCreditStatementQueryResponse struct {
	ID            kernel.UUID
	PedidoID      kernel.UUID
	ClienteID     kernel.UUID
	Estado        string
	MontoAprobado decimal.Decimal
	PlazoDias     int
	AprobadoEn    *time.Time
	Notas         string
	TotalPagado   decimal.Decimal
	Saldo         decimal.Decimal
	Payments      []GetCreditStatementPaymentResponse
}
