// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight
// from the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its item lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse is one item line of the order projection. Resolution
// columns are nil until the warehouse has validated the order.
type GetOrderItemResponse struct {
	ID                  kernel.UUID
	SKUCodigo           string
	SKUNombre           string
	CantidadSolicitada  int
	PrecioUnitarioBase  decimal.Decimal
	PrecioUnitarioFinal decimal.Decimal
	RequiereAprobacion  bool
	EstadoResultado     *string
	CantidadAprobada    *int
	SKUAprobadoCodigo   *string
	MotivoResultado     *string
}

// GetOrderQueryResponse is the order projection: header fields plus item
// lines in their insertion order, with the derived total.
type GetOrderQueryResponse struct {
	ID                        kernel.UUID
	Numero                    string
	ClienteID                 kernel.UUID
	MetodoPago                string
	Estado                    string
	FechaEntregaSugerida      time.Time
	RequiereAprobacionCliente bool
	ObservacionesBodega       string
	MotivoCancelacion         string
	MotivoRechazo             string
	Total                     decimal.Decimal
	Items                     []GetOrderItemResponse
}
