package services

import (
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// RouteDispatcher is a domain service responsible for turning a validated
// order into a routed one: it runs the cross-aggregate routing gate and, on
// success, creates the delivery and transitions the order atomically.
//
// Business rules:
//   - The order must be valid and in validado
//   - No item may carry an unresolved promotion discount
//   - A credito order's credit must be approved and not canceled
//   - Delivery creation and the order transition happen together; the caller
//     commits both inside one transaction and re-runs this gate there, so a
//     credit that changed between read and commit fails closed
type RouteDispatcher struct{}

// NewRouteDispatcher creates a new RouteDispatcher instance.
func NewRouteDispatcher() RouteDispatcher {
	return RouteDispatcher{}
}

// Dispatch checks the routing gate and assigns the route. The credit argument
// is nil for contado orders; for credito orders the caller loads the linked
// credit in the same transaction.
//
// Returns the pending delivery created for the order.
func (d RouteDispatcher) Dispatch(
	o *order.Order,
	cr *credit.Credit,
	ruteroLogisticoID kernel.UUID,
	transportistaID kernel.UUID,
	now time.Time,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.NeedsCredit() {
		if cr == nil {
			return nil, errs.NewPreconditionFailedError("credito",
				"credito order has no linked credit record")
		}
		if err := cr.Validate(); err != nil {
			return nil, err
		}
		if !cr.PedidoID().IsEqual(o.ID()) {
			return nil, errs.NewInvalidRequestError("credit is not linked to this order")
		}
		if !cr.AllowsRouting() {
			return nil, errs.NewPreconditionFailedError("credito",
				"linked credit is not approved or was canceled")
		}
	}

	if err := o.AssignRoute(); err != nil {
		return nil, err
	}

	return delivery.NewDelivery(kernel.NewUUID(), o.ID(), ruteroLogisticoID, transportistaID, now)
}
