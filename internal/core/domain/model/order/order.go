package order

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ItemResolution pairs an item id with its proposed warehouse resolution
// inside a validation batch.
type ItemResolution struct {
	ItemID     kernel.UUID
	Resolution Resolution
}

// Order is the aggregate root for the fulfillment lifecycle. It owns its items
// (insertion order is the catalog order presented to the client) and is the
// only writer of their resolution and promotion fields.
//
// Invariants held by this type:
//   - Status transitions follow the lifecycle in Status
//   - A validation batch is all-or-nothing: either every item gets a valid
//     resolution or nothing changes
//   - Items are never removed; orders are never deleted, only transitioned
//     to a terminal state
//   - The total is derived from items, never stored authoritatively
type Order struct {
	id                  kernel.UUID
	numero              string
	clienteID           kernel.UUID
	metodoPago          PaymentMethod
	status              Status
	fechaEntregaSugerida time.Time
	items               []*Item

	requiereAprobacionCliente bool
	bodegueroID               *kernel.UUID
	observacionesBodega       string
	motivoCancelacion         string
	motivoRechazo             string

	version       int
	isConstructed bool
}

// NewOrder creates an order in PendingValidation. Items must already be
// constructed (quantity and price rules run in NewItem); catalog existence of
// each SKU is the caller's responsibility via the catalog port.
func NewOrder(
	id kernel.UUID,
	numero string,
	clienteID kernel.UUID,
	metodoPago PaymentMethod,
	fechaEntregaSugerida time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        PendingValidation,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumero(numero),
		o.setClienteID(clienteID),
		o.setMetodoPago(metodoPago),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.fechaEntregaSugerida = fechaEntregaSugerida
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	numero string,
	clienteID kernel.UUID,
	metodoPago PaymentMethod,
	status Status,
	fechaEntregaSugerida time.Time,
	items []*Item,
	requiereAprobacionCliente bool,
	bodegueroID *kernel.UUID,
	observacionesBodega string,
	motivoCancelacion string,
	motivoRechazo string,
	version int,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setNumero(numero),
		o.setClienteID(clienteID),
		o.setMetodoPago(metodoPago),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.fechaEntregaSugerida = fechaEntregaSugerida
	o.requiereAprobacionCliente = requiereAprobacionCliente
	o.bodegueroID = bodegueroID
	o.observacionesBodega = observacionesBodega
	o.motivoCancelacion = motivoCancelacion
	o.motivoRechazo = motivoRechazo
	o.version = version
	return o, nil
}

// Validate ensures the Order was created through a constructor. Called when
// reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Numero returns the display code shown to the client.
func (o *Order) Numero() string { return o.numero }

// ClienteID returns the ordering client's identifier.
func (o *Order) ClienteID() kernel.UUID { return o.clienteID }

// MetodoPago returns the payment method.
func (o *Order) MetodoPago() PaymentMethod { return o.metodoPago }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// FechaEntregaSugerida returns the client's suggested delivery date.
func (o *Order) FechaEntregaSugerida() time.Time { return o.fechaEntregaSugerida }

// Items returns the order lines in catalog presentation order.
func (o *Order) Items() []*Item { return o.items }

// RequiereAprobacionCliente reports whether warehouse adjustments await the
// client's acknowledgment.
func (o *Order) RequiereAprobacionCliente() bool { return o.requiereAprobacionCliente }

// BodegueroID returns the warehouse validator's identifier, nil before validation.
func (o *Order) BodegueroID() *kernel.UUID { return o.bodegueroID }

// ObservacionesBodega returns the warehouse validator's notes.
func (o *Order) ObservacionesBodega() string { return o.observacionesBodega }

// MotivoCancelacion returns the cancellation motive, empty unless Canceled.
func (o *Order) MotivoCancelacion() string { return o.motivoCancelacion }

// MotivoRechazo returns the client's rejection motive, empty unless ClientRejected.
func (o *Order) MotivoRechazo() string { return o.motivoRechazo }

// Version returns the optimistic-lock version restored from persistence.
func (o *Order) Version() int { return o.version }

// NeedsCredit reports whether the order depends on a credit record.
func (o *Order) NeedsCredit() bool { return o.metodoPago == Credit }

// Item returns the owned item with the given id, or an ObjectNotFound error.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
}

// Total recomputes the derived order total from its items:
// sum of precio_unitario_final times the approved (or requested) quantity.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// HasUnresolvedPromotions reports whether any item still gates route assignment.
func (o *Order) HasUnresolvedPromotions() bool {
	for _, item := range o.items {
		if item.HasUnresolvedPromotion() {
			return true
		}
	}
	return false
}

// ApplyValidation runs the central warehouse validation batch.
//
// The batch is all-or-nothing: resolutions must cover every item exactly once,
// and every resolution must pass the quantity/SKU table. The first violation
// aborts with no state change. On success the order lands on Validated when
// every item got a full approval, otherwise on WarehouseAdjusted with
// requiere_aprobacion_cliente set.
func (o *Order) ApplyValidation(
	bodegueroID kernel.UUID,
	observaciones string,
	resolutions []ItemResolution,
) error {
	if err := bodegueroID.Validate(); err != nil {
		return err
	}
	if o.status != PendingValidation {
		return errs.NewInvalidTransitionError("pedido", o.status.String(), "validar")
	}

	byItem := make(map[string]Resolution, len(resolutions))
	var unknown []string
	for _, ir := range resolutions {
		key := ir.ItemID.String()
		if _, dup := byItem[key]; dup {
			return errs.NewInvalidRequestError(fmt.Sprintf("duplicate resolution for item %s", key))
		}
		if _, err := o.Item(ir.ItemID); err != nil {
			unknown = append(unknown, key)
			continue
		}
		byItem[key] = ir.Resolution
	}

	var missing []string
	for _, item := range o.items {
		if _, ok := byItem[item.ID().String()]; !ok {
			missing = append(missing, item.ID().String())
		}
	}
	if len(missing) > 0 || len(unknown) > 0 {
		return errs.NewIncompleteValidationError(missing, unknown)
	}

	// First pass: validate everything before mutating anything.
	fullyApproved := true
	for _, item := range o.items {
		res := byItem[item.ID().String()]
		if reason, ok := res.ValidateAgainst(item.CantidadSolicitada(), item.SKU()); !ok {
			return errs.NewInvalidItemResolutionError(item.ID().String(), reason)
		}
		if !res.IsFullApproval(item.CantidadSolicitada()) {
			fullyApproved = false
		}
	}

	newStatus, err := o.status.ApplyValidation(fullyApproved)
	if err != nil {
		return err
	}

	// Second pass: commit the batch.
	for _, item := range o.items {
		item.applyResolution(byItem[item.ID().String()])
	}
	o.status = newStatus
	o.requiereAprobacionCliente = !fullyApproved
	o.bodegueroID = &bodegueroID
	o.observacionesBodega = observaciones
	return nil
}

// AcceptAdjustments records the client's acknowledgment of warehouse
// adjustments. The order passes through aceptado_cliente and lands on
// Validated with the adjusted quantities confirmed.
func (o *Order) AcceptAdjustments() error {
	newStatus, err := o.status.AcceptAdjustments()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.requiereAprobacionCliente = false
	return nil
}

// RejectAdjustments moves the order to the terminal ClientRejected state.
// Nothing is shipped.
func (o *Order) RejectAdjustments(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo")
	}
	newStatus, err := o.status.RejectAdjustments()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.motivoRechazo = motivo
	return nil
}

// AssignRoute transitions Validated to RouteAssigned. Fails with
// PreconditionFailed while any promotion discount is unresolved; the credit
// gate is cross-aggregate and is re-checked transactionally by the caller.
func (o *Order) AssignRoute() error {
	if o.HasUnresolvedPromotions() {
		return errs.NewPreconditionFailedError("promociones",
			"order has discounted items awaiting supervisor approval")
	}
	newStatus, err := o.status.AssignRoute()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartRoute mirrors the delivery's departure on the order.
func (o *Order) StartRoute() error {
	newStatus, err := o.status.StartRoute()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered is the derived transition fired when the delivery reaches a
// completed terminal state (full or partial).
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkNotDelivered records a failed delivery attempt: the order drops back to
// RouteAssigned and waits for a supervisor to re-route or cancel it.
func (o *Order) MarkNotDelivered() error {
	newStatus, err := o.status.MarkNotDelivered()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves a pre-departure order to Canceled. Once EnRoute the
// cancellation must come through the delivery state machine.
func (o *Order) Cancel(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo")
	}
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.motivoCancelacion = motivo
	return nil
}

// CancelFromDelivery cascades a delivery cancellation onto the order record.
func (o *Order) CancelFromDelivery(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo")
	}
	newStatus, err := o.status.CancelFromDelivery()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.motivoCancelacion = motivo
	return nil
}

// ApprovePromotions stamps the approval time on every discounted item.
// Idempotent: re-invoking on an already approved set is a no-op.
func (o *Order) ApprovePromotions(now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("pedido", o.status.String(), "aprobar_promociones")
	}
	for _, item := range o.items {
		item.approvePromotion(now)
	}
	return nil
}

// RejectPromotions removes the discount from every qualifying item: the final
// price snaps back to the base price and the approval requirement clears. The
// order total is derived, so it reflects the correction immediately.
// Warehouse resolutions are never touched.
func (o *Order) RejectPromotions() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("pedido", o.status.String(), "rechazar_promociones")
	}
	for _, item := range o.items {
		item.rejectPromotion()
	}
	return nil
}

// ApprovePromotionItem is the per-item variant of ApprovePromotions.
func (o *Order) ApprovePromotionItem(itemID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("pedido", o.status.String(), "aprobar_promociones")
	}
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	item.approvePromotion(now)
	return nil
}

// RejectPromotionItem is the per-item variant of RejectPromotions.
func (o *Order) RejectPromotionItem(itemID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("pedido", o.status.String(), "rechazar_promociones")
	}
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	item.rejectPromotion()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumero(numero string) error {
	if numero == "" {
		return errs.NewValueIsRequiredError("numero_pedido")
	}
	o.numero = numero
	return nil
}

func (o *Order) setClienteID(clienteID kernel.UUID) error {
	if err := clienteID.Validate(); err != nil {
		return err
	}
	o.clienteID = clienteID
	return nil
}

func (o *Order) setMetodoPago(metodoPago PaymentMethod) error {
	if err := metodoPago.Validate(); err != nil {
		return err
	}
	o.metodoPago = metodoPago
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}
