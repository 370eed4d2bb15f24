package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pendiente_validacion ──┬──> validado ──> asignado_ruta ──> en_ruta ──> entregado
//	                       │        ^
//	                       └──> ajustado_bodega ──┬──> aceptado_cliente ──> validado
//	                                              └──> rechazado_cliente (terminal)
//
//	cancelado is reachable from every state before en_ruta; once en_ruta,
//	cancellation goes through the delivery state machine, which cascades back.
//
// Status validates its own transitions; the wire representation is the Spanish
// value used by the callers of this engine.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// PendingValidation is the initial state: awaiting warehouse validation.
	PendingValidation

	// WarehouseAdjusted means the warehouse changed quantities or substituted
	// SKUs and the client must acknowledge before the order proceeds.
	WarehouseAdjusted

	// ClientAccepted records the client's acknowledgment of adjustments.
	// It is a pass-through state: accepting adjustments lands on Validated.
	ClientAccepted

	// Validated means every item has an accepted resolution and the order can
	// be routed.
	Validated

	// RouteAssigned means a delivery was created for the order.
	RouteAssigned

	// EnRoute means the delivery left the warehouse.
	EnRoute

	// Delivered is the terminal success state, derived from delivery completion.
	Delivered

	// Canceled is a terminal state reachable before departure, or cascaded
	// from a delivery cancellation.
	Canceled

	// ClientRejected is the terminal state after the client refuses warehouse
	// adjustments. Nothing is shipped.
	ClientRejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "desconocido",
		PendingValidation: "pendiente_validacion",
		WarehouseAdjusted: "ajustado_bodega",
		ClientAccepted:    "aceptado_cliente",
		Validated:         "validado",
		RouteAssigned:     "asignado_ruta",
		EnRoute:           "en_ruta",
		Delivered:         "entregado",
		Canceled:          "cancelado",
		ClientRejected:    "rechazado_cliente",
	}
}

func validStatusStrings() map[Status]string {
	valid := statusStrings()
	delete(valid, Unknown)
	return valid
}

// StatusFromString parses a wire status value, rejecting unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("estado",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the Spanish wire value of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "desconocido"
}

// Validate rejects Unknown and out-of-range values. Used when reconstructing
// orders from persistence.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled || s == ClientRejected
}

// ApplyValidation transitions out of PendingValidation after a complete
// resolution batch. A fully approved batch lands on Validated; any adjustment
// requires client acknowledgment and lands on WarehouseAdjusted.
func (s Status) ApplyValidation(fullyApproved bool) (Status, error) {
	if s != PendingValidation {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "validar")
	}
	if fullyApproved {
		return Validated, nil
	}
	return WarehouseAdjusted, nil
}

// AcceptAdjustments transitions WarehouseAdjusted to Validated. The
// ClientAccepted state is passed through, not persisted.
func (s Status) AcceptAdjustments() (Status, error) {
	if s != WarehouseAdjusted {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "aceptar_ajustes")
	}
	return Validated, nil
}

// RejectAdjustments transitions WarehouseAdjusted to the terminal ClientRejected.
func (s Status) RejectAdjustments() (Status, error) {
	if s != WarehouseAdjusted {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "rechazar_ajustes")
	}
	return ClientRejected, nil
}

// AssignRoute transitions Validated to RouteAssigned.
func (s Status) AssignRoute() (Status, error) {
	if s != Validated {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "asignar_ruta")
	}
	return RouteAssigned, nil
}

// StartRoute transitions RouteAssigned to EnRoute when the delivery departs.
func (s Status) StartRoute() (Status, error) {
	if s != RouteAssigned {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "iniciar_ruta")
	}
	return EnRoute, nil
}

// MarkDelivered transitions EnRoute to the terminal Delivered state. This is a
// derived transition fired by the delivery reaching a completed terminal state.
func (s Status) MarkDelivered() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "entregar")
	}
	return Delivered, nil
}

// MarkNotDelivered reverts EnRoute to RouteAssigned when the delivery closes
// as no_entregado. The order is not completed and not canceled: it awaits a
// manual re-route or cancellation by a supervisor.
func (s Status) MarkNotDelivered() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "no_entregado")
	}
	return RouteAssigned, nil
}

// Cancel transitions any pre-EnRoute state to Canceled. Once the order is
// EnRoute the cancellation must come through the delivery state machine.
func (s Status) Cancel() (Status, error) {
	switch s {
	case PendingValidation, WarehouseAdjusted, ClientAccepted, Validated, RouteAssigned:
		return Canceled, nil
	default:
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "cancelar")
	}
}

// CancelFromDelivery transitions RouteAssigned or EnRoute to Canceled. Used
// only by the delivery cancellation cascade.
func (s Status) CancelFromDelivery() (Status, error) {
	if s != RouteAssigned && s != EnRoute {
		return 0, errs.NewInvalidTransitionError("pedido", s.String(), "cancelar_entrega")
	}
	return Canceled, nil
}
