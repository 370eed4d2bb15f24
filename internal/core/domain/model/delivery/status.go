package delivery

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
// State transitions:
//
//	pendiente ──> en_ruta ──┬──> entregado_completo (terminal)
//	    │           │       ├──> entregado_parcial  (terminal)
//	    │           │       └──> no_entregado       (terminal)
//	    └───────────┴──────────> cancelado          (terminal)
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial state, set when a route is assigned.
	Pending

	// EnRoute means the driver left the warehouse.
	EnRoute

	// CompletedFull is the terminal state of a complete hand-off.
	CompletedFull

	// CompletedPartial is the terminal state of a delivery handed off with a
	// recorded discrepancy. It still closes the order.
	CompletedPartial

	// NotDelivered is the terminal state of a failed attempt. The order is not
	// closed; a supervisor re-routes or cancels it.
	NotDelivered

	// Canceled is the terminal state of a delivery called off before hand-off.
	Canceled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "desconocido",
		Pending:          "pendiente",
		EnRoute:          "en_ruta",
		CompletedFull:    "entregado_completo",
		CompletedPartial: "entregado_parcial",
		NotDelivered:     "no_entregado",
		Canceled:         "cancelado",
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
		fmt.Errorf("%q is not a valid delivery status", s))
}

// String returns the Spanish wire value of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "desconocido"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	switch s {
	case CompletedFull, CompletedPartial, NotDelivered, Canceled:
		return true
	default:
		return false
	}
}

// IsCompleted reports whether the delivery reached a completed terminal state,
// which closes the order.
func (s Status) IsCompleted() bool {
	return s == CompletedFull || s == CompletedPartial
}

// StartRoute transitions Pending to EnRoute.
func (s Status) StartRoute() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("entrega", s.String(), "iniciar_ruta")
	}
	return EnRoute, nil
}

// Complete transitions EnRoute to CompletedFull.
func (s Status) Complete() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidTransitionError("entrega", s.String(), "completar")
	}
	return CompletedFull, nil
}

// CompletePartial transitions EnRoute to CompletedPartial.
func (s Status) CompletePartial() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidTransitionError("entrega", s.String(), "completar_parcial")
	}
	return CompletedPartial, nil
}

// MarkNotDelivered transitions EnRoute to NotDelivered.
func (s Status) MarkNotDelivered() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewInvalidTransitionError("entrega", s.String(), "marcar_no_entregado")
	}
	return NotDelivered, nil
}

// Cancel transitions Pending or EnRoute to Canceled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != EnRoute {
		return 0, errs.NewInvalidTransitionError("entrega", s.String(), "cancelar")
	}
	return Canceled, nil
}
