package credit

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status is the lifecycle state of a credit.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Active (activo) is the initial state. A credit is created active but
	// unapproved; approval sets the amount and term.
	Active

	// Overdue (vencido) means the term elapsed with a balance outstanding.
	// Payments are still accepted.
	Overdue

	// Paid (pagado) means the balance reached zero. Terminal.
	Paid

	// Canceled (cancelado) means the credit was rejected before any payment.
	// Terminal; blocks routing of the linked order.
	Canceled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "desconocido",
		Active:   "activo",
		Overdue:  "vencido",
		Paid:     "pagado",
		Canceled: "cancelado",
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
		fmt.Errorf("%q is not a valid credit status", s))
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
			fmt.Errorf("%d is not a valid credit status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Canceled
}
