package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// PaymentMethod is how the client pays for the order. Credit orders get a
// linked credit record at creation time and cannot be routed until that credit
// is resolved.
type PaymentMethod int

const (
	// PaymentUnknown catches uninitialized PaymentMethod values.
	PaymentUnknown PaymentMethod = iota

	// Cash (contado) settles on delivery.
	Cash

	// Credit (credito) opens a credit sub-ledger for the order.
	Credit
)

func paymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Cash:   "contado",
		Credit: "credito",
	}
}

// PaymentMethodFromString parses a wire payment method, rejecting unknown values.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range paymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("metodo_pago",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the Spanish wire value.
func (p PaymentMethod) String() string {
	if s, ok := paymentMethodStrings()[p]; ok {
		return s
	}
	return "desconocido"
}

// Validate rejects PaymentUnknown and out-of-range values.
func (p PaymentMethod) Validate() error {
	if _, ok := paymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("metodo_pago",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}
