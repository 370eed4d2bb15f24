package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ResolutionStatus is the outcome the warehouse assigns to a single order item.
type ResolutionStatus int

const (
	// ResolutionUnknown catches uninitialized ResolutionStatus values.
	ResolutionUnknown ResolutionStatus = iota

	// Approved grants the item at up to the requested quantity.
	Approved

	// PartiallyApproved grants strictly less than the requested quantity.
	// Granting the full quantity must use Approved instead.
	PartiallyApproved

	// Substituted grants a different SKU in place of the requested one.
	Substituted

	// Rejected grants nothing.
	Rejected
)

func resolutionStatusStrings() map[ResolutionStatus]string {
	return map[ResolutionStatus]string{
		Approved:          "aprobado",
		PartiallyApproved: "aprobado_parcial",
		Substituted:       "sustituido",
		Rejected:          "rechazado",
	}
}

// ResolutionStatusFromString parses a wire resolution value, rejecting unknown values.
func ResolutionStatusFromString(s string) (ResolutionStatus, error) {
	for status, str := range resolutionStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ResolutionUnknown, errs.NewValueIsInvalidErrorWithCause("estado_resultado",
		fmt.Errorf("%q is not a valid resolution status", s))
}

// String returns the Spanish wire value.
func (r ResolutionStatus) String() string {
	if s, ok := resolutionStatusStrings()[r]; ok {
		return s
	}
	return "desconocido"
}

// Validate rejects ResolutionUnknown and out-of-range values.
func (r ResolutionStatus) Validate() error {
	if _, ok := resolutionStatusStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado_resultado",
			fmt.Errorf("%d is not a valid resolution status", r))
	}
	return nil
}

// Resolution is the warehouse's proposed outcome for one item: the result
// status, the granted quantity, the substitute SKU when applicable, and the
// mandatory free-text motive.
//
// Resolution is the single place where the quantity rules live:
//
//	aprobado          0 < cantidad_aprobada <= solicitada
//	aprobado_parcial  0 < cantidad_aprobada <  solicitada (strictly less)
//	sustituido        0 < cantidad_aprobada <= solicitada, distinct valid SKU
//	rechazado         cantidad_aprobada == 0
//
// "You cannot approve more than was asked for" and "partial approval is not
// silently equal to full approval" both hold here for the lifetime of the order.
type Resolution struct { //nolint:recvcheck //using for validation
	status           ResolutionStatus
	cantidadAprobada int
	skuAprobado      *SKURef
	motivo           string

	guard guard.ConstructorGuard
}

// ErrResolutionIsNotConstructed is returned when a Resolution was not created
// via NewResolution.
var ErrResolutionIsNotConstructed = errs.NewValueIsRequiredError(
	"Resolution must be created via NewResolution")

// NewResolution creates a resolution proposal. Structural rules (valid status,
// required motive, substitute SKU presence) are checked here; quantity rules
// need the item's requested amount and are checked by ValidateAgainst.
func NewResolution(
	status ResolutionStatus,
	cantidadAprobada int,
	skuAprobado *SKURef,
	motivo string,
) (Resolution, error) {
	if err := status.Validate(); err != nil {
		return Resolution{}, err
	}
	if motivo == "" {
		return Resolution{}, errs.NewValueIsRequiredError("motivo")
	}
	if status == Substituted && skuAprobado == nil {
		return Resolution{}, errs.NewValueIsRequiredError("sku_aprobado_id")
	}
	if skuAprobado != nil {
		if err := skuAprobado.Validate(); err != nil {
			return Resolution{}, err
		}
	}
	if cantidadAprobada < 0 {
		return Resolution{}, errs.NewValueIsInvalidErrorWithCause("cantidad_aprobada",
			fmt.Errorf("%d is negative", cantidadAprobada))
	}

	return Resolution{
		status:           status,
		cantidadAprobada: cantidadAprobada,
		skuAprobado:      skuAprobado,
		motivo:           motivo,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the resolution was created via NewResolution.
func (r Resolution) Validate() error {
	return r.guard.Validate(ErrResolutionIsNotConstructed)
}

// Status returns the resolution outcome.
func (r Resolution) Status() ResolutionStatus {
	return r.status
}

// CantidadAprobada returns the granted quantity (0 for rejections).
func (r Resolution) CantidadAprobada() int {
	return r.cantidadAprobada
}

// SKUAprobado returns the substitute SKU, or nil when not a substitution.
func (r Resolution) SKUAprobado() *SKURef {
	return r.skuAprobado
}

// Motivo returns the mandatory free-text motive.
func (r Resolution) Motivo() string {
	return r.motivo
}

// IsFullApproval reports whether the resolution approves the full requested
// quantity with no substitution. Orders whose every item has a full approval
// skip the client-acknowledgment branch.
func (r Resolution) IsFullApproval(cantidadSolicitada int) bool {
	return r.status == Approved && r.cantidadAprobada == cantidadSolicitada
}

// ValidateAgainst checks the quantity/SKU rules for an item requesting
// cantidadSolicitada of the given SKU. The returned reason is carried inside
// InvalidItemResolution by the caller; this function is pure.
func (r Resolution) ValidateAgainst(cantidadSolicitada int, requested SKURef) (string, bool) {
	if err := r.Validate(); err != nil {
		return err.Error(), false
	}

	switch r.status {
	case Approved:
		if r.cantidadAprobada <= 0 || r.cantidadAprobada > cantidadSolicitada {
			return fmt.Sprintf("cantidad_aprobada %d must be in (0, %d] for aprobado",
				r.cantidadAprobada, cantidadSolicitada), false
		}
	case PartiallyApproved:
		if r.cantidadAprobada <= 0 || r.cantidadAprobada >= cantidadSolicitada {
			return fmt.Sprintf("cantidad_aprobada %d must be in (0, %d) for aprobado_parcial; "+
				"granting the full quantity must use aprobado", r.cantidadAprobada, cantidadSolicitada), false
		}
	case Substituted:
		if r.cantidadAprobada <= 0 || r.cantidadAprobada > cantidadSolicitada {
			return fmt.Sprintf("cantidad_aprobada %d must be in (0, %d] for sustituido",
				r.cantidadAprobada, cantidadSolicitada), false
		}
		if r.skuAprobado == nil {
			return "sku_aprobado_id is required for sustituido", false
		}
		if r.skuAprobado.IsEqual(requested) {
			return "sku_aprobado_id must differ from the requested SKU", false
		}
	case Rejected:
		if r.cantidadAprobada != 0 {
			return fmt.Sprintf("cantidad_aprobada must be 0 or absent for rechazado, got %d",
				r.cantidadAprobada), false
		}
	default:
		return fmt.Sprintf("%d is not a valid resolution status", r.status), false
	}

	return "", true
}
