package order

import (
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Item is a single order line, exclusively owned by its parent Order. The
// requested quantity and SKU snapshot are immutable once set; resolution
// fields are written exactly once, during warehouse validation.
type Item struct {
	id                 kernel.UUID
	sku                SKURef
	cantidadSolicitada int
	precioBase         kernel.Money
	precioFinal        kernel.Money
	requiereAprobacion bool
	aprobadoEn         *time.Time
	resolution         *Resolution
}

// NewItem creates an order line. The promotion-approval flag is derived: a
// final price below the base price means a discount was applied and a
// supervisor must approve it before the order can be routed.
func NewItem(
	id kernel.UUID,
	sku SKURef,
	cantidadSolicitada int,
	precioBase kernel.Money,
	precioFinal kernel.Money,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := sku.Validate(); err != nil {
		return nil, err
	}
	if cantidadSolicitada <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("cantidad_solicitada",
			fmt.Errorf("%d is not greater than 0", cantidadSolicitada))
	}
	if precioFinal.Cmp(precioBase) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("precio_unitario_final",
			fmt.Errorf("%s exceeds base price %s", precioFinal, precioBase))
	}

	return &Item{
		id:                 id,
		sku:                sku,
		cantidadSolicitada: cantidadSolicitada,
		precioBase:         precioBase,
		precioFinal:        precioFinal,
		requiereAprobacion: precioFinal.Cmp(precioBase) < 0,
	}, nil
}

// RestoreItem reconstructs an item from persistence without re-deriving the
// promotion flag; stored state is authoritative.
func RestoreItem(
	id kernel.UUID,
	sku SKURef,
	cantidadSolicitada int,
	precioBase kernel.Money,
	precioFinal kernel.Money,
	requiereAprobacion bool,
	aprobadoEn *time.Time,
	resolution *Resolution,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := sku.Validate(); err != nil {
		return nil, err
	}
	if cantidadSolicitada <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("cantidad_solicitada",
			fmt.Errorf("%d is not greater than 0", cantidadSolicitada))
	}
	if resolution != nil {
		if err := resolution.Validate(); err != nil {
			return nil, err
		}
	}

	return &Item{
		id:                 id,
		sku:                sku,
		cantidadSolicitada: cantidadSolicitada,
		precioBase:         precioBase,
		precioFinal:        precioFinal,
		requiereAprobacion: requiereAprobacion,
		aprobadoEn:         aprobadoEn,
		resolution:         resolution,
	}, nil
}

// ID returns the item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the catalog snapshot taken at order time.
func (i *Item) SKU() SKURef {
	return i.sku
}

// CantidadSolicitada returns the immutable requested quantity.
func (i *Item) CantidadSolicitada() int {
	return i.cantidadSolicitada
}

// PrecioBase returns the undiscounted unit price.
func (i *Item) PrecioBase() kernel.Money {
	return i.precioBase
}

// PrecioFinal returns the effective unit price after promotions.
func (i *Item) PrecioFinal() kernel.Money {
	return i.precioFinal
}

// RequiereAprobacion reports whether a promotion discount is awaiting
// supervisor approval.
func (i *Item) RequiereAprobacion() bool {
	return i.requiereAprobacion
}

// AprobadoEn returns the promotion approval timestamp, nil while unresolved.
func (i *Item) AprobadoEn() *time.Time {
	return i.aprobadoEn
}

// Resolution returns the warehouse resolution, nil until validation ran.
func (i *Item) Resolution() *Resolution {
	return i.resolution
}

// HasUnresolvedPromotion reports whether the item still gates route assignment.
func (i *Item) HasUnresolvedPromotion() bool {
	return i.requiereAprobacion && i.aprobadoEn == nil
}

// applyResolution records the warehouse outcome. The caller (the order's
// validation batch) has already run the quantity/SKU rules.
func (i *Item) applyResolution(r Resolution) {
	i.resolution = &r
}

// approvePromotion stamps the approval time. Re-approving is a no-op so the
// reconciliation operation stays idempotent.
func (i *Item) approvePromotion(now time.Time) {
	if !i.requiereAprobacion || i.aprobadoEn != nil {
		return
	}
	i.aprobadoEn = &now
}

// rejectPromotion removes the discount: the final price snaps back to the base
// price and the approval requirement clears. The warehouse resolution is left
// untouched; this is a price correction, not a quantity mutation.
func (i *Item) rejectPromotion() {
	if !i.requiereAprobacion {
		return
	}
	i.precioFinal = i.precioBase
	i.requiereAprobacion = false
	i.aprobadoEn = nil
}

// effectiveQuantity is the approved quantity once a resolution exists,
// otherwise the requested quantity.
func (i *Item) effectiveQuantity() int {
	if i.resolution != nil {
		return i.resolution.CantidadAprobada()
	}
	return i.cantidadSolicitada
}

// LineTotal returns precio_unitario_final times the effective quantity.
// Rejected items contribute zero.
func (i *Item) LineTotal() kernel.Money {
	return i.precioFinal.MulInt(i.effectiveQuantity())
}
