package order

import (
	"pedidos/internal/pkg/errs"
)

// SKURef is a snapshot of a catalog SKU taken at order time. Catalog prices
// and names may change later; the order keeps what the client saw.
type SKURef struct {
	codigo string
	nombre string
}

// NewSKURef creates a SKU snapshot. The code is the stable catalog reference
// and is required; the name is the display snapshot.
func NewSKURef(codigo, nombre string) (SKURef, error) {
	if codigo == "" {
		return SKURef{}, errs.NewValueIsRequiredError("sku_codigo")
	}
	return SKURef{codigo: codigo, nombre: nombre}, nil
}

// Codigo returns the catalog code.
func (s SKURef) Codigo() string {
	return s.codigo
}

// Nombre returns the display name snapshot.
func (s SKURef) Nombre() string {
	return s.nombre
}

// IsEqual compares SKU references by catalog code.
func (s SKURef) IsEqual(other SKURef) bool {
	return s.codigo == other.codigo
}

// Validate rejects the zero value.
func (s SKURef) Validate() error {
	if s.codigo == "" {
		return errs.NewValueIsRequiredError("sku_codigo")
	}
	return nil
}
