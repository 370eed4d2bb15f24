package ports

import (
	"context"
)

// SKUCatalog answers SKU existence checks against the product catalog. Order
// creation and substitution resolutions reject references to unknown SKUs.
type SKUCatalog interface {
	// Exists reports whether a SKU code is present in the catalog.
	Exists(ctx context.Context, codigo string) (bool, error)

	// Name returns the catalog display name for a SKU code, used to snapshot
	// item lines at order time.
	Name(ctx context.Context, codigo string) (string, error)
}
