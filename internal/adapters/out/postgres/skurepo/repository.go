// Package skurepo implements the SKU catalog port against the product table.
// The catalog is read-only from this engine's point of view; order items keep
// their own snapshot of code, name and price at order time.
package skurepo

import (
	"context"
	"errors"

	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// SKUDTO is the database row of a catalog product.
type SKUDTO struct {
	Codigo string `gorm:"primaryKey"`
	Nombre string
	Activo bool `gorm:"index"`
}

// TableName maps catalog rows to the "skus" table.
func (SKUDTO) TableName() string {
	return "skus"
}

// GormSKUCatalog implements ports.SKUCatalog using GORM.
type GormSKUCatalog struct {
	db *gorm.DB
}

// NewGormSKUCatalog creates a new GORM SKU catalog.
func NewGormSKUCatalog(db *gorm.DB) *GormSKUCatalog {
	return &GormSKUCatalog{db: db}
}

// Exists reports whether an active SKU with the code is in the catalog.
func (r *GormSKUCatalog) Exists(ctx context.Context, codigo string) (bool, error) {
	if codigo == "" {
		return false, errs.NewValueIsRequiredError("sku_codigo")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&SKUDTO{}).
		Where("codigo = ? AND activo", codigo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Name returns the catalog display name for a SKU code.
func (r *GormSKUCatalog) Name(ctx context.Context, codigo string) (string, error) {
	if codigo == "" {
		return "", errs.NewValueIsRequiredError("sku_codigo")
	}

	var dto SKUDTO
	err := r.db.WithContext(ctx).First(&dto, "codigo = ?", codigo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("sku", codigo)
		}
		return "", err
	}
	return dto.Nombre, nil
}
