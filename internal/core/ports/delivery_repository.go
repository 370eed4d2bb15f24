package ports

import (
	"context"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates,
// including their evidence and incident records.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate. Fails with
	// Conflict when the stored version moved since the aggregate was read.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery linked to an order, 1:1.
	GetByOrder(ctx context.Context, pedidoID kernel.UUID) (*delivery.Delivery, error)

	// GetAllActive retrieves deliveries in pendiente or en_ruta.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)
}
