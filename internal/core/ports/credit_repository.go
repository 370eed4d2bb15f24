package ports

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/kernel"
)

// CreditRepository defines the persistence contract for credit aggregates and
// their payment lists.
type CreditRepository interface {
	// Add persists a new credit aggregate.
	Add(ctx context.Context, aggregate *credit.Credit) error

	// Update persists changes to an existing credit aggregate. Fails with
	// Conflict when the stored version moved since the aggregate was read.
	Update(ctx context.Context, aggregate *credit.Credit) error

	// Get retrieves a credit aggregate by identifier.
	Get(ctx context.Context, id kernel.UUID) (*credit.Credit, error)

	// GetByOrder retrieves the credit linked to an order, if any. Returns an
	// ObjectNotFound error when the order has no credit.
	GetByOrder(ctx context.Context, pedidoID kernel.UUID) (*credit.Credit, error)

	// GetAllOverdueCandidates retrieves active approved credits whose due date
	// passed, for the overdue sweep.
	GetAllOverdueCandidates(ctx context.Context, now time.Time) ([]*credit.Credit, error)
}
