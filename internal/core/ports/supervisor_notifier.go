package ports

import (
	"context"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
)

// SupervisorNotifier consumes critical-incident events. Notification is
// fire-and-forget: a failed or slow notifier must never block or roll back
// the state transition that triggered it.
type SupervisorNotifier interface {
	NotifyCriticalIncident(ctx context.Context, deliveryID kernel.UUID, incident *delivery.Incident)
}
