// Package notifier implements the supervisor notification port. The current
// adapter writes structured log records; swapping in a pager or messaging
// integration only requires another implementation of the same port.
package notifier

import (
	"context"
	"log/slog"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
)

// SlogSupervisorNotifier emits critical-incident notifications to the
// structured log. Notification is fire-and-forget by contract: there is no
// error to return and nothing here can roll back the incident.
type SlogSupervisorNotifier struct {
	logger *slog.Logger
}

// NewSlogSupervisorNotifier creates a log-backed supervisor notifier.
func NewSlogSupervisorNotifier(logger *slog.Logger) *SlogSupervisorNotifier {
	return &SlogSupervisorNotifier{
		logger: logger.With("component", "supervisor_notifier"),
	}
}

// NotifyCriticalIncident records a critical incident for supervisor attention.
func (n *SlogSupervisorNotifier) NotifyCriticalIncident(
	ctx context.Context, deliveryID kernel.UUID, incident *delivery.Incident,
) {
	n.logger.WarnContext(ctx, "Critical incident reported",
		"entrega_id", deliveryID.String(),
		"incidencia_id", incident.ID().String(),
		"tipo_incidencia", incident.TipoIncidencia(),
		"descripcion", incident.Descripcion(),
		"reportado_en", incident.ReportadoEn(),
	)
}
