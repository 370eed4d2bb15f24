package commands

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/ports"
)

// ReportIncidentCommandHandler files an incident against a delivery. When
// the incident is critica the supervisor notifier fires after a successful
// commit; a slow or failing notifier never rolls back the incident itself.
type ReportIncidentCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.SupervisorNotifier
}

// NewReportIncidentCommandHandler creates a handler for incident reports.
func NewReportIncidentCommandHandler(
	uowFactory DeliveryUoWFactory, notifier ports.SupervisorNotifier,
) ReportIncidentCommandHandler {
	return ReportIncidentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the incident report. Incidents are accepted in any
// delivery state, including terminal ones.
func (h ReportIncidentCommandHandler) Handle(ctx context.Context, cmd ReportIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	incident, err := delivery.NewIncident(
		kernel.NewUUID(), cmd.TipoIncidencia(), cmd.Severidad(),
		cmd.Descripcion(), time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	critical := d.ReportIncident(incident)

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if critical {
		h.notifier.NotifyCriticalIncident(ctx, d.ID(), incident)
	}

	return nil
}
