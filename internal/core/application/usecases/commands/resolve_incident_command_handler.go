package commands

import (
	"context"
	"time"
)

// ResolveIncidentCommandHandler closes an open incident on a delivery.
type ResolveIncidentCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewResolveIncidentCommandHandler creates a handler for incident resolution.
func NewResolveIncidentCommandHandler(uowFactory DeliveryUoWFactory) ResolveIncidentCommandHandler {
	return ResolveIncidentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution. The aggregate stamps resuelto_en and the
// resolution text together, exactly once.
func (h ResolveIncidentCommandHandler) Handle(ctx context.Context, cmd ResolveIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = d.ResolveIncident(cmd.IncidentID(), cmd.Resolucion(), time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
