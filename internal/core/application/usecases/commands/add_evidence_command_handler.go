package commands

import (
	"context"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// AddEvidenceCommandHandler appends an evidence record to a delivery.
type AddEvidenceCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAddEvidenceCommandHandler creates a handler for evidence attachment.
func NewAddEvidenceCommandHandler(uowFactory DeliveryUoWFactory) AddEvidenceCommandHandler {
	return AddEvidenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment. Evidence is append-only and rejected once
// the delivery reaches a terminal state.
func (h AddEvidenceCommandHandler) Handle(ctx context.Context, cmd AddEvidenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ev, err := delivery.NewEvidence(
		kernel.NewUUID(), cmd.Tipo(), cmd.URL(), cmd.MimeType(), cmd.Descripcion(),
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

	if !d.TransportistaID().IsEqual(cmd.Actor().ID()) {
		return errs.NewInvalidRequestError("only the assigned carrier may attach evidence")
	}

	if err = d.AddEvidence(ev); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
