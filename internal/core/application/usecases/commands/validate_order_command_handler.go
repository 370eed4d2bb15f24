package commands

import (
	"context"
	"fmt"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// ValidateOrderCommandHandler applies the warehouse resolution batch to an
// order. Substitute SKUs are resolved against the catalog before the batch
// touches the aggregate, so a bad substitute aborts with no state change.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.SKUCatalog
}

// NewValidateOrderCommandHandler creates a handler for warehouse validation.
func NewValidateOrderCommandHandler(
	uowFactory OrderUoWFactory, catalog ports.SKUCatalog,
) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the validation batch. The aggregate enforces coverage and
// the per-item quantity rules; this handler only resolves catalog lookups
// and persists the outcome.
func (h ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	resolutions, err := h.buildResolutions(ctx, cmd.Resolutions())
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ApplyValidation(cmd.Actor().ID(), cmd.Observaciones(), resolutions); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ValidateOrderCommandHandler) buildResolutions(
	ctx context.Context, inputs []ResolutionInput,
) ([]order.ItemResolution, error) {
	resolutions := make([]order.ItemResolution, 0, len(inputs))
	for _, input := range inputs {
		status, err := order.ResolutionStatusFromString(input.Estado)
		if err != nil {
			return nil, err
		}

		var substitute *order.SKURef
		if input.SKUAprobadoCodigo != "" {
			exists, exErr := h.catalog.Exists(ctx, input.SKUAprobadoCodigo)
			if exErr != nil {
				return nil, exErr
			}
			if !exists {
				return nil, errs.NewInvalidRequestError(
					fmt.Sprintf("substitute sku %s is not in the catalog", input.SKUAprobadoCodigo))
			}

			nombre, nErr := h.catalog.Name(ctx, input.SKUAprobadoCodigo)
			if nErr != nil {
				return nil, nErr
			}
			sku, sErr := order.NewSKURef(input.SKUAprobadoCodigo, nombre)
			if sErr != nil {
				return nil, sErr
			}
			substitute = &sku
		}

		res, err := order.NewResolution(status, input.CantidadAprobada, substitute, input.Motivo)
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, order.ItemResolution{
			ItemID:     input.ItemID,
			Resolution: res,
		})
	}

	return resolutions, nil
}
