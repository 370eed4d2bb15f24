package commands

import (
	"context"
	"fmt"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement. Every requested SKU is
// checked against the catalog before the order is built; a credito order
// opens its credit record in the same transaction so the routing gate always
// finds one to inspect.
type CreateOrderCommandHandler struct {
	uowFactory OrderCreditUoWFactory
	catalog    ports.SKUCatalog
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderCreditUoWFactory, catalog ports.SKUCatalog,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order placement command.
// Unknown SKU codes reject the whole order with no state change.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.buildItems(ctx, cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.Numero(), cmd.Actor().ID(),
		cmd.MetodoPago(), cmd.FechaEntregaSugerida(), items,
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if newOrder.NeedsCredit() {
		newCredit, creditErr := credit.NewCredit(
			kernel.NewUUID(), newOrder.ID(), newOrder.ClienteID(),
		)
		if creditErr != nil {
			return creditErr
		}
		if creditErr = uow.CreditRepository().Add(ctx, newCredit); creditErr != nil {
			return creditErr
		}
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) buildItems(
	ctx context.Context, inputs []ItemInput,
) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		exists, err := h.catalog.Exists(ctx, input.SKUCodigo)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewInvalidRequestError(
				fmt.Sprintf("sku %s is not in the catalog", input.SKUCodigo))
		}

		nombre, err := h.catalog.Name(ctx, input.SKUCodigo)
		if err != nil {
			return nil, err
		}
		sku, err := order.NewSKURef(input.SKUCodigo, nombre)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(
			kernel.NewUUID(), sku, input.Cantidad,
			input.PrecioUnitarioBase, input.PrecioUnitarioFinal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
