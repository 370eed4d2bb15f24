package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one requested order line. Prices are the catalog base price
// and the price actually charged; a final price below base marks the line as
// a discount awaiting supervisor approval.
type ItemInput struct {
	SKUCodigo           string
	Cantidad            int
	PrecioUnitarioBase  kernel.Money
	PrecioUnitarioFinal kernel.Money
}

// CreateOrderCommand represents a client's request to place a new order.
// SKU codes are checked against the catalog by the handler; a credito order
// additionally opens an unapproved credit record in the same transaction.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(client, orderID, "PED-2026-0117",
//	    order.Credit, deliveryDate, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor                actor.Actor
	orderID              kernel.UUID
	numero               string
	metodoPago           order.PaymentMethod
	fechaEntregaSugerida time.Time
	items                []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Only clients
// may place orders; the actor's identity becomes the order's client.
func NewCreateOrderCommand(
	a actor.Actor,
	orderID kernel.UUID,
	numero string,
	metodoPago order.PaymentMethod,
	fechaEntregaSugerida time.Time,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setNumero(numero),
		cmd.setMetodoPago(metodoPago),
		cmd.setFechaEntregaSugerida(fechaEntregaSugerida),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the client placing the order.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Numero returns the business order number.
func (c CreateOrderCommand) Numero() string {
	return c.numero
}

// MetodoPago returns the payment method.
func (c CreateOrderCommand) MetodoPago() order.PaymentMethod {
	return c.metodoPago
}

// FechaEntregaSugerida returns the requested delivery date.
func (c CreateOrderCommand) FechaEntregaSugerida() time.Time {
	return c.fechaEntregaSugerida
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleCliente); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumero(numero string) error {
	if numero == "" {
		return errs.NewValueIsRequiredError("numero_pedido")
	}

	c.numero = numero
	return nil
}

func (c *CreateOrderCommand) setMetodoPago(metodoPago order.PaymentMethod) error {
	if err := metodoPago.Validate(); err != nil {
		return err
	}

	c.metodoPago = metodoPago
	return nil
}

func (c *CreateOrderCommand) setFechaEntregaSugerida(fecha time.Time) error {
	if fecha.IsZero() {
		return errs.NewValueIsRequiredError("fecha_entrega_sugerida")
	}

	c.fechaEntregaSugerida = fecha
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.SKUCodigo == "" {
			return errs.NewValueIsRequiredError("sku_codigo")
		}
	}

	c.items = items
	return nil
}
