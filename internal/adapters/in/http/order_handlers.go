package http

import (
	"net/http"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/pedidos - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	metodoPago, err := order.PaymentMethodFromString(req.MetodoPago)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.ItemInput, len(req.Items))
	for i, item := range req.Items {
		base, moneyErr := kernel.MoneyFromString(item.PrecioUnitarioBase)
		if moneyErr != nil {
			return badRequest(ctx, moneyErr)
		}
		final, moneyErr := kernel.MoneyFromString(item.PrecioUnitarioFinal)
		if moneyErr != nil {
			return badRequest(ctx, moneyErr)
		}

		items[i] = commands.ItemInput{
			SKUCodigo:           item.SKUCodigo,
			Cantidad:            item.Cantidad,
			PrecioUnitarioBase:  base,
			PrecioUnitarioFinal: final,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		a, orderID, req.Numero, metodoPago, req.FechaEntregaSugerida, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/pedidos/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// ValidateOrder handles POST /api/v1/pedidos/:id/validacion - applies the
// warehouse resolution batch.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req validateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	resolutions := make([]commands.ResolutionInput, len(req.Resoluciones))
	for i, resolution := range req.Resoluciones {
		itemID, idErr := kernel.UUIDFromString(resolution.ItemID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}

		resolutions[i] = commands.ResolutionInput{
			ItemID:            itemID,
			Estado:            resolution.Estado,
			CantidadAprobada:  resolution.CantidadAprobada,
			SKUAprobadoCodigo: resolution.SKUAprobadoCodigo,
			Motivo:            resolution.Motivo,
		}
	}

	cmd, err := commands.NewValidateOrderCommand(a, orderID, req.Observaciones, resolutions)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.validateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewAdjustments handles POST /api/v1/pedidos/:id/revision-ajustes - the
// client accepts or rejects warehouse adjustments.
func (s *Server) ReviewAdjustments(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req reviewAdjustmentsRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewReviewAdjustmentsCommand(a, orderID, req.Aceptar, req.Motivo)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.reviewAdjustmentsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReconcilePromotions handles POST /api/v1/pedidos/:id/promociones - the
// supervisor approves or rejects discount lines, one or all.
func (s *Server) ReconcilePromotions(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req reconcilePromotionsRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	var itemID *kernel.UUID
	if req.ItemID != nil {
		parsed, idErr := kernel.UUIDFromString(*req.ItemID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		itemID = &parsed
	}

	cmd, err := commands.NewReconcilePromotionsCommand(a, orderID, req.Aprobar, itemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.reconcilePromotionsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRoute handles POST /api/v1/pedidos/:id/ruta - dispatches a validated
// order onto a route, creating its delivery.
func (s *Server) AssignRoute(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req assignRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	ruteroID, err := kernel.UUIDFromString(req.RuteroLogisticoID)
	if err != nil {
		return badRequest(ctx, err)
	}
	transportistaID, err := kernel.UUIDFromString(req.TransportistaID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignRouteCommand(a, orderID, ruteroID, transportistaID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/pedidos/:id/cancelacion.
func (s *Server) CancelOrder(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req motivoRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCancelOrderCommand(a, orderID, req.Motivo)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
