package http

import (
	"net/http"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetActiveDeliveries handles GET /api/v1/entregas/activas - the dispatch board.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	rows, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveDeliveriesResponse(rows))
}

// StartDelivery handles POST /api/v1/entregas/:id/inicio - the carrier leaves
// on route.
func (s *Server) StartDelivery(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(a, deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/entregas/:id/finalizacion - full or
// partial drop-off.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req completeDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(
		a, deliveryID, req.Parcial, req.MotivoParcial, req.Observaciones, req.Ubicacion.toDomain())
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkNoDelivery handles POST /api/v1/entregas/:id/no-entrega - the drop-off
// could not happen; the order returns to its route assignment.
func (s *Server) MarkNoDelivery(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req noDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewMarkNoDeliveryCommand(a, deliveryID, req.Motivo, req.Ubicacion.toDomain())
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.markNoDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/entregas/:id/cancelacion - supervisor
// cancels the trip and the order with it.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req motivoRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCancelDeliveryCommand(a, deliveryID, req.Motivo)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddEvidence handles POST /api/v1/entregas/:id/evidencias.
func (s *Server) AddEvidence(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req evidenceRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewAddEvidenceCommand(
		a, deliveryID, req.Tipo, req.URL, req.MimeType, req.Descripcion)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.addEvidenceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReportIncident handles POST /api/v1/entregas/:id/incidencias.
func (s *Server) ReportIncident(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req incidentRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewReportIncidentCommand(
		a, deliveryID, req.TipoIncidencia, req.Severidad, req.Descripcion)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.reportIncidentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveIncident handles POST /api/v1/entregas/:id/incidencias/:incidenciaId/resolucion.
func (s *Server) ResolveIncident(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	incidentID, err := pathUUID(ctx, "incidenciaId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req resolveIncidentRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewResolveIncidentCommand(a, deliveryID, incidentID, req.Resolucion)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.resolveIncidentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
