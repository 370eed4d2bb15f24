package http

import (
	"net/http"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCreditStatement handles GET /api/v1/creditos/:id/estado-cuenta.
func (s *Server) GetCreditStatement(ctx echo.Context) error {
	creditID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCreditStatementQuery(creditID)
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.getCreditStatementHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCreditStatementResponse(resp))
}

// ApproveCredit handles POST /api/v1/creditos/:id/aprobacion.
func (s *Server) ApproveCredit(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	creditID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req approveCreditRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	monto, err := kernel.MoneyFromString(req.MontoAprobado)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveCreditCommand(a, creditID, monto, req.PlazoDias, req.Notas)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.approveCreditHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectCredit handles POST /api/v1/creditos/:id/rechazo.
func (s *Server) RejectCredit(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	creditID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req motivoRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewRejectCreditCommand(a, creditID, req.Motivo)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.rejectCreditHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterPayment handles POST /api/v1/creditos/:id/pagos.
func (s *Server) RegisterPayment(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	creditID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req paymentRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	monto, err := kernel.MoneyFromString(req.Monto)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterPaymentCommand(a, creditID, monto, req.Referencia, req.Notas)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.registerPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}
