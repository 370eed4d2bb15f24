// Package http exposes the order, delivery and credit operations over REST.
// Every mutating route authenticates the caller from the X-Actor-Id and
// X-Actor-Role headers; role and ownership rules live in the core, this layer
// only translates wire shapes and error kinds.
package http

import (
	"errors"
	"net/http"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	validateOrderHandler       commands.ValidateOrderCommandHandler
	reviewAdjustmentsHandler   commands.ReviewAdjustmentsCommandHandler
	reconcilePromotionsHandler commands.ReconcilePromotionsCommandHandler
	assignRouteHandler         commands.AssignRouteCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	startDeliveryHandler       commands.StartDeliveryCommandHandler
	completeDeliveryHandler    commands.CompleteDeliveryCommandHandler
	markNoDeliveryHandler      commands.MarkNoDeliveryCommandHandler
	cancelDeliveryHandler      commands.CancelDeliveryCommandHandler
	addEvidenceHandler         commands.AddEvidenceCommandHandler
	reportIncidentHandler      commands.ReportIncidentCommandHandler
	resolveIncidentHandler     commands.ResolveIncidentCommandHandler
	approveCreditHandler       commands.ApproveCreditCommandHandler
	rejectCreditHandler        commands.RejectCreditCommandHandler
	registerPaymentHandler     commands.RegisterPaymentCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getCreditStatementHandler  queries.GetCreditStatementQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	validateOrderHandler commands.ValidateOrderCommandHandler,
	reviewAdjustmentsHandler commands.ReviewAdjustmentsCommandHandler,
	reconcilePromotionsHandler commands.ReconcilePromotionsCommandHandler,
	assignRouteHandler commands.AssignRouteCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	markNoDeliveryHandler commands.MarkNoDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	addEvidenceHandler commands.AddEvidenceCommandHandler,
	reportIncidentHandler commands.ReportIncidentCommandHandler,
	resolveIncidentHandler commands.ResolveIncidentCommandHandler,
	approveCreditHandler commands.ApproveCreditCommandHandler,
	rejectCreditHandler commands.RejectCreditCommandHandler,
	registerPaymentHandler commands.RegisterPaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getCreditStatementHandler queries.GetCreditStatementQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		validateOrderHandler:       validateOrderHandler,
		reviewAdjustmentsHandler:   reviewAdjustmentsHandler,
		reconcilePromotionsHandler: reconcilePromotionsHandler,
		assignRouteHandler:         assignRouteHandler,
		cancelOrderHandler:         cancelOrderHandler,
		startDeliveryHandler:       startDeliveryHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		markNoDeliveryHandler:      markNoDeliveryHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		addEvidenceHandler:         addEvidenceHandler,
		reportIncidentHandler:      reportIncidentHandler,
		resolveIncidentHandler:     resolveIncidentHandler,
		approveCreditHandler:       approveCreditHandler,
		rejectCreditHandler:        rejectCreditHandler,
		registerPaymentHandler:     registerPaymentHandler,
		getOrderHandler:            getOrderHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getCreditStatementHandler:  getCreditStatementHandler,
	}
}

// RegisterRoutes wires every route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/pedidos", s.CreateOrder)
	api.GET("/pedidos/:id", s.GetOrder)
	api.POST("/pedidos/:id/validacion", s.ValidateOrder)
	api.POST("/pedidos/:id/revision-ajustes", s.ReviewAdjustments)
	api.POST("/pedidos/:id/promociones", s.ReconcilePromotions)
	api.POST("/pedidos/:id/ruta", s.AssignRoute)
	api.POST("/pedidos/:id/cancelacion", s.CancelOrder)

	api.GET("/entregas/activas", s.GetActiveDeliveries)
	api.POST("/entregas/:id/inicio", s.StartDelivery)
	api.POST("/entregas/:id/finalizacion", s.CompleteDelivery)
	api.POST("/entregas/:id/no-entrega", s.MarkNoDelivery)
	api.POST("/entregas/:id/cancelacion", s.CancelDelivery)
	api.POST("/entregas/:id/evidencias", s.AddEvidence)
	api.POST("/entregas/:id/incidencias", s.ReportIncident)
	api.POST("/entregas/:id/incidencias/:incidenciaId/resolucion", s.ResolveIncident)

	api.GET("/creditos/:id/estado-cuenta", s.GetCreditStatement)
	api.POST("/creditos/:id/aprobacion", s.ApproveCredit)
	api.POST("/creditos/:id/rechazo", s.RejectCredit)
	api.POST("/creditos/:id/pagos", s.RegisterPayment)
}

// actorFromRequest builds the caller identity from the X-Actor-Id and
// X-Actor-Role headers. There is no session layer; upstream infrastructure is
// trusted to have authenticated the headers.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, errorBody{
		Codigo:  http.StatusUnauthorized,
		Mensaje: "actor headers are missing or invalid: " + err.Error(),
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Codigo:  http.StatusBadRequest,
		Mensaje: err.Error(),
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Codigo:  http.StatusBadRequest,
		Mensaje: "invalid request body",
	})
}

// handlerError maps the core error taxonomy to HTTP status codes. Malformed
// input is 400, unknown aggregates 404, state machine and concurrency
// violations 409; anything unclassified is a 500.
func handlerError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidRequest),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrIncompleteValidation),
		errors.Is(err, errs.ErrInvalidItemResolution):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrAlreadyResolved),
		errors.Is(err, errs.ErrDuplicateCredit),
		errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, errorBody{
		Codigo:  status,
		Mensaje: err.Error(),
	})
}
