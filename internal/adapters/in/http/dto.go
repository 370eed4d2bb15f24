package http

import (
	"time"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/delivery"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Codigo  int    `json:"codigo"`
	Mensaje string `json:"mensaje"`
}

// Monetary amounts travel as decimal strings to avoid float rounding on the
// wire; they are parsed with kernel.MoneyFromString at the boundary.

type createOrderItemRequest struct {
	SKUCodigo           string `json:"sku_codigo"`
	Cantidad            int    `json:"cantidad"`
	PrecioUnitarioBase  string `json:"precio_unitario_base"`
	PrecioUnitarioFinal string `json:"precio_unitario_final"`
}

type createOrderRequest struct {
	Numero               string                   `json:"numero_pedido"`
	MetodoPago           string                   `json:"metodo_pago"`
	FechaEntregaSugerida time.Time                `json:"fecha_entrega_sugerida"`
	Items                []createOrderItemRequest `json:"items"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type resolutionRequest struct {
	ItemID            string `json:"item_id"`
	Estado            string `json:"estado"`
	CantidadAprobada  int    `json:"cantidad_aprobada"`
	SKUAprobadoCodigo string `json:"sku_aprobado_codigo"`
	Motivo            string `json:"motivo"`
}

type validateOrderRequest struct {
	Observaciones string              `json:"observaciones"`
	Resoluciones  []resolutionRequest `json:"resoluciones"`
}

type reviewAdjustmentsRequest struct {
	Aceptar bool   `json:"aceptar"`
	Motivo  string `json:"motivo_rechazo"`
}

type reconcilePromotionsRequest struct {
	Aprobar bool    `json:"aprobar"`
	ItemID  *string `json:"item_id"`
}

type assignRouteRequest struct {
	RuteroLogisticoID string `json:"rutero_logistico_id"`
	TransportistaID   string `json:"transportista_id"`
}

type motivoRequest struct {
	Motivo string `json:"motivo"`
}

type coordinatesRequest struct {
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
}

func (c *coordinatesRequest) toDomain() *delivery.Coordinates {
	if c == nil {
		return nil
	}
	return &delivery.Coordinates{Latitud: c.Latitud, Longitud: c.Longitud}
}

type completeDeliveryRequest struct {
	Parcial       bool                `json:"parcial"`
	MotivoParcial string              `json:"motivo_parcial"`
	Observaciones string              `json:"observaciones"`
	Ubicacion     *coordinatesRequest `json:"ubicacion"`
}

type noDeliveryRequest struct {
	Motivo    string              `json:"motivo"`
	Ubicacion *coordinatesRequest `json:"ubicacion"`
}

type evidenceRequest struct {
	Tipo        string `json:"tipo"`
	URL         string `json:"url"`
	MimeType    string `json:"mime_type"`
	Descripcion string `json:"descripcion"`
}

type incidentRequest struct {
	TipoIncidencia string `json:"tipo_incidencia"`
	Severidad      string `json:"severidad"`
	Descripcion    string `json:"descripcion"`
}

type resolveIncidentRequest struct {
	Resolucion string `json:"resolucion"`
}

type approveCreditRequest struct {
	MontoAprobado string `json:"monto_aprobado"`
	PlazoDias     int    `json:"plazo_dias"`
	Notas         string `json:"notas"`
}

type paymentRequest struct {
	Monto      string `json:"monto"`
	Referencia string `json:"referencia"`
	Notas      string `json:"notas"`
}

type orderItemResponse struct {
	ID                  string  `json:"id"`
	SKUCodigo           string  `json:"sku_codigo"`
	SKUNombre           string  `json:"sku_nombre"`
	CantidadSolicitada  int     `json:"cantidad_solicitada"`
	PrecioUnitarioBase  string  `json:"precio_unitario_base"`
	PrecioUnitarioFinal string  `json:"precio_unitario_final"`
	RequiereAprobacion  bool    `json:"requiere_aprobacion"`
	EstadoResultado     *string `json:"estado_resultado"`
	CantidadAprobada    *int    `json:"cantidad_aprobada"`
	SKUAprobadoCodigo   *string `json:"sku_aprobado_codigo"`
	MotivoResultado     *string `json:"motivo_resultado"`
}

type orderResponse struct {
	ID                        string              `json:"id"`
	Numero                    string              `json:"numero_pedido"`
	ClienteID                 string              `json:"cliente_id"`
	MetodoPago                string              `json:"metodo_pago"`
	Estado                    string              `json:"estado"`
	FechaEntregaSugerida      time.Time           `json:"fecha_entrega_sugerida"`
	RequiereAprobacionCliente bool                `json:"requiere_aprobacion_cliente"`
	ObservacionesBodega       string              `json:"observaciones_bodega"`
	MotivoCancelacion         string              `json:"motivo_cancelacion"`
	MotivoRechazo             string              `json:"motivo_rechazo"`
	Total                     string              `json:"total"`
	Items                     []orderItemResponse `json:"items"`
}

func toOrderResponse(r *queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = orderItemResponse{
			ID:                  item.ID.String(),
			SKUCodigo:           item.SKUCodigo,
			SKUNombre:           item.SKUNombre,
			CantidadSolicitada:  item.CantidadSolicitada,
			PrecioUnitarioBase:  item.PrecioUnitarioBase.String(),
			PrecioUnitarioFinal: item.PrecioUnitarioFinal.String(),
			RequiereAprobacion:  item.RequiereAprobacion,
			EstadoResultado:     item.EstadoResultado,
			CantidadAprobada:    item.CantidadAprobada,
			SKUAprobadoCodigo:   item.SKUAprobadoCodigo,
			MotivoResultado:     item.MotivoResultado,
		}
	}

	return orderResponse{
		ID:                        r.ID.String(),
		Numero:                    r.Numero,
		ClienteID:                 r.ClienteID.String(),
		MetodoPago:                r.MetodoPago,
		Estado:                    r.Estado,
		FechaEntregaSugerida:      r.FechaEntregaSugerida,
		RequiereAprobacionCliente: r.RequiereAprobacionCliente,
		ObservacionesBodega:       r.ObservacionesBodega,
		MotivoCancelacion:         r.MotivoCancelacion,
		MotivoRechazo:             r.MotivoRechazo,
		Total:                     r.Total.String(),
		Items:                     items,
	}
}

type activeDeliveryResponse struct {
	ID                string     `json:"id"`
	PedidoID          string     `json:"pedido_id"`
	RuteroLogisticoID string     `json:"rutero_logistico_id"`
	TransportistaID   string     `json:"transportista_id"`
	Estado            string     `json:"estado"`
	AsignadoEn        time.Time  `json:"asignado_en"`
	SalidaRutaEn      *time.Time `json:"salida_ruta_en"`
}

func toActiveDeliveriesResponse(rows []queries.GetActiveDeliveriesQueryResponse) []activeDeliveryResponse {
	response := make([]activeDeliveryResponse, len(rows))
	for i, row := range rows {
		response[i] = activeDeliveryResponse{
			ID:                row.ID.String(),
			PedidoID:          row.PedidoID.String(),
			RuteroLogisticoID: row.RuteroLogisticoID.String(),
			TransportistaID:   row.TransportistaID.String(),
			Estado:            row.Estado,
			AsignadoEn:        row.AsignadoEn,
			SalidaRutaEn:      row.SalidaRutaEn,
		}
	}
	return response
}

type creditPaymentResponse struct {
	ID         string    `json:"id"`
	Monto      string    `json:"monto"`
	FechaPago  time.Time `json:"fecha_pago"`
	Referencia string    `json:"referencia"`
	Notas      string    `json:"notas"`
}

type creditStatementResponse struct {
	ID            string                  `json:"id"`
	PedidoID      string                  `json:"pedido_id"`
	ClienteID     string                  `json:"cliente_id"`
	Estado        string                  `json:"estado"`
	MontoAprobado string                  `json:"monto_aprobado"`
	PlazoDias     int                     `json:"plazo_dias"`
	AprobadoEn    *time.Time              `json:"aprobado_en"`
	Notas         string                  `json:"notas"`
	TotalPagado   string                  `json:"total_pagado"`
	Saldo         string                  `json:"saldo"`
	Pagos         []creditPaymentResponse `json:"pagos"`
}

func toCreditStatementResponse(r *queries.GetCreditStatementQueryResponse) creditStatementResponse {
	payments := make([]creditPaymentResponse, len(r.Payments))
	for i, payment := range r.Payments {
		payments[i] = creditPaymentResponse{
			ID:         payment.ID.String(),
			Monto:      payment.Monto.String(),
			FechaPago:  payment.FechaPago,
			Referencia: payment.Referencia,
			Notas:      payment.Notas,
		}
	}

	return creditStatementResponse{
		ID:            r.ID.String(),
		PedidoID:      r.PedidoID.String(),
		ClienteID:     r.ClienteID.String(),
		Estado:        r.Estado,
		MontoAprobado: r.MontoAprobado.String(),
		PlazoDias:     r.PlazoDias,
		AprobadoEn:    r.AprobadoEn,
		Notas:         r.Notas,
		TotalPagado:   r.TotalPagado.String(),
		Saldo:         r.Saldo.String(),
		Pagos:         payments,
	}
}
