package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const rejectedResolution = "rechazado"

// GetOrderQueryHandler reads one order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The total is recomputed from the item rows the
// same way the aggregate derives it: rejected lines contribute zero, resolved
// lines use the approved quantity, unresolved lines the requested one.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.readItems(ctx, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readHeader(
	ctx context.Context, orderID kernel.UUID,
) (*GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			numero_pedido,
			cliente_id,
			metodo_pago,
			estado,
			fecha_entrega_sugerida,
			requiere_aprobacion_cliente,
			observaciones_bodega,
			motivo_cancelacion,
			motivo_rechazo
		FROM pedidos
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, clienteID uuid.UUID
	var fecha time.Time

	err := row.Scan(
		&id,
		&resp.Numero,
		&clienteID,
		&resp.MetodoPago,
		&resp.Estado,
		&fecha,
		&resp.RequiereAprobacionCliente,
		&resp.ObservacionesBodega,
		&resp.MotivoCancelacion,
		&resp.MotivoRechazo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("pedido", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ClienteID, err = kernel.UUIDFromBytes(clienteID[:])
	if err != nil {
		return nil, err
	}
	resp.FechaEntregaSugerida = fecha

	return &resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, resp *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku_codigo,
			sku_nombre,
			cantidad_solicitada,
			precio_unitario_base,
			precio_unitario_final,
			requiere_aprobacion,
			estado_resultado,
			cantidad_aprobada,
			sku_aprobado_codigo,
			motivo_resultado
		FROM pedido_items
		WHERE pedido_id = ?
		ORDER BY posicion
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Items = make([]GetOrderItemResponse, 0)
	total := decimal.Zero

	for rows.Next() {
		var item GetOrderItemResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.SKUCodigo,
			&item.SKUNombre,
			&item.CantidadSolicitada,
			&item.PrecioUnitarioBase,
			&item.PrecioUnitarioFinal,
			&item.RequiereAprobacion,
			&item.EstadoResultado,
			&item.CantidadAprobada,
			&item.SKUAprobadoCodigo,
			&item.MotivoResultado,
		)
		if err != nil {
			return err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}

		total = total.Add(lineTotal(item))
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	resp.Total = total
	return nil
}

func lineTotal(item GetOrderItemResponse) decimal.Decimal {
	if item.EstadoResultado != nil && *item.EstadoResultado == rejectedResolution {
		return decimal.Zero
	}

	qty := item.CantidadSolicitada
	if item.CantidadAprobada != nil {
		qty = *item.CantidadAprobada
	}
	return item.PrecioUnitarioFinal.Mul(decimal.NewFromInt(int64(qty)))
}
