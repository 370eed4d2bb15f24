package queries

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads the active-delivery board from the
// database.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active-delivery reads.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by assignment time so the
// oldest route shows first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context, query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pedido_id,
			rutero_logistico_id,
			transportista_id,
			estado,
			asignado_en,
			salida_ruta_en
		FROM entregas
		WHERE estado IN (?, ?)
		ORDER BY asignado_en
	`, delivery.Pending.String(), delivery.EnRoute.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, pedidoID, ruteroID, transportistaID uuid.UUID
		var asignadoEn time.Time
		var salidaRutaEn *time.Time

		err = rows.Scan(
			&id,
			&pedidoID,
			&ruteroID,
			&transportistaID,
			&resp.Estado,
			&asignadoEn,
			&salidaRutaEn,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.PedidoID, err = kernel.UUIDFromBytes(pedidoID[:])
		if err != nil {
			return nil, err
		}
		resp.RuteroLogisticoID, err = kernel.UUIDFromBytes(ruteroID[:])
		if err != nil {
			return nil, err
		}
		resp.TransportistaID, err = kernel.UUIDFromBytes(transportistaID[:])
		if err != nil {
			return nil, err
		}
		resp.AsignadoEn = asignadoEn
		resp.SalidaRutaEn = salidaRutaEn

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
