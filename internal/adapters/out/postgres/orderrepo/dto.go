// Package orderrepo implements order persistence: DTO mapping between the
// order aggregate and its relational representation, and the GORM repository.
package orderrepo

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row of an order aggregate root. Statuses and
// payment methods are stored as their Spanish wire strings; the version
// column carries the optimistic lock.
type OrderDTO struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Numero                    string    `gorm:"column:numero_pedido;uniqueIndex"`
	ClienteID                 uuid.UUID `gorm:"column:cliente_id;type:uuid;index"`
	MetodoPago                string    `gorm:"column:metodo_pago"`
	Estado                    string    `gorm:"index"`
	FechaEntregaSugerida      time.Time `gorm:"column:fecha_entrega_sugerida"`
	RequiereAprobacionCliente bool      `gorm:"column:requiere_aprobacion_cliente"`
	BodegueroID               *uuid.UUID `gorm:"column:bodeguero_id;type:uuid"`
	ObservacionesBodega       string     `gorm:"column:observaciones_bodega"`
	MotivoCancelacion         string     `gorm:"column:motivo_cancelacion"`
	MotivoRechazo             string     `gorm:"column:motivo_rechazo"`
	Version                   int

	Items []ItemDTO `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

// TableName maps the aggregate root to the "pedidos" table.
func (OrderDTO) TableName() string {
	return "pedidos"
}

// ItemDTO is the database row of one order line. Resolution columns are null
// until warehouse validation ran; Posicion preserves catalog insertion order.
type ItemDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PedidoID           uuid.UUID       `gorm:"column:pedido_id;type:uuid;index"`
	Posicion           int             `gorm:"column:posicion"`
	SkuCodigo          string          `gorm:"column:sku_codigo"`
	SkuNombre          string          `gorm:"column:sku_nombre"`
	CantidadSolicitada int             `gorm:"column:cantidad_solicitada"`
	PrecioBase         decimal.Decimal `gorm:"column:precio_unitario_base;type:decimal(14,2)"`
	PrecioFinal        decimal.Decimal `gorm:"column:precio_unitario_final;type:decimal(14,2)"`
	RequiereAprobacion bool            `gorm:"column:requiere_aprobacion"`
	AprobadoEn         *time.Time      `gorm:"column:aprobado_en"`

	EstadoResultado   *string `gorm:"column:estado_resultado"`
	CantidadAprobada  *int    `gorm:"column:cantidad_aprobada"`
	SkuAprobadoCodigo *string `gorm:"column:sku_aprobado_codigo"`
	SkuAprobadoNombre *string `gorm:"column:sku_aprobado_nombre"`
	MotivoResultado   *string `gorm:"column:motivo_resultado"`
}

// TableName maps order lines to the "pedido_items" table.
func (ItemDTO) TableName() string {
	return "pedido_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var bodegueroID *uuid.UUID
	if id := o.BodegueroID(); id != nil {
		raw := id.Bytes()
		bodegueroID = &raw
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for pos, item := range o.Items() {
		items = append(items, itemFromDomain(o.ID().Bytes(), pos, item))
	}

	return OrderDTO{
		ID:                        o.ID().Bytes(),
		Numero:                    o.Numero(),
		ClienteID:                 o.ClienteID().Bytes(),
		MetodoPago:                o.MetodoPago().String(),
		Estado:                    o.Status().String(),
		FechaEntregaSugerida:      o.FechaEntregaSugerida(),
		RequiereAprobacionCliente: o.RequiereAprobacionCliente(),
		BodegueroID:               bodegueroID,
		ObservacionesBodega:       o.ObservacionesBodega(),
		MotivoCancelacion:         o.MotivoCancelacion(),
		MotivoRechazo:             o.MotivoRechazo(),
		Version:                   o.Version(),
		Items:                     items,
	}
}

func itemFromDomain(pedidoID uuid.UUID, pos int, item *order.Item) ItemDTO {
	dto := ItemDTO{
		ID:                 item.ID().Bytes(),
		PedidoID:           pedidoID,
		Posicion:           pos,
		SkuCodigo:          item.SKU().Codigo(),
		SkuNombre:          item.SKU().Nombre(),
		CantidadSolicitada: item.CantidadSolicitada(),
		PrecioBase:         item.PrecioBase().Decimal(),
		PrecioFinal:        item.PrecioFinal().Decimal(),
		RequiereAprobacion: item.RequiereAprobacion(),
		AprobadoEn:         item.AprobadoEn(),
	}

	if res := item.Resolution(); res != nil {
		estado := res.Status().String()
		cantidad := res.CantidadAprobada()
		motivo := res.Motivo()
		dto.EstadoResultado = &estado
		dto.CantidadAprobada = &cantidad
		dto.MotivoResultado = &motivo
		if sku := res.SKUAprobado(); sku != nil {
			codigo := sku.Codigo()
			nombre := sku.Nombre()
			dto.SkuAprobadoCodigo = &codigo
			dto.SkuAprobadoNombre = &nombre
		}
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clienteID, err := kernel.UUIDFromBytes(dto.ClienteID[:])
	if err != nil {
		return nil, err
	}
	metodoPago, err := order.PaymentMethodFromString(dto.MetodoPago)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Estado)
	if err != nil {
		return nil, err
	}

	var bodegueroID *kernel.UUID
	if dto.BodegueroID != nil {
		bID, bErr := kernel.UUIDFromBytes((*dto.BodegueroID)[:])
		if bErr != nil {
			return nil, bErr
		}
		bodegueroID = &bID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, dto.Numero, clienteID, metodoPago, status,
		dto.FechaEntregaSugerida, items,
		dto.RequiereAprobacionCliente, bodegueroID, dto.ObservacionesBodega,
		dto.MotivoCancelacion, dto.MotivoRechazo, dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sku, err := order.NewSKURef(dto.SkuCodigo, dto.SkuNombre)
	if err != nil {
		return nil, err
	}
	precioBase, err := kernel.NewMoney(dto.PrecioBase)
	if err != nil {
		return nil, err
	}
	precioFinal, err := kernel.NewMoney(dto.PrecioFinal)
	if err != nil {
		return nil, err
	}

	var resolution *order.Resolution
	if dto.EstadoResultado != nil {
		status, resErr := order.ResolutionStatusFromString(*dto.EstadoResultado)
		if resErr != nil {
			return nil, resErr
		}

		var skuAprobado *order.SKURef
		if dto.SkuAprobadoCodigo != nil {
			nombre := ""
			if dto.SkuAprobadoNombre != nil {
				nombre = *dto.SkuAprobadoNombre
			}
			s, skuErr := order.NewSKURef(*dto.SkuAprobadoCodigo, nombre)
			if skuErr != nil {
				return nil, skuErr
			}
			skuAprobado = &s
		}

		cantidad := 0
		if dto.CantidadAprobada != nil {
			cantidad = *dto.CantidadAprobada
		}
		motivo := ""
		if dto.MotivoResultado != nil {
			motivo = *dto.MotivoResultado
		}

		res, resErr := order.NewResolution(status, cantidad, skuAprobado, motivo)
		if resErr != nil {
			return nil, resErr
		}
		resolution = &res
	}

	return order.RestoreItem(
		id, sku, dto.CantidadSolicitada, precioBase, precioFinal,
		dto.RequiereAprobacion, dto.AprobadoEn, resolution,
	)
}
