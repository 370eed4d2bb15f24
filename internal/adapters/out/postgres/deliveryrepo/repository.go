package deliveryrepo

import (
	"context"
	"errors"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery under the optimistic version guard.
// Evidence rows are insert-only (append-only in the domain); incident rows
// are upserted so resolutions land.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	evidences := dto.Evidences
	incidents := dto.Incidents
	dto.Evidences = nil
	dto.Incidents = nil

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"estado":             dto.Estado,
			"salida_ruta_en":     dto.SalidaRutaEn,
			"entregado_en":       dto.EntregadoEn,
			"motivo_no_entrega":  dto.MotivoNoEntrega,
			"motivo_parcial":     dto.MotivoParcial,
			"motivo_cancelacion": dto.MotivoCancelacion,
			"observaciones":      dto.Observaciones,
			"latitud":            dto.Latitud,
			"longitud":           dto.Longitud,
			"version":            dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("entrega", aggregate.ID().String())
	}

	if len(evidences) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&evidences).Error; err != nil {
			return err
		}
	}
	if len(incidents) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&incidents).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID with its evidence and incidents.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("entrega", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the delivery linked to an order.
func (r *GormDeliveryRepository) GetByOrder(
	ctx context.Context, pedidoID kernel.UUID,
) (*delivery.Delivery, error) {
	if err := pedidoID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.preloaded(ctx).First(&dto, "pedido_id = ?", pedidoID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("entrega", pedidoID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves deliveries in pendiente or en_ruta.
func (r *GormDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.preloaded(ctx).
		Find(&dtos, "estado IN ?", []string{
			delivery.Pending.String(), delivery.EnRoute.String(),
		}).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, dErr := toDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func (r *GormDeliveryRepository) preloaded(ctx context.Context) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") }
	return r.db.WithContext(ctx).
		Preload("Evidences", byPosition).
		Preload("Incidents", byPosition)
}
