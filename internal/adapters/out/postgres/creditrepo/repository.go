package creditrepo

import (
	"context"
	"errors"
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCreditRepository implements ports.CreditRepository using GORM.
type GormCreditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCreditRepository creates a new GORM credit repository.
func NewGormCreditRepository(db *gorm.DB, tracker aggregateTracker) *GormCreditRepository {
	return &GormCreditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new credit.
func (r *GormCreditRepository) Add(ctx context.Context, aggregate *credit.Credit) error {
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

// Update saves an existing credit under the optimistic version guard.
// Payment rows are insert-only.
func (r *GormCreditRepository) Update(ctx context.Context, aggregate *credit.Credit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	payments := dto.Payments
	dto.Payments = nil

	result := r.db.WithContext(ctx).Model(&CreditDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"monto_aprobado": dto.MontoAprobado,
			"plazo_dias":     dto.PlazoDias,
			"estado":         dto.Estado,
			"aprobado_en":    dto.AprobadoEn,
			"notas":          dto.Notas,
			"version":        dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("credito", aggregate.ID().String())
	}

	if len(payments) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&payments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a credit by ID with its payments.
func (r *GormCreditRepository) Get(ctx context.Context, id kernel.UUID) (*credit.Credit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CreditDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("credito", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the credit linked to an order.
func (r *GormCreditRepository) GetByOrder(
	ctx context.Context, pedidoID kernel.UUID,
) (*credit.Credit, error) {
	if err := pedidoID.Validate(); err != nil {
		return nil, err
	}

	var dto CreditDTO
	err := r.preloaded(ctx).First(&dto, "pedido_id = ?", pedidoID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("credito", pedidoID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdueCandidates retrieves active approved credits past their due
// date for the overdue sweep.
func (r *GormCreditRepository) GetAllOverdueCandidates(
	ctx context.Context, now time.Time,
) ([]*credit.Credit, error) {
	var dtos []CreditDTO
	err := r.preloaded(ctx).
		Where("estado = ? AND aprobado_en IS NOT NULL", credit.Active.String()).
		Where("aprobado_en + plazo_dias * INTERVAL '1 day' < ?", now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	credits := make([]*credit.Credit, 0, len(dtos))
	for _, dto := range dtos {
		c, cErr := toDomain(dto)
		if cErr != nil {
			return nil, cErr
		}
		credits = append(credits, c)
	}

	return credits, nil
}

func (r *GormCreditRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("posicion ASC") })
}
