// Package creditrepo implements credit persistence: DTO mapping for the
// credit aggregate with its append-only payment rows, and the GORM repository.
package creditrepo

import (
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditDTO is the database row of a credit aggregate root. The balance is
// never stored; it is always derived from the payment rows.
type CreditDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PedidoID      uuid.UUID       `gorm:"column:pedido_id;type:uuid;uniqueIndex"`
	ClienteID     uuid.UUID       `gorm:"column:cliente_id;type:uuid;index"`
	MontoAprobado decimal.Decimal `gorm:"column:monto_aprobado;type:decimal(14,2)"`
	PlazoDias     int             `gorm:"column:plazo_dias"`
	Estado        string          `gorm:"index"`
	AprobadoEn    *time.Time      `gorm:"column:aprobado_en"`
	Notas         string
	Version       int

	Payments []PaymentDTO `gorm:"foreignKey:CreditoID;constraint:OnDelete:CASCADE"`
}

// TableName maps the aggregate root to the "creditos" table.
func (CreditDTO) TableName() string {
	return "creditos"
}

// PaymentDTO is one append-only payment row.
type PaymentDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreditoID  uuid.UUID       `gorm:"column:credito_id;type:uuid;index"`
	Posicion   int             `gorm:"column:posicion"`
	Monto      decimal.Decimal `gorm:"column:monto_pago;type:decimal(14,2)"`
	FechaPago  time.Time       `gorm:"column:fecha_pago"`
	Referencia string
	Notas      string
}

// TableName maps payment rows to the "credito_pagos" table.
func (PaymentDTO) TableName() string {
	return "credito_pagos"
}

func fromDomain(c *credit.Credit) CreditDTO {
	payments := make([]PaymentDTO, 0, len(c.Payments()))
	for pos, p := range c.Payments() {
		payments = append(payments, PaymentDTO{
			ID:         p.ID().Bytes(),
			CreditoID:  c.ID().Bytes(),
			Posicion:   pos,
			Monto:      p.Monto().Decimal(),
			FechaPago:  p.FechaPago(),
			Referencia: p.Referencia(),
			Notas:      p.Notas(),
		})
	}

	return CreditDTO{
		ID:            c.ID().Bytes(),
		PedidoID:      c.PedidoID().Bytes(),
		ClienteID:     c.ClienteID().Bytes(),
		MontoAprobado: c.MontoAprobado().Decimal(),
		PlazoDias:     c.PlazoDias(),
		Estado:        c.Status().String(),
		AprobadoEn:    c.AprobadoEn(),
		Notas:         c.Notas(),
		Version:       c.Version(),
		Payments:      payments,
	}
}

func toDomain(dto CreditDTO) (*credit.Credit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pedidoID, err := kernel.UUIDFromBytes(dto.PedidoID[:])
	if err != nil {
		return nil, err
	}
	clienteID, err := kernel.UUIDFromBytes(dto.ClienteID[:])
	if err != nil {
		return nil, err
	}
	monto, err := kernel.NewMoney(dto.MontoAprobado)
	if err != nil {
		return nil, err
	}
	status, err := credit.StatusFromString(dto.Estado)
	if err != nil {
		return nil, err
	}

	payments := make([]*credit.Payment, 0, len(dto.Payments))
	for _, pDTO := range dto.Payments {
		p, pErr := paymentToDomain(pDTO)
		if pErr != nil {
			return nil, pErr
		}
		payments = append(payments, p)
	}

	return credit.RestoreCredit(
		id, pedidoID, clienteID, monto, dto.PlazoDias, status,
		dto.AprobadoEn, dto.Notas, payments, dto.Version,
	)
}

func paymentToDomain(dto PaymentDTO) (*credit.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	monto, err := kernel.NewMoney(dto.Monto)
	if err != nil {
		return nil, err
	}
	return credit.NewPayment(id, monto, dto.FechaPago, dto.Referencia, dto.Notas)
}
