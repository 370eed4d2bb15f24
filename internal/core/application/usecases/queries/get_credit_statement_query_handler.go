package queries

import (
	"context"
	"database/sql"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCreditStatementQueryHandler reads one credit statement from the database.
// The balance is always derived from the payment rows, never stored.
type GetCreditStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetCreditStatementQueryHandler creates a handler for credit statements.
func NewGetCreditStatementQueryHandler(db *gorm.DB) GetCreditStatementQueryHandler {
	return GetCreditStatementQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCreditStatementQueryHandler) Handle(
	ctx context.Context, query GetCreditStatementQuery,
) (*GetCreditStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pedido_id,
			cliente_id,
			estado,
			monto_aprobado,
			plazo_dias,
			aprobado_en,
			notas
		FROM creditos
		WHERE id = ?
	`, query.CreditID().Bytes()).Row()

	var resp GetCreditStatementQueryResponse
	var id, pedidoID, clienteID uuid.UUID

	err := row.Scan(
		&id,
		&pedidoID,
		&clienteID,
		&resp.Estado,
		&resp.MontoAprobado,
		&resp.PlazoDias,
		&resp.AprobadoEn,
		&resp.Notas,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("credito", query.CreditID().String())
	}
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
	resp.ClienteID, err = kernel.UUIDFromBytes(clienteID[:])
	if err != nil {
		return nil, err
	}

	if err = h.readPayments(ctx, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetCreditStatementQueryHandler) readPayments(
	ctx context.Context, resp *GetCreditStatementQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			monto_pago,
			fecha_pago,
			referencia,
			notas
		FROM credito_pagos
		WHERE credito_id = ?
		ORDER BY posicion
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Payments = make([]GetCreditStatementPaymentResponse, 0)
	total := decimal.Zero

	for rows.Next() {
		var payment GetCreditStatementPaymentResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&payment.Monto,
			&payment.FechaPago,
			&payment.Referencia,
			&payment.Notas,
		)
		if err != nil {
			return err
		}

		payment.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}

		total = total.Add(payment.Monto)
		resp.Payments = append(resp.Payments, payment)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	resp.TotalPagado = total
	resp.Saldo = resp.MontoAprobado.Sub(total)
	return nil
}
