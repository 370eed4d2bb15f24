package commands

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/credit"
	"pedidos/internal/core/domain/model/kernel"
)

// RegisterPaymentCommandHandler records a payment against a credit. The
// aggregate rejects overpayment and closes the credit when the balance
// reaches zero.
type RegisterPaymentCommandHandler struct {
	uowFactory CreditUoWFactory
}

// NewRegisterPaymentCommandHandler creates a handler for payment registration.
func NewRegisterPaymentCommandHandler(uowFactory CreditUoWFactory) RegisterPaymentCommandHandler {
	return RegisterPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment.
func (h RegisterPaymentCommandHandler) Handle(ctx context.Context, cmd RegisterPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payment, err := credit.NewPayment(
		kernel.NewUUID(), cmd.Monto(), time.Now(), cmd.Referencia(), cmd.Notas(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	creditRepo := uow.CreditRepository()
	cr, err := creditRepo.Get(ctx, cmd.CreditID())
	if err != nil {
		return err
	}

	if err = cr.RegistrarPago(payment); err != nil {
		return err
	}

	if err = creditRepo.Update(ctx, cr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
