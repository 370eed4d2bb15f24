package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartDeliveryCommandHandler_Handle_MovesDeliveryAndOrder(t *testing.T) {
	ctx := t.Context()
	carrier := newTestActor(t, actor.RoleTransportista)

	o := newRoutableOrder(t, order.Cash)
	require.NoError(t, o.AssignRoute())
	d := newPendingDelivery(t, carrier.ID())

	cmd, err := commands.NewStartDeliveryCommand(carrier, d.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	orderRepo.On("Get", mock.Anything, d.PedidoID()).Return(o, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, delivery.EnRoute, d.Status())
	require.Equal(t, order.EnRoute, o.Status())
	require.NotNil(t, d.SalidaRutaEn())
}

func TestStartDeliveryCommandHandler_Handle_WrongCarrier(t *testing.T) {
	ctx := t.Context()
	carrier := newTestActor(t, actor.RoleTransportista)
	other := newTestActor(t, actor.RoleTransportista)
	d := newPendingDelivery(t, carrier.ID())

	cmd, err := commands.NewStartDeliveryCommand(other, d.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidRequest)
	require.Equal(t, delivery.Pending, d.Status())
}
