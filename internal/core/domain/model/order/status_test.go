package order_test

import (
	"fmt"
	"testing"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	t.Run("should return Spanish wire values", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.PendingValidation, "pendiente_validacion"},
			{order.WarehouseAdjusted, "ajustado_bodega"},
			{order.ClientAccepted, "aceptado_cliente"},
			{order.Validated, "validado"},
			{order.RouteAssigned, "asignado_ruta"},
			{order.EnRoute, "en_ruta"},
			{order.Delivered, "entregado"},
			{order.Canceled, "cancelado"},
			{order.ClientRejected, "rechazado_cliente"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return desconocido for invalid values", func(t *testing.T) {
		assert.Equal(t, "desconocido", order.Status(-1).String())
		assert.Equal(t, "desconocido", order.Status(100).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingValidation, order.WarehouseAdjusted, order.ClientAccepted,
			order.Validated, order.RouteAssigned, order.EnRoute,
			order.Delivered, order.Canceled, order.ClientRejected,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := order.StatusFromString("enviado")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), `"enviado" is not a valid order status`)
	})

	t.Run("should reject desconocido", func(t *testing.T) {
		_, err := order.StatusFromString("desconocido")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(42)} {
			t.Run(fmt.Sprintf("status %d", int(s)), func(t *testing.T) {
				err := s.Validate()
				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{order.Delivered, order.Canceled, order.ClientRejected}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
	}

	nonTerminal := []order.Status{
		order.PendingValidation, order.WarehouseAdjusted, order.ClientAccepted,
		order.Validated, order.RouteAssigned, order.EnRoute,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestStatus_ApplyValidation(t *testing.T) {
	t.Run("should land on validado when fully approved", func(t *testing.T) {
		newStatus, err := order.PendingValidation.ApplyValidation(true)

		require.NoError(t, err)
		assert.Equal(t, order.Validated, newStatus)
	})

	t.Run("should land on ajustado_bodega with adjustments", func(t *testing.T) {
		newStatus, err := order.PendingValidation.ApplyValidation(false)

		require.NoError(t, err)
		assert.Equal(t, order.WarehouseAdjusted, newStatus)
	})

	t.Run("should reject validation from any other state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.WarehouseAdjusted, order.Validated, order.RouteAssigned,
			order.EnRoute, order.Delivered, order.Canceled, order.ClientRejected,
		} {
			_, err := s.ApplyValidation(true)

			require.Error(t, err)
			assert.IsType(t, &errs.InvalidTransitionError{}, err)
			assert.Contains(t, err.Error(),
				fmt.Sprintf("pedido in state %s does not allow validar", s))
		}
	})
}

func TestStatus_AcceptAdjustments(t *testing.T) {
	t.Run("should transition ajustado_bodega to validado", func(t *testing.T) {
		newStatus, err := order.WarehouseAdjusted.AcceptAdjustments()

		require.NoError(t, err)
		assert.Equal(t, order.Validated, newStatus)
	})

	t.Run("should reject from pendiente_validacion", func(t *testing.T) {
		_, err := order.PendingValidation.AcceptAdjustments()

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestStatus_RejectAdjustments(t *testing.T) {
	t.Run("should transition ajustado_bodega to rechazado_cliente", func(t *testing.T) {
		newStatus, err := order.WarehouseAdjusted.RejectAdjustments()

		require.NoError(t, err)
		assert.Equal(t, order.ClientRejected, newStatus)
	})

	t.Run("should reject from validado", func(t *testing.T) {
		_, err := order.Validated.RejectAdjustments()
		require.Error(t, err)
	})
}

func TestStatus_RoutingChain(t *testing.T) {
	t.Run("should follow validado to entregado", func(t *testing.T) {
		status := order.Validated

		status, err := status.AssignRoute()
		require.NoError(t, err)
		assert.Equal(t, order.RouteAssigned, status)

		status, err = status.StartRoute()
		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, status)

		status, err = status.MarkDelivered()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, status)
	})

	t.Run("should not assign route before validation", func(t *testing.T) {
		_, err := order.PendingValidation.AssignRoute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pendiente_validacion does not allow asignar_ruta")
	})

	t.Run("should not skip departure", func(t *testing.T) {
		_, err := order.RouteAssigned.MarkDelivered()
		require.Error(t, err)
	})

	t.Run("failed attempt drops en_ruta back to asignado_ruta", func(t *testing.T) {
		newStatus, err := order.EnRoute.MarkNotDelivered()

		require.NoError(t, err)
		assert.Equal(t, order.RouteAssigned, newStatus)

		_, err = order.Validated.MarkNotDelivered()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from every pre-departure state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingValidation, order.WarehouseAdjusted, order.ClientAccepted,
			order.Validated, order.RouteAssigned,
		} {
			newStatus, err := s.Cancel()

			require.NoError(t, err, "cancel from %s", s)
			assert.Equal(t, order.Canceled, newStatus)
		}
	})

	t.Run("should not cancel once en_ruta", func(t *testing.T) {
		_, err := order.EnRoute.Cancel()

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "en_ruta does not allow cancelar")
	})

	t.Run("should not cancel terminal states", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Canceled, order.ClientRejected} {
			_, err := s.Cancel()
			require.Error(t, err, "cancel from %s", s)
		}
	})
}

func TestStatus_CancelFromDelivery(t *testing.T) {
	t.Run("should cascade from asignado_ruta and en_ruta", func(t *testing.T) {
		for _, s := range []order.Status{order.RouteAssigned, order.EnRoute} {
			newStatus, err := s.CancelFromDelivery()

			require.NoError(t, err)
			assert.Equal(t, order.Canceled, newStatus)
		}
	})

	t.Run("should reject from states without a delivery", func(t *testing.T) {
		for _, s := range []order.Status{order.PendingValidation, order.Validated, order.Delivered} {
			_, err := s.CancelFromDelivery()
			require.Error(t, err, "cascade from %s", s)
		}
	})
}
