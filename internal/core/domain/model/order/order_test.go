package order_test

import (
	"testing"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestItem(t *testing.T, codigo string, qty int, base, final string) *order.Item {
	t.Helper()
	sku := mustSKU(t, codigo, "producto "+codigo)
	item, err := order.NewItem(kernel.NewUUID(), sku, qty, mustMoney(t, base), mustMoney(t, final))
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"PED-2026-0001",
		kernel.NewUUID(),
		order.Cash,
		time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		items,
	)
	require.NoError(t, err)
	return o
}

func fullApproval(t *testing.T, item *order.Item) order.ItemResolution {
	t.Helper()
	r, err := order.NewResolution(order.Approved, item.CantidadSolicitada(), nil, "stock completo")
	require.NoError(t, err)
	return order.ItemResolution{ItemID: item.ID(), Resolution: r}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pendiente_validacion", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.PendingValidation, o.Status())
		assert.Equal(t, "PED-2026-0001", o.Numero())
		assert.Equal(t, order.Cash, o.MetodoPago())
		assert.False(t, o.RequiereAprobacionCliente())
		assert.Nil(t, o.BodegueroID())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, 0, o.Version())
	})

	t.Run("should require at least one item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "PED-1", kernel.NewUUID(),
			order.Cash, time.Now(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should join multiple constructor errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(invalidID, "", kernel.NewUUID(),
			order.PaymentUnknown, time.Now(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "numero_pedido")
		assert.Contains(t, err.Error(), "metodo_pago")
	})

	t.Run("zero value and nil should fail Validate", func(t *testing.T) {
		var zero order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())

		var nilOrder *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	})

	t.Run("should report credit dependency from payment method", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 1, "10.00", "10.00")
		o, err := order.NewOrder(kernel.NewUUID(), "PED-2", kernel.NewUUID(),
			order.Credit, time.Now(), []*order.Item{item})

		require.NoError(t, err)
		assert.True(t, o.NeedsCredit())
	})
}

func TestOrder_ApplyValidation(t *testing.T) {
	bodeguero := kernel.NewUUID()

	t.Run("full approval of every item lands on validado", func(t *testing.T) {
		item1 := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		item2 := newTestItem(t, "SKU-002", 2, "4.50", "4.50")
		o := newTestOrder(t, item1, item2)

		err := o.ApplyValidation(bodeguero, "todo en stock", []order.ItemResolution{
			fullApproval(t, item1),
			fullApproval(t, item2),
		})

		require.NoError(t, err)
		assert.Equal(t, order.Validated, o.Status())
		assert.False(t, o.RequiereAprobacionCliente())
		require.NotNil(t, o.BodegueroID())
		assert.True(t, o.BodegueroID().IsEqual(bodeguero))
		assert.Equal(t, "todo en stock", o.ObservacionesBodega())
		require.NotNil(t, item1.Resolution())
		assert.Equal(t, order.Approved, item1.Resolution().Status())
	})

	t.Run("any adjustment lands on ajustado_bodega", func(t *testing.T) {
		item1 := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		item2 := newTestItem(t, "SKU-002", 4, "4.50", "4.50")
		o := newTestOrder(t, item1, item2)

		partial, err := order.NewResolution(order.PartiallyApproved, 2, nil, "stock insuficiente")
		require.NoError(t, err)

		err = o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, item1),
			{ItemID: item2.ID(), Resolution: partial},
		})

		require.NoError(t, err)
		assert.Equal(t, order.WarehouseAdjusted, o.Status())
		assert.True(t, o.RequiereAprobacionCliente())
	})

	t.Run("approving less than requested is an adjustment even with aprobado", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)

		reduced, err := order.NewResolution(order.Approved, 3, nil, "stock parcial")
		require.NoError(t, err)

		err = o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			{ItemID: item.ID(), Resolution: reduced},
		})

		require.NoError(t, err)
		assert.Equal(t, order.WarehouseAdjusted, o.Status())
	})

	t.Run("missing item coverage fails with no state change", func(t *testing.T) {
		item1 := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		item2 := newTestItem(t, "SKU-002", 2, "4.50", "4.50")
		o := newTestOrder(t, item1, item2)

		err := o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, item1),
		})

		require.Error(t, err)
		var incomplete *errs.IncompleteValidationError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{item2.ID().String()}, incomplete.MissingItemIDs)
		assert.Equal(t, order.PendingValidation, o.Status())
		assert.Nil(t, item1.Resolution())
	})

	t.Run("unknown item ids fail with no state change", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)
		stranger := kernel.NewUUID()

		err := o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, item),
			{ItemID: stranger, Resolution: fullApproval(t, item).Resolution},
		})

		require.Error(t, err)
		var incomplete *errs.IncompleteValidationError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{stranger.String()}, incomplete.UnknownItemIDs)
		assert.Equal(t, order.PendingValidation, o.Status())
	})

	t.Run("duplicate resolutions for one item are rejected", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)

		err := o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, item),
			fullApproval(t, item),
		})

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidRequestError{}, err)
		assert.Equal(t, order.PendingValidation, o.Status())
	})

	t.Run("one invalid resolution aborts the whole batch", func(t *testing.T) {
		item1 := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		item2 := newTestItem(t, "SKU-002", 4, "4.50", "4.50")
		o := newTestOrder(t, item1, item2)

		overApproval, err := order.NewResolution(order.Approved, 9, nil, "error de digitacion")
		require.NoError(t, err)

		err = o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, item1),
			{ItemID: item2.ID(), Resolution: overApproval},
		})

		require.Error(t, err)
		var invalid *errs.InvalidItemResolutionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, item2.ID().String(), invalid.ItemID)
		assert.Equal(t, order.PendingValidation, o.Status())
		assert.Nil(t, item1.Resolution(), "valid sibling resolution must not be applied")
		assert.Nil(t, item2.Resolution())
	})

	t.Run("cannot validate twice", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)

		require.NoError(t, o.ApplyValidation(bodeguero, "", []order.ItemResolution{fullApproval(t, item)}))
		err := o.ApplyValidation(bodeguero, "", []order.ItemResolution{fullApproval(t, item)})

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})

	t.Run("requires a constructed bodeguero id", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)
		var invalidID kernel.UUID

		err := o.ApplyValidation(invalidID, "", []order.ItemResolution{fullApproval(t, item)})

		require.Error(t, err)
		assert.Equal(t, order.PendingValidation, o.Status())
	})
}

func TestOrder_AdjustmentReview(t *testing.T) {
	bodeguero := kernel.NewUUID()

	adjustedOrder := func(t *testing.T) (*order.Order, *order.Item) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)
		partial, err := order.NewResolution(order.PartiallyApproved, 3, nil, "stock parcial")
		require.NoError(t, err)
		require.NoError(t, o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			{ItemID: item.ID(), Resolution: partial},
		}))
		return o, item
	}

	t.Run("accepting adjustments lands on validado with adjusted totals", func(t *testing.T) {
		o, item := adjustedOrder(t)

		err := o.AcceptAdjustments()

		require.NoError(t, err)
		assert.Equal(t, order.Validated, o.Status())
		assert.False(t, o.RequiereAprobacionCliente())
		assert.Equal(t, 3, item.Resolution().CantidadAprobada())
		assert.Equal(t, "30", o.Total().String())
	})

	t.Run("rejecting adjustments is terminal", func(t *testing.T) {
		o, _ := adjustedOrder(t)

		err := o.RejectAdjustments("cantidades insuficientes")

		require.NoError(t, err)
		assert.Equal(t, order.ClientRejected, o.Status())
		assert.Equal(t, "cantidades insuficientes", o.MotivoRechazo())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("rejecting requires a motive", func(t *testing.T) {
		o, _ := adjustedOrder(t)

		err := o.RejectAdjustments("")

		require.Error(t, err)
		assert.Equal(t, order.WarehouseAdjusted, o.Status())
	})

	t.Run("cannot review a fully approved order", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)
		require.NoError(t, o.ApplyValidation(bodeguero, "", []order.ItemResolution{fullApproval(t, item)}))

		require.Error(t, o.AcceptAdjustments())
		require.Error(t, o.RejectAdjustments("no aplica"))
	})
}

func TestOrder_Promotions(t *testing.T) {
	bodeguero := kernel.NewUUID()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	validatedWithPromo := func(t *testing.T) (*order.Order, *order.Item, *order.Item) {
		promo := newTestItem(t, "SKU-001", 2, "10.00", "8.00")
		plain := newTestItem(t, "SKU-002", 1, "4.50", "4.50")
		o := newTestOrder(t, promo, plain)
		require.NoError(t, o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, promo),
			fullApproval(t, plain),
		}))
		return o, promo, plain
	}

	t.Run("discounted item is derived at creation", func(t *testing.T) {
		promo := newTestItem(t, "SKU-001", 2, "10.00", "8.00")
		plain := newTestItem(t, "SKU-002", 1, "4.50", "4.50")

		assert.True(t, promo.RequiereAprobacion())
		assert.True(t, promo.HasUnresolvedPromotion())
		assert.False(t, plain.RequiereAprobacion())
	})

	t.Run("unresolved promotion blocks route assignment", func(t *testing.T) {
		o, _, _ := validatedWithPromo(t)

		err := o.AssignRoute()

		require.Error(t, err)
		assert.IsType(t, &errs.PreconditionFailedError{}, err)
		assert.Equal(t, order.Validated, o.Status())
	})

	t.Run("approval unblocks routing and keeps the discount", func(t *testing.T) {
		o, promo, _ := validatedWithPromo(t)

		require.NoError(t, o.ApprovePromotions(now))

		assert.False(t, o.HasUnresolvedPromotions())
		require.NotNil(t, promo.AprobadoEn())
		assert.Equal(t, now, *promo.AprobadoEn())
		assert.Equal(t, "8", promo.PrecioFinal().String())
		require.NoError(t, o.AssignRoute())
		assert.Equal(t, order.RouteAssigned, o.Status())
	})

	t.Run("approval is idempotent and keeps the first timestamp", func(t *testing.T) {
		o, promo, _ := validatedWithPromo(t)
		later := now.Add(2 * time.Hour)

		require.NoError(t, o.ApprovePromotions(now))
		require.NoError(t, o.ApprovePromotions(later))

		assert.Equal(t, now, *promo.AprobadoEn())
	})

	t.Run("rejection snaps the price back and recomputes the total", func(t *testing.T) {
		o, promo, _ := validatedWithPromo(t)
		require.Equal(t, "20.5", o.Total().String())

		require.NoError(t, o.RejectPromotions())

		assert.Equal(t, "10", promo.PrecioFinal().String())
		assert.False(t, promo.RequiereAprobacion())
		assert.False(t, o.HasUnresolvedPromotions())
		assert.Equal(t, "24.5", o.Total().String())
		require.NoError(t, o.AssignRoute())
	})

	t.Run("rejection leaves warehouse resolutions untouched", func(t *testing.T) {
		o, promo, _ := validatedWithPromo(t)

		require.NoError(t, o.RejectPromotions())

		require.NotNil(t, promo.Resolution())
		assert.Equal(t, order.Approved, promo.Resolution().Status())
	})

	t.Run("per-item approval leaves siblings gated", func(t *testing.T) {
		promo1 := newTestItem(t, "SKU-001", 2, "10.00", "8.00")
		promo2 := newTestItem(t, "SKU-003", 1, "6.00", "5.00")
		o := newTestOrder(t, promo1, promo2)

		require.NoError(t, o.ApprovePromotionItem(promo1.ID(), now))

		assert.False(t, promo1.HasUnresolvedPromotion())
		assert.True(t, promo2.HasUnresolvedPromotion())
		assert.True(t, o.HasUnresolvedPromotions())
	})

	t.Run("per-item variants reject unknown items", func(t *testing.T) {
		o, _, _ := validatedWithPromo(t)

		err := o.ApprovePromotionItem(kernel.NewUUID(), now)

		require.Error(t, err)
		assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	})

	t.Run("reconciliation runs while validation is still pending", func(t *testing.T) {
		promo := newTestItem(t, "SKU-001", 2, "10.00", "8.00")
		o := newTestOrder(t, promo)

		require.NoError(t, o.ApprovePromotions(now))

		assert.Equal(t, order.PendingValidation, o.Status())
		assert.False(t, o.HasUnresolvedPromotions())
	})

	t.Run("reconciliation is rejected on terminal orders", func(t *testing.T) {
		promo := newTestItem(t, "SKU-001", 2, "10.00", "8.00")
		o := newTestOrder(t, promo)
		require.NoError(t, o.Cancel("cliente desistio"))

		require.Error(t, o.ApprovePromotions(now))
		require.Error(t, o.RejectPromotions())
	})
}

func TestOrder_Total(t *testing.T) {
	bodeguero := kernel.NewUUID()

	t.Run("uses requested quantities before validation", func(t *testing.T) {
		item1 := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		item2 := newTestItem(t, "SKU-002", 2, "4.50", "4.50")
		o := newTestOrder(t, item1, item2)

		assert.Equal(t, "59", o.Total().String())
	})

	t.Run("uses approved quantities after validation and rejected items contribute zero", func(t *testing.T) {
		kept := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		dropped := newTestItem(t, "SKU-002", 2, "4.50", "4.50")
		o := newTestOrder(t, kept, dropped)

		rejected, err := order.NewResolution(order.Rejected, 0, nil, "sin stock")
		require.NoError(t, err)
		require.NoError(t, o.ApplyValidation(bodeguero, "", []order.ItemResolution{
			fullApproval(t, kept),
			{ItemID: dropped.ID(), Resolution: rejected},
		}))

		assert.Equal(t, "50", o.Total().String())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel requires a motive", func(t *testing.T) {
		o := newTestOrder(t, newTestItem(t, "SKU-001", 1, "10.00", "10.00"))

		require.Error(t, o.Cancel(""))
		assert.Equal(t, order.PendingValidation, o.Status())
	})

	t.Run("cancel records the motive", func(t *testing.T) {
		o := newTestOrder(t, newTestItem(t, "SKU-001", 1, "10.00", "10.00"))

		require.NoError(t, o.Cancel("cliente desistio"))

		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, "cliente desistio", o.MotivoCancelacion())
	})

	t.Run("delivery cascade cancels an en_ruta order", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 1, "10.00", "10.00")
		o := newTestOrder(t, item)
		require.NoError(t, o.ApplyValidation(kernel.NewUUID(), "", []order.ItemResolution{fullApproval(t, item)}))
		require.NoError(t, o.AssignRoute())
		require.NoError(t, o.StartRoute())

		require.Error(t, o.Cancel("tarde"), "direct cancel is closed once en_ruta")
		require.NoError(t, o.CancelFromDelivery("vehiculo averiado"))
		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, "vehiculo averiado", o.MotivoCancelacion())
	})
}

func TestOrder_FullWorkflow(t *testing.T) {
	bodeguero := kernel.NewUUID()

	t.Run("happy path without adjustments", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)

		require.NoError(t, o.ApplyValidation(bodeguero, "", []order.ItemResolution{fullApproval(t, item)}))
		assert.Equal(t, order.Validated, o.Status())

		require.NoError(t, o.AssignRoute())
		require.NoError(t, o.StartRoute())
		require.NoError(t, o.MarkDelivered())

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("adjustment path with substitution", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		o := newTestOrder(t, item)

		substitute := mustSKU(t, "SKU-009", "otra marca")
		sub, err := order.NewResolution(order.Substituted, 5, &substitute, "sin stock de la marca")
		require.NoError(t, err)

		require.NoError(t, o.ApplyValidation(bodeguero, "sustituciones aplicadas", []order.ItemResolution{
			{ItemID: item.ID(), Resolution: sub},
		}))
		assert.Equal(t, order.WarehouseAdjusted, o.Status())

		require.NoError(t, o.AcceptAdjustments())
		assert.Equal(t, order.Validated, o.Status())
		require.NotNil(t, item.Resolution().SKUAprobado())
		assert.Equal(t, "SKU-009", item.Resolution().SKUAprobado().Codigo())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild a mid-lifecycle order", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")
		bodeguero := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "PED-2026-0042", kernel.NewUUID(), order.Credit,
			order.WarehouseAdjusted, time.Now(), []*order.Item{item},
			true, &bodeguero, "ajustes de stock", "", "", 7,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.WarehouseAdjusted, o.Status())
		assert.True(t, o.RequiereAprobacionCliente())
		assert.Equal(t, 7, o.Version())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		item := newTestItem(t, "SKU-001", 5, "10.00", "10.00")

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "PED-1", kernel.NewUUID(), order.Cash,
			order.Unknown, time.Now(), []*order.Item{item},
			false, nil, "", "", "", 0,
		)

		require.Error(t, err)
	})
}
