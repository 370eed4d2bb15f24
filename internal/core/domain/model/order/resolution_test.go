package order_test

import (
	"testing"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSKU(t *testing.T, codigo, nombre string) order.SKURef {
	t.Helper()
	sku, err := order.NewSKURef(codigo, nombre)
	require.NoError(t, err)
	return sku
}

func TestNewResolution(t *testing.T) {
	t.Run("should create approved resolution", func(t *testing.T) {
		r, err := order.NewResolution(order.Approved, 5, nil, "stock disponible")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, order.Approved, r.Status())
		assert.Equal(t, 5, r.CantidadAprobada())
		assert.Nil(t, r.SKUAprobado())
		assert.Equal(t, "stock disponible", r.Motivo())
	})

	t.Run("should require motivo", func(t *testing.T) {
		_, err := order.NewResolution(order.Approved, 5, nil, "")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "motivo")
	})

	t.Run("should require substitute SKU for sustituido", func(t *testing.T) {
		_, err := order.NewResolution(order.Substituted, 3, nil, "sin stock de la marca")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sku_aprobado_id")
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewResolution(order.Approved, -2, nil, "motivo")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-2 is negative")
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.NewResolution(order.ResolutionUnknown, 1, nil, "motivo")
		require.Error(t, err)
	})

	t.Run("zero value should fail Validate", func(t *testing.T) {
		var r order.Resolution
		require.Error(t, r.Validate())
	})
}

func TestResolution_ValidateAgainst(t *testing.T) {
	requested := func(t *testing.T) order.SKURef { return mustSKU(t, "SKU-001", "Harina 1kg") }
	substitute := func(t *testing.T) *order.SKURef {
		s := mustSKU(t, "SKU-002", "Harina 1kg otra marca")
		return &s
	}

	t.Run("aprobado accepts quantities up to the requested amount", func(t *testing.T) {
		for _, qty := range []int{1, 3, 5} {
			r, err := order.NewResolution(order.Approved, qty, nil, "ok")
			require.NoError(t, err)

			reason, ok := r.ValidateAgainst(5, requested(t))
			assert.True(t, ok, "qty %d: %s", qty, reason)
		}
	})

	t.Run("aprobado rejects zero and over-approval", func(t *testing.T) {
		for _, qty := range []int{0, 6, 10} {
			r, err := order.NewResolution(order.Approved, qty, nil, "ok")
			require.NoError(t, err)

			reason, ok := r.ValidateAgainst(5, requested(t))
			assert.False(t, ok, "qty %d should fail", qty)
			assert.Contains(t, reason, "must be in (0, 5] for aprobado")
		}
	})

	t.Run("aprobado_parcial requires strictly less than requested", func(t *testing.T) {
		r, err := order.NewResolution(order.PartiallyApproved, 4, nil, "stock parcial")
		require.NoError(t, err)
		_, ok := r.ValidateAgainst(5, requested(t))
		assert.True(t, ok)
	})

	t.Run("aprobado_parcial at the full quantity must use aprobado", func(t *testing.T) {
		r, err := order.NewResolution(order.PartiallyApproved, 5, nil, "stock parcial")
		require.NoError(t, err)

		reason, ok := r.ValidateAgainst(5, requested(t))
		assert.False(t, ok)
		assert.Contains(t, reason, "granting the full quantity must use aprobado")
	})

	t.Run("sustituido requires a distinct SKU", func(t *testing.T) {
		same := requested(t)
		r, err := order.NewResolution(order.Substituted, 3, &same, "cambio de marca")
		require.NoError(t, err)

		reason, ok := r.ValidateAgainst(5, requested(t))
		assert.False(t, ok)
		assert.Contains(t, reason, "must differ from the requested SKU")
	})

	t.Run("sustituido accepts a distinct SKU within quantity bounds", func(t *testing.T) {
		r, err := order.NewResolution(order.Substituted, 5, substitute(t), "cambio de marca")
		require.NoError(t, err)

		_, ok := r.ValidateAgainst(5, requested(t))
		assert.True(t, ok)
	})

	t.Run("sustituido rejects over-approval", func(t *testing.T) {
		r, err := order.NewResolution(order.Substituted, 6, substitute(t), "cambio de marca")
		require.NoError(t, err)

		reason, ok := r.ValidateAgainst(5, requested(t))
		assert.False(t, ok)
		assert.Contains(t, reason, "must be in (0, 5] for sustituido")
	})

	t.Run("rechazado requires zero quantity", func(t *testing.T) {
		r, err := order.NewResolution(order.Rejected, 0, nil, "sin stock")
		require.NoError(t, err)
		_, ok := r.ValidateAgainst(5, requested(t))
		assert.True(t, ok)

		r, err = order.NewResolution(order.Rejected, 2, nil, "sin stock")
		require.NoError(t, err)
		reason, ok := r.ValidateAgainst(5, requested(t))
		assert.False(t, ok)
		assert.Contains(t, reason, "must be 0 or absent for rechazado")
	})

	t.Run("unconstructed resolution fails", func(t *testing.T) {
		var r order.Resolution
		_, ok := r.ValidateAgainst(5, requested(t))
		assert.False(t, ok)
	})
}

func TestResolution_IsFullApproval(t *testing.T) {
	t.Run("full approval only at the exact requested quantity", func(t *testing.T) {
		full, err := order.NewResolution(order.Approved, 5, nil, "ok")
		require.NoError(t, err)
		assert.True(t, full.IsFullApproval(5))

		reduced, err := order.NewResolution(order.Approved, 3, nil, "ok")
		require.NoError(t, err)
		assert.False(t, reduced.IsFullApproval(5))
	})

	t.Run("substitution is never a full approval", func(t *testing.T) {
		s := mustSKU(t, "SKU-002", "otra marca")
		r, err := order.NewResolution(order.Substituted, 5, &s, "cambio")
		require.NoError(t, err)
		assert.False(t, r.IsFullApproval(5))
	})
}

func TestResolutionStatusFromString(t *testing.T) {
	t.Run("should round-trip valid values", func(t *testing.T) {
		for _, s := range []order.ResolutionStatus{
			order.Approved, order.PartiallyApproved, order.Substituted, order.Rejected,
		} {
			parsed, err := order.ResolutionStatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := order.ResolutionStatusFromString("pendiente")
		require.Error(t, err)
	})
}
