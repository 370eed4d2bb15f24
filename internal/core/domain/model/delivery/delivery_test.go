package delivery_test

import (
	"testing"
	"time"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	assignedAt = time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	departedAt = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	arrivedAt  = time.Date(2026, 8, 30, 11, 30, 0, 0, time.UTC)
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignedAt)
	require.NoError(t, err)
	return d
}

func enRouteDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d := newTestDelivery(t)
	require.NoError(t, d.StartRoute(departedAt))
	return d
}

func newEvidence(t *testing.T, tipo delivery.EvidenceType) *delivery.Evidence {
	t.Helper()
	ev, err := delivery.NewEvidence(kernel.NewUUID(), tipo,
		"s3://entregas/"+kernel.NewUUID().String(), "image/jpeg", "")
	require.NoError(t, err)
	return ev
}

func newIncident(t *testing.T, severidad delivery.Severity) *delivery.Incident {
	t.Helper()
	inc, err := delivery.NewIncident(kernel.NewUUID(), "demora",
		severidad, "trafico en la via principal", departedAt)
	require.NoError(t, err)
	return inc
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Equal(t, assignedAt, d.AsignadoEn())
		assert.Nil(t, d.SalidaRutaEn())
		assert.Nil(t, d.EntregadoEn())
		assert.Empty(t, d.Evidences())
		assert.Empty(t, d.Incidents())
	})

	t.Run("should fail with unconstructed ids", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := delivery.NewDelivery(invalidID, kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), assignedAt)

		require.Error(t, err)
	})

	t.Run("zero value should fail Validate", func(t *testing.T) {
		var d delivery.Delivery
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, d.Validate())
	})
}

func TestDelivery_StartRoute(t *testing.T) {
	t.Run("should depart and stamp salida_ruta_en", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.StartRoute(departedAt)

		require.NoError(t, err)
		assert.Equal(t, delivery.EnRoute, d.Status())
		require.NotNil(t, d.SalidaRutaEn())
		assert.Equal(t, departedAt, *d.SalidaRutaEn())
	})

	t.Run("should not depart twice", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.StartRoute(departedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestDelivery_Complete(t *testing.T) {
	coords := &delivery.Coordinates{Latitud: 4.60971, Longitud: -74.08175}

	t.Run("should require a foto or firma evidence", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.Complete(arrivedAt, "", coords)

		require.Error(t, err)
		assert.IsType(t, &errs.PreconditionFailedError{}, err)
		assert.Contains(t, err.Error(), "foto or firma")
		assert.Equal(t, delivery.EnRoute, d.Status())
	})

	t.Run("documento evidence alone does not prove hand-off", func(t *testing.T) {
		d := enRouteDelivery(t)
		require.NoError(t, d.AddEvidence(newEvidence(t, delivery.Document)))

		err := d.Complete(arrivedAt, "", coords)

		require.Error(t, err)
		assert.IsType(t, &errs.PreconditionFailedError{}, err)
	})

	t.Run("should complete with photo evidence", func(t *testing.T) {
		d := enRouteDelivery(t)
		require.NoError(t, d.AddEvidence(newEvidence(t, delivery.Photo)))

		err := d.Complete(arrivedAt, "entregado en porteria", coords)

		require.NoError(t, err)
		assert.Equal(t, delivery.CompletedFull, d.Status())
		require.NotNil(t, d.EntregadoEn())
		assert.Equal(t, arrivedAt, *d.EntregadoEn())
		assert.Equal(t, "entregado en porteria", d.Observaciones())
		assert.Equal(t, coords, d.Ubicacion())
		assert.True(t, d.Status().IsCompleted())
	})

	t.Run("should complete with signature evidence", func(t *testing.T) {
		d := enRouteDelivery(t)
		require.NoError(t, d.AddEvidence(newEvidence(t, delivery.Signature)))

		require.NoError(t, d.Complete(arrivedAt, "", nil))
	})

	t.Run("should not complete from pendiente", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Complete(arrivedAt, "", nil)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestDelivery_CompletePartial(t *testing.T) {
	t.Run("should require a motive", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.CompletePartial(arrivedAt, "", "", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "motivo_parcial")
		assert.Equal(t, delivery.EnRoute, d.Status())
	})

	t.Run("should close as entregado_parcial without hand-off proof", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.CompletePartial(arrivedAt, "faltaron 2 cajas", "", nil)

		require.NoError(t, err)
		assert.Equal(t, delivery.CompletedPartial, d.Status())
		assert.Equal(t, "faltaron 2 cajas", d.MotivoParcial())
		assert.True(t, d.Status().IsCompleted())
	})
}

func TestDelivery_MarkNotDelivered(t *testing.T) {
	t.Run("should require a motive", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.MarkNotDelivered("", nil)

		require.Error(t, err)
		assert.Equal(t, delivery.EnRoute, d.Status())
	})

	t.Run("should close as no_entregado without completing", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.MarkNotDelivered("cliente ausente", nil)

		require.NoError(t, err)
		assert.Equal(t, delivery.NotDelivered, d.Status())
		assert.Equal(t, "cliente ausente", d.MotivoNoEntrega())
		assert.Nil(t, d.EntregadoEn())
		assert.True(t, d.Status().IsTerminal())
		assert.False(t, d.Status().IsCompleted())
	})

	t.Run("should not mark from pendiente", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.MarkNotDelivered("cliente ausente", nil)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("should cancel from pendiente and en_ruta", func(t *testing.T) {
		pending := newTestDelivery(t)
		require.NoError(t, pending.Cancel("pedido cancelado por el cliente"))
		assert.Equal(t, delivery.Canceled, pending.Status())

		enRoute := enRouteDelivery(t)
		require.NoError(t, enRoute.Cancel("vehiculo averiado"))
		assert.Equal(t, delivery.Canceled, enRoute.Status())
		assert.Equal(t, "vehiculo averiado", enRoute.MotivoCancelacion())
	})

	t.Run("should require a motive", func(t *testing.T) {
		d := newTestDelivery(t)
		require.Error(t, d.Cancel(""))
	})

	t.Run("should not cancel a terminal delivery", func(t *testing.T) {
		d := enRouteDelivery(t)
		require.NoError(t, d.MarkNotDelivered("cliente ausente", nil))

		err := d.Cancel("tarde")

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
	})
}

func TestDelivery_Evidence(t *testing.T) {
	t.Run("should append in any non-terminal state", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AddEvidence(newEvidence(t, delivery.Photo)))

		require.NoError(t, d.StartRoute(departedAt))
		require.NoError(t, d.AddEvidence(newEvidence(t, delivery.Audio)))

		assert.Len(t, d.Evidences(), 2)
	})

	t.Run("should reject evidence on terminal deliveries", func(t *testing.T) {
		d := enRouteDelivery(t)
		require.NoError(t, d.AddEvidence(newEvidence(t, delivery.Photo)))
		require.NoError(t, d.Complete(arrivedAt, "", nil))

		err := d.AddEvidence(newEvidence(t, delivery.Photo))

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
		assert.Len(t, d.Evidences(), 1)
	})

	t.Run("evidence requires a url", func(t *testing.T) {
		_, err := delivery.NewEvidence(kernel.NewUUID(), delivery.Photo, "", "image/jpeg", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "url")
	})
}

func TestDelivery_Incidents(t *testing.T) {
	resolvedAt := time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)

	t.Run("should report in any state including terminal", func(t *testing.T) {
		d := enRouteDelivery(t)
		require.NoError(t, d.MarkNotDelivered("cliente ausente", nil))

		critical := d.ReportIncident(newIncident(t, delivery.Low))

		assert.False(t, critical)
		assert.Len(t, d.Incidents(), 1)
	})

	t.Run("critical incidents flag the supervisor notification", func(t *testing.T) {
		d := enRouteDelivery(t)

		critical := d.ReportIncident(newIncident(t, delivery.Critical))

		assert.True(t, critical)
	})

	t.Run("resolution sets timestamp and text together", func(t *testing.T) {
		d := enRouteDelivery(t)
		inc := newIncident(t, delivery.Medium)
		d.ReportIncident(inc)

		err := d.ResolveIncident(inc.ID(), "se desvio la ruta", resolvedAt)

		require.NoError(t, err)
		assert.True(t, inc.IsResolved())
		require.NotNil(t, inc.ResueltoEn())
		assert.Equal(t, resolvedAt, *inc.ResueltoEn())
		assert.Equal(t, "se desvio la ruta", inc.Resolucion())
	})

	t.Run("resolving twice fails with AlreadyResolved", func(t *testing.T) {
		d := enRouteDelivery(t)
		inc := newIncident(t, delivery.Medium)
		d.ReportIncident(inc)
		require.NoError(t, d.ResolveIncident(inc.ID(), "se desvio la ruta", resolvedAt))

		err := d.ResolveIncident(inc.ID(), "otra resolucion", resolvedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.AlreadyResolvedError{}, err)
		assert.Equal(t, "se desvio la ruta", inc.Resolucion(), "first resolution is preserved")
	})

	t.Run("resolution requires non-empty text", func(t *testing.T) {
		d := enRouteDelivery(t)
		inc := newIncident(t, delivery.Medium)
		d.ReportIncident(inc)

		err := d.ResolveIncident(inc.ID(), "", resolvedAt)

		require.Error(t, err)
		assert.False(t, inc.IsResolved())
	})

	t.Run("resolving an unknown incident fails", func(t *testing.T) {
		d := enRouteDelivery(t)

		err := d.ResolveIncident(kernel.NewUUID(), "resolucion", resolvedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	})

	t.Run("restore rejects a resolved incident without text", func(t *testing.T) {
		_, err := delivery.RestoreIncident(kernel.NewUUID(), "demora", delivery.Low,
			"descripcion", departedAt, &resolvedAt, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolucion")
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending, delivery.EnRoute, delivery.CompletedFull,
			delivery.CompletedPartial, delivery.NotDelivered, delivery.Canceled,
		} {
			parsed, err := delivery.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := delivery.StatusFromString("entregado")
		require.Error(t, err)
	})
}
