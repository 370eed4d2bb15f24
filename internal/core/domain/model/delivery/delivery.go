package delivery

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Coordinates is the last known drop-off position reported by the driver.
type Coordinates struct {
	Latitud  float64
	Longitud float64
}

// Delivery is the aggregate root for one routed order's trip. It owns its
// evidence records (append-only) and incidents; both are only mutated through
// aggregate methods.
//
// A delivery is 1:1 with an order that reached routing. Order-side effects of
// terminal delivery states (closing, reverting, cascading cancellation) are
// wired by the application layer inside one transaction; this type only
// reports what happened.
type Delivery struct {
	id                kernel.UUID
	pedidoID          kernel.UUID
	ruteroLogisticoID kernel.UUID
	transportistaID   kernel.UUID
	status            Status
	asignadoEn        time.Time
	salidaRutaEn      *time.Time
	entregadoEn       *time.Time
	motivoNoEntrega   string
	motivoParcial     string
	motivoCancelacion string
	observaciones     string
	ubicacion         *Coordinates
	evidences         []*Evidence
	incidents         []*Incident

	version       int
	isConstructed bool
}

// NewDelivery creates a pending delivery for a routed order.
func NewDelivery(
	id kernel.UUID,
	pedidoID kernel.UUID,
	ruteroLogisticoID kernel.UUID,
	transportistaID kernel.UUID,
	asignadoEn time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		pedidoID.Validate(),
		ruteroLogisticoID.Validate(),
		transportistaID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                id,
		pedidoID:          pedidoID,
		ruteroLogisticoID: ruteroLogisticoID,
		transportistaID:   transportistaID,
		status:            Pending,
		asignadoEn:        asignadoEn,
		isConstructed:     true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	pedidoID kernel.UUID,
	ruteroLogisticoID kernel.UUID,
	transportistaID kernel.UUID,
	status Status,
	asignadoEn time.Time,
	salidaRutaEn *time.Time,
	entregadoEn *time.Time,
	motivoNoEntrega string,
	motivoParcial string,
	motivoCancelacion string,
	observaciones string,
	ubicacion *Coordinates,
	evidences []*Evidence,
	incidents []*Incident,
	version int,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		pedidoID.Validate(),
		ruteroLogisticoID.Validate(),
		transportistaID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                id,
		pedidoID:          pedidoID,
		ruteroLogisticoID: ruteroLogisticoID,
		transportistaID:   transportistaID,
		status:            status,
		asignadoEn:        asignadoEn,
		salidaRutaEn:      salidaRutaEn,
		entregadoEn:       entregadoEn,
		motivoNoEntrega:   motivoNoEntrega,
		motivoParcial:     motivoParcial,
		motivoCancelacion: motivoCancelacion,
		observaciones:     observaciones,
		ubicacion:         ubicacion,
		evidences:         evidences,
		incidents:         incidents,
		version:           version,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// PedidoID returns the routed order's identifier.
func (d *Delivery) PedidoID() kernel.UUID { return d.pedidoID }

// RuteroLogisticoID returns the logistics planner who assigned the route.
func (d *Delivery) RuteroLogisticoID() kernel.UUID { return d.ruteroLogisticoID }

// TransportistaID returns the driver's identifier.
func (d *Delivery) TransportistaID() kernel.UUID { return d.transportistaID }

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status { return d.status }

// AsignadoEn returns the route assignment timestamp.
func (d *Delivery) AsignadoEn() time.Time { return d.asignadoEn }

// SalidaRutaEn returns the departure timestamp, nil before en_ruta.
func (d *Delivery) SalidaRutaEn() *time.Time { return d.salidaRutaEn }

// EntregadoEn returns the hand-off timestamp, nil unless completed.
func (d *Delivery) EntregadoEn() *time.Time { return d.entregadoEn }

// MotivoNoEntrega returns the failed-attempt motive, empty unless NotDelivered.
func (d *Delivery) MotivoNoEntrega() string { return d.motivoNoEntrega }

// MotivoParcial returns the discrepancy motive, empty unless CompletedPartial.
func (d *Delivery) MotivoParcial() string { return d.motivoParcial }

// MotivoCancelacion returns the cancellation motive, empty unless Canceled.
func (d *Delivery) MotivoCancelacion() string { return d.motivoCancelacion }

// Observaciones returns the driver's free-text notes.
func (d *Delivery) Observaciones() string { return d.observaciones }

// Ubicacion returns the last known drop-off coordinates, nil if never reported.
func (d *Delivery) Ubicacion() *Coordinates { return d.ubicacion }

// Evidences returns the append-only evidence records in insertion order.
func (d *Delivery) Evidences() []*Evidence { return d.evidences }

// Incidents returns the reported incidents in insertion order.
func (d *Delivery) Incidents() []*Incident { return d.incidents }

// Version returns the optimistic-lock version restored from persistence.
func (d *Delivery) Version() int { return d.version }

// Incident returns the owned incident with the given id, or an ObjectNotFound error.
func (d *Delivery) Incident(incidentID kernel.UUID) (*Incident, error) {
	for _, inc := range d.incidents {
		if inc.ID().IsEqual(incidentID) {
			return inc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("incidenciaId", incidentID.String())
}

// HasHandOffProof reports whether at least one photo or signature evidence
// exists. Required before a full completion.
func (d *Delivery) HasHandOffProof() bool {
	for _, ev := range d.evidences {
		if ev.Tipo().ProvesHandOff() {
			return true
		}
	}
	return false
}

// StartRoute records the driver's departure.
func (d *Delivery) StartRoute(now time.Time) error {
	newStatus, err := d.status.StartRoute()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.salidaRutaEn = &now
	return nil
}

// Complete closes the delivery as entregado_completo. At least one photo or
// signature evidence must exist; the order's derived entregado transition is
// fired by the caller.
func (d *Delivery) Complete(now time.Time, observaciones string, ubicacion *Coordinates) error {
	if d.status == EnRoute && !d.HasHandOffProof() {
		return errs.NewPreconditionFailedError("evidencias",
			"a foto or firma evidence is required before completing the delivery")
	}
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.entregadoEn = &now
	d.observaciones = observaciones
	d.ubicacion = ubicacion
	return nil
}

// CompletePartial closes the delivery as entregado_parcial with a mandatory
// discrepancy motive. The order is still closed; the discrepancy is recorded,
// not re-opened.
func (d *Delivery) CompletePartial(
	now time.Time,
	motivoParcial string,
	observaciones string,
	ubicacion *Coordinates,
) error {
	if motivoParcial == "" {
		return errs.NewValueIsRequiredError("motivo_parcial")
	}
	newStatus, err := d.status.CompletePartial()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.entregadoEn = &now
	d.motivoParcial = motivoParcial
	d.observaciones = observaciones
	d.ubicacion = ubicacion
	return nil
}

// MarkNotDelivered closes the delivery as no_entregado. The order is not
// closed; a supervisor re-routes or cancels it as a manual follow-up.
func (d *Delivery) MarkNotDelivered(motivoNoEntrega string, ubicacion *Coordinates) error {
	if motivoNoEntrega == "" {
		return errs.NewValueIsRequiredError("motivo_no_entrega")
	}
	newStatus, err := d.status.MarkNotDelivered()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.motivoNoEntrega = motivoNoEntrega
	d.ubicacion = ubicacion
	return nil
}

// Cancel calls the delivery off before hand-off. The caller cascades the
// cancellation onto the order.
func (d *Delivery) Cancel(motivo string) error {
	if motivo == "" {
		return errs.NewValueIsRequiredError("motivo")
	}
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.motivoCancelacion = motivo
	return nil
}

// AddEvidence appends an evidence record. Allowed in any non-terminal state;
// evidence is never edited or removed afterwards.
func (d *Delivery) AddEvidence(ev *Evidence) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidTransitionError("entrega", d.status.String(), "agregar_evidencia")
	}
	d.evidences = append(d.evidences, ev)
	return nil
}

// ReportIncident appends an incident. Allowed in any state, terminal included:
// issues can surface after the trip closed. Returns whether the incident is
// critical so the caller can notify the supervisor without blocking.
func (d *Delivery) ReportIncident(inc *Incident) (critical bool) {
	d.incidents = append(d.incidents, inc)
	return inc.IsCritical()
}

// ResolveIncident closes an incident atomically: resuelto_en and resolucion
// transition together. Resolving twice fails with AlreadyResolved.
func (d *Delivery) ResolveIncident(incidentID kernel.UUID, resolucion string, now time.Time) error {
	inc, err := d.Incident(incidentID)
	if err != nil {
		return err
	}
	return inc.resolve(resolucion, now)
}
