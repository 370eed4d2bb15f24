package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrReportIncidentCommandIsNotConstructed = errors.New(
	"ReportIncidentCommand must be created via NewReportIncidentCommand constructor",
)

// ReportIncidentCommand represents reporting an issue against a delivery.
// Severidad carries the wire value (baja, media, alta, critica); a critica
// incident triggers a supervisor notification after commit.
type ReportIncidentCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	deliveryID     kernel.UUID
	tipoIncidencia string
	severidad      delivery.Severity
	descripcion    string

	guard guard.ConstructorGuard
}

// NewReportIncidentCommand creates a command to report an incident.
// Carriers report from the street; supervisors may file on their behalf.
func NewReportIncidentCommand(
	a actor.Actor,
	deliveryID kernel.UUID,
	tipoIncidencia string,
	severidad string,
	descripcion string,
) (ReportIncidentCommand, error) {
	cmd := ReportIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
		cmd.setTipoIncidencia(tipoIncidencia),
		cmd.setSeveridad(severidad),
		cmd.setDescripcion(descripcion),
	); err != nil {
		return ReportIncidentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIncidentCommand) Validate() error {
	return c.guard.Validate(ErrReportIncidentCommandIsNotConstructed)
}

// Actor returns the caller reporting the incident.
func (c ReportIncidentCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the delivery the incident is reported against.
func (c ReportIncidentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TipoIncidencia returns the incident category.
func (c ReportIncidentCommand) TipoIncidencia() string {
	return c.tipoIncidencia
}

// Severidad returns the incident severity.
func (c ReportIncidentCommand) Severidad() delivery.Severity {
	return c.severidad
}

// Descripcion returns what happened.
func (c ReportIncidentCommand) Descripcion() string {
	return c.descripcion
}

func (c *ReportIncidentCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleTransportista, actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ReportIncidentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReportIncidentCommand) setTipoIncidencia(tipo string) error {
	if tipo == "" {
		return errs.NewValueIsRequiredError("tipo_incidencia")
	}

	c.tipoIncidencia = tipo
	return nil
}

func (c *ReportIncidentCommand) setSeveridad(severidad string) error {
	parsed, err := delivery.SeverityFromString(severidad)
	if err != nil {
		return err
	}

	c.severidad = parsed
	return nil
}

func (c *ReportIncidentCommand) setDescripcion(descripcion string) error {
	if descripcion == "" {
		return errs.NewValueIsRequiredError("descripcion")
	}

	c.descripcion = descripcion
	return nil
}
