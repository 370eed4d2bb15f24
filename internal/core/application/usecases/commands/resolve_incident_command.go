package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrResolveIncidentCommandIsNotConstructed = errors.New(
	"ResolveIncidentCommand must be created via NewResolveIncidentCommand constructor",
)

// ResolveIncidentCommand represents a supervisor closing an open incident.
// Resolution happens once; a second attempt fails with AlreadyResolved.
type ResolveIncidentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	deliveryID kernel.UUID
	incidentID kernel.UUID
	resolucion string

	guard guard.ConstructorGuard
}

// NewResolveIncidentCommand creates a command to resolve an incident.
// Restricted to the supervisor role; the resolution text is mandatory.
func NewResolveIncidentCommand(
	a actor.Actor, deliveryID, incidentID kernel.UUID, resolucion string,
) (ResolveIncidentCommand, error) {
	cmd := ResolveIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
		cmd.setIncidentID(incidentID),
		cmd.setResolucion(resolucion),
	); err != nil {
		return ResolveIncidentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveIncidentCommand) Validate() error {
	return c.guard.Validate(ErrResolveIncidentCommandIsNotConstructed)
}

// Actor returns the supervisor resolving the incident.
func (c ResolveIncidentCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the delivery owning the incident.
func (c ResolveIncidentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// IncidentID returns the incident to resolve.
func (c ResolveIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

// Resolucion returns the resolution text.
func (c ResolveIncidentCommand) Resolucion() string {
	return c.resolucion
}

func (c *ResolveIncidentCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleSupervisor); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ResolveIncidentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ResolveIncidentCommand) setIncidentID(incidentID kernel.UUID) error {
	if err := incidentID.Validate(); err != nil {
		return err
	}

	c.incidentID = incidentID
	return nil
}

func (c *ResolveIncidentCommand) setResolucion(resolucion string) error {
	if resolucion == "" {
		return errs.NewValueIsRequiredError("resolucion")
	}

	c.resolucion = resolucion
	return nil
}
