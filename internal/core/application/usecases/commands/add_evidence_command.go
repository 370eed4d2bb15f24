package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/actor"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrAddEvidenceCommandIsNotConstructed = errors.New(
	"AddEvidenceCommand must be created via NewAddEvidenceCommand constructor",
)

// AddEvidenceCommand represents the carrier attaching a proof record to an
// active delivery. Tipo carries the wire value (foto, firma, documento,
// audio, otro); a foto or firma on file unlocks full completion.
type AddEvidenceCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	deliveryID  kernel.UUID
	tipo        delivery.EvidenceType
	url         string
	mimeType    string
	descripcion string

	guard guard.ConstructorGuard
}

// NewAddEvidenceCommand creates a command to attach evidence.
// Restricted to the transportista role.
func NewAddEvidenceCommand(
	a actor.Actor,
	deliveryID kernel.UUID,
	tipo string,
	url string,
	mimeType string,
	descripcion string,
) (AddEvidenceCommand, error) {
	cmd := AddEvidenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setDeliveryID(deliveryID),
		cmd.setTipo(tipo),
		cmd.setURL(url),
	); err != nil {
		return AddEvidenceCommand{}, err
	}
	cmd.mimeType = mimeType
	cmd.descripcion = descripcion

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAddEvidenceCommandIsNotConstructed)
}

// Actor returns the carrier attaching the evidence.
func (c AddEvidenceCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryID returns the delivery the evidence belongs to.
func (c AddEvidenceCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Tipo returns the evidence type.
func (c AddEvidenceCommand) Tipo() delivery.EvidenceType {
	return c.tipo
}

// URL returns the storage reference of the attachment.
func (c AddEvidenceCommand) URL() string {
	return c.url
}

// MimeType returns the attachment's media type when reported.
func (c AddEvidenceCommand) MimeType() string {
	return c.mimeType
}

// Descripcion returns the free-form description.
func (c AddEvidenceCommand) Descripcion() string {
	return c.descripcion
}

func (c *AddEvidenceCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.Require(actor.RoleTransportista); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *AddEvidenceCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AddEvidenceCommand) setTipo(tipo string) error {
	parsed, err := delivery.EvidenceTypeFromString(tipo)
	if err != nil {
		return err
	}

	c.tipo = parsed
	return nil
}

func (c *AddEvidenceCommand) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}

	c.url = url
	return nil
}
