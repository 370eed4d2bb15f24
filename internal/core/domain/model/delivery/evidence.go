package delivery

import (
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// EvidenceType classifies a piece of delivery evidence.
type EvidenceType int

const (
	// EvidenceUnknown catches uninitialized EvidenceType values.
	EvidenceUnknown EvidenceType = iota

	// Photo (foto) is a picture taken at the drop-off point.
	Photo

	// Signature (firma) is the receiver's signature capture.
	Signature

	// Document (documento) is a scanned delivery note or similar.
	Document

	// Audio is a voice note.
	Audio

	// Other (otro) is anything else worth attaching.
	Other
)

func evidenceTypeStrings() map[EvidenceType]string {
	return map[EvidenceType]string{
		Photo:     "foto",
		Signature: "firma",
		Document:  "documento",
		Audio:     "audio",
		Other:     "otro",
	}
}

// EvidenceTypeFromString parses a wire evidence type, rejecting unknown values.
func EvidenceTypeFromString(s string) (EvidenceType, error) {
	for t, str := range evidenceTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return EvidenceUnknown, errs.NewValueIsInvalidErrorWithCause("tipo",
		fmt.Errorf("%q is not a valid evidence type", s))
}

// String returns the Spanish wire value.
func (t EvidenceType) String() string {
	if s, ok := evidenceTypeStrings()[t]; ok {
		return s
	}
	return "desconocido"
}

// Validate rejects EvidenceUnknown and out-of-range values.
func (t EvidenceType) Validate() error {
	if _, ok := evidenceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tipo",
			fmt.Errorf("%d is not a valid evidence type", t))
	}
	return nil
}

// ProvesHandOff reports whether the evidence type counts toward the
// photo-or-signature requirement of a complete delivery.
func (t EvidenceType) ProvesHandOff() bool {
	return t == Photo || t == Signature
}

// Evidence is an append-only attachment owned by a delivery. Once created it
// is never edited or deleted; the url is an opaque reference into external
// storage, never dereferenced by this engine.
type Evidence struct {
	id          kernel.UUID
	tipo        EvidenceType
	url         string
	mimeType    string
	descripcion string
}

// NewEvidence creates an evidence record.
func NewEvidence(
	id kernel.UUID,
	tipo EvidenceType,
	url string,
	mimeType string,
	descripcion string,
) (*Evidence, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := tipo.Validate(); err != nil {
		return nil, err
	}
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}

	return &Evidence{
		id:          id,
		tipo:        tipo,
		url:         url,
		mimeType:    mimeType,
		descripcion: descripcion,
	}, nil
}

// ID returns the evidence identifier.
func (e *Evidence) ID() kernel.UUID { return e.id }

// Tipo returns the evidence classification.
func (e *Evidence) Tipo() EvidenceType { return e.tipo }

// URL returns the opaque storage reference.
func (e *Evidence) URL() string { return e.url }

// MimeType returns the declared content type of the attachment.
func (e *Evidence) MimeType() string { return e.mimeType }

// Descripcion returns the free-text description.
func (e *Evidence) Descripcion() string { return e.descripcion }
