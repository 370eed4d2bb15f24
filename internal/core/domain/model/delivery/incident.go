package delivery

import (
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Severity grades an incident. Critical incidents trigger a supervisor
// notification as a fire-and-forget side effect.
type Severity int

const (
	// SeverityUnknown catches uninitialized Severity values.
	SeverityUnknown Severity = iota

	// Low (baja) severity.
	Low

	// Medium (media) severity.
	Medium

	// High (alta) severity.
	High

	// Critical (critica) severity. Notifies the supervisor.
	Critical
)

func severityStrings() map[Severity]string {
	return map[Severity]string{
		Low:      "baja",
		Medium:   "media",
		High:     "alta",
		Critical: "critica",
	}
}

// SeverityFromString parses a wire severity value, rejecting unknown values.
func SeverityFromString(s string) (Severity, error) {
	for sev, str := range severityStrings() {
		if str == s {
			return sev, nil
		}
	}
	return SeverityUnknown, errs.NewValueIsInvalidErrorWithCause("severidad",
		fmt.Errorf("%q is not a valid severity", s))
}

// String returns the Spanish wire value.
func (s Severity) String() string {
	if str, ok := severityStrings()[s]; ok {
		return str
	}
	return "desconocido"
}

// Validate rejects SeverityUnknown and out-of-range values.
func (s Severity) Validate() error {
	if _, ok := severityStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("severidad",
			fmt.Errorf("%d is not a valid severity", s))
	}
	return nil
}

// Incident is an issue reported against a delivery. Resolution is atomic:
// resuelto_en and resolucion are set together, exactly once.
type Incident struct {
	id             kernel.UUID
	tipoIncidencia string
	severidad      Severity
	descripcion    string
	reportadoEn    time.Time
	resueltoEn     *time.Time
	resolucion     string
}

// NewIncident creates an unresolved incident.
func NewIncident(
	id kernel.UUID,
	tipoIncidencia string,
	severidad Severity,
	descripcion string,
	reportadoEn time.Time,
) (*Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if tipoIncidencia == "" {
		return nil, errs.NewValueIsRequiredError("tipo_incidencia")
	}
	if err := severidad.Validate(); err != nil {
		return nil, err
	}
	if descripcion == "" {
		return nil, errs.NewValueIsRequiredError("descripcion")
	}

	return &Incident{
		id:             id,
		tipoIncidencia: tipoIncidencia,
		severidad:      severidad,
		descripcion:    descripcion,
		reportadoEn:    reportadoEn,
	}, nil
}

// RestoreIncident reconstructs an incident from persistence.
func RestoreIncident(
	id kernel.UUID,
	tipoIncidencia string,
	severidad Severity,
	descripcion string,
	reportadoEn time.Time,
	resueltoEn *time.Time,
	resolucion string,
) (*Incident, error) {
	inc, err := NewIncident(id, tipoIncidencia, severidad, descripcion, reportadoEn)
	if err != nil {
		return nil, err
	}
	if resueltoEn != nil && resolucion == "" {
		return nil, errs.NewValueIsRequiredError("resolucion")
	}
	inc.resueltoEn = resueltoEn
	inc.resolucion = resolucion
	return inc, nil
}

// ID returns the incident identifier.
func (i *Incident) ID() kernel.UUID { return i.id }

// TipoIncidencia returns the free-form incident classification.
func (i *Incident) TipoIncidencia() string { return i.tipoIncidencia }

// Severidad returns the incident grade.
func (i *Incident) Severidad() Severity { return i.severidad }

// Descripcion returns the reporter's description.
func (i *Incident) Descripcion() string { return i.descripcion }

// ReportadoEn returns the report timestamp.
func (i *Incident) ReportadoEn() time.Time { return i.reportadoEn }

// ResueltoEn returns the resolution timestamp, nil while open.
func (i *Incident) ResueltoEn() *time.Time { return i.resueltoEn }

// Resolucion returns the resolution text, empty while open.
func (i *Incident) Resolucion() string { return i.resolucion }

// IsResolved reports whether the incident was closed.
func (i *Incident) IsResolved() bool { return i.resueltoEn != nil }

// IsCritical reports whether the incident must notify the supervisor.
func (i *Incident) IsCritical() bool { return i.severidad == Critical }

// resolve closes the incident, setting timestamp and text together.
func (i *Incident) resolve(resolucion string, now time.Time) error {
	if resolucion == "" {
		return errs.NewValueIsRequiredError("resolucion")
	}
	if i.resueltoEn != nil {
		return errs.NewAlreadyResolvedError(i.id.String())
	}
	i.resueltoEn = &now
	i.resolucion = resolucion
	return nil
}
