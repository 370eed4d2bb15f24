// Package deliveryrepo implements delivery persistence: DTO mapping for the
// delivery aggregate with its evidence and incident rows, and the GORM
// repository.
package deliveryrepo

import (
	"time"

	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database row of a delivery aggregate root.
type DeliveryDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PedidoID          uuid.UUID  `gorm:"column:pedido_id;type:uuid;uniqueIndex"`
	RuteroLogisticoID uuid.UUID  `gorm:"column:rutero_logistico_id;type:uuid"`
	TransportistaID   uuid.UUID  `gorm:"column:transportista_id;type:uuid;index"`
	Estado            string     `gorm:"index"`
	AsignadoEn        time.Time  `gorm:"column:asignado_en"`
	SalidaRutaEn      *time.Time `gorm:"column:salida_ruta_en"`
	EntregadoEn       *time.Time `gorm:"column:entregado_en"`
	MotivoNoEntrega   string     `gorm:"column:motivo_no_entrega"`
	MotivoParcial     string     `gorm:"column:motivo_parcial"`
	MotivoCancelacion string     `gorm:"column:motivo_cancelacion"`
	Observaciones     string
	Latitud           *float64
	Longitud          *float64
	Version           int

	Evidences []EvidenceDTO `gorm:"foreignKey:EntregaID;constraint:OnDelete:CASCADE"`
	Incidents []IncidentDTO `gorm:"foreignKey:EntregaID;constraint:OnDelete:CASCADE"`
}

// TableName maps the aggregate root to the "entregas" table.
func (DeliveryDTO) TableName() string {
	return "entregas"
}

// EvidenceDTO is one append-only evidence row.
type EvidenceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntregaID   uuid.UUID `gorm:"column:entrega_id;type:uuid;index"`
	Posicion    int       `gorm:"column:posicion"`
	Tipo        string
	URL         string `gorm:"column:url"`
	MimeType    string `gorm:"column:mime_type"`
	Descripcion string
}

// TableName maps evidence rows to the "entrega_evidencias" table.
func (EvidenceDTO) TableName() string {
	return "entrega_evidencias"
}

// IncidentDTO is one incident row; resolution columns are null while open.
type IncidentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntregaID      uuid.UUID `gorm:"column:entrega_id;type:uuid;index"`
	Posicion       int       `gorm:"column:posicion"`
	TipoIncidencia string    `gorm:"column:tipo_incidencia"`
	Severidad      string
	Descripcion    string
	ReportadoEn    time.Time  `gorm:"column:reportado_en"`
	ResueltoEn     *time.Time `gorm:"column:resuelto_en"`
	Resolucion     string
}

// TableName maps incident rows to the "entrega_incidencias" table.
func (IncidentDTO) TableName() string {
	return "entrega_incidencias"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var lat, lon *float64
	if u := d.Ubicacion(); u != nil {
		latV, lonV := u.Latitud, u.Longitud
		lat, lon = &latV, &lonV
	}

	evidences := make([]EvidenceDTO, 0, len(d.Evidences()))
	for pos, ev := range d.Evidences() {
		evidences = append(evidences, EvidenceDTO{
			ID:          ev.ID().Bytes(),
			EntregaID:   d.ID().Bytes(),
			Posicion:    pos,
			Tipo:        ev.Tipo().String(),
			URL:         ev.URL(),
			MimeType:    ev.MimeType(),
			Descripcion: ev.Descripcion(),
		})
	}

	incidents := make([]IncidentDTO, 0, len(d.Incidents()))
	for pos, inc := range d.Incidents() {
		incidents = append(incidents, IncidentDTO{
			ID:             inc.ID().Bytes(),
			EntregaID:      d.ID().Bytes(),
			Posicion:       pos,
			TipoIncidencia: inc.TipoIncidencia(),
			Severidad:      inc.Severidad().String(),
			Descripcion:    inc.Descripcion(),
			ReportadoEn:    inc.ReportadoEn(),
			ResueltoEn:     inc.ResueltoEn(),
			Resolucion:     inc.Resolucion(),
		})
	}

	return DeliveryDTO{
		ID:                d.ID().Bytes(),
		PedidoID:          d.PedidoID().Bytes(),
		RuteroLogisticoID: d.RuteroLogisticoID().Bytes(),
		TransportistaID:   d.TransportistaID().Bytes(),
		Estado:            d.Status().String(),
		AsignadoEn:        d.AsignadoEn(),
		SalidaRutaEn:      d.SalidaRutaEn(),
		EntregadoEn:       d.EntregadoEn(),
		MotivoNoEntrega:   d.MotivoNoEntrega(),
		MotivoParcial:     d.MotivoParcial(),
		MotivoCancelacion: d.MotivoCancelacion(),
		Observaciones:     d.Observaciones(),
		Latitud:           lat,
		Longitud:          lon,
		Version:           d.Version(),
		Evidences:         evidences,
		Incidents:         incidents,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pedidoID, err := kernel.UUIDFromBytes(dto.PedidoID[:])
	if err != nil {
		return nil, err
	}
	ruteroID, err := kernel.UUIDFromBytes(dto.RuteroLogisticoID[:])
	if err != nil {
		return nil, err
	}
	transportistaID, err := kernel.UUIDFromBytes(dto.TransportistaID[:])
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Estado)
	if err != nil {
		return nil, err
	}

	var ubicacion *delivery.Coordinates
	if dto.Latitud != nil && dto.Longitud != nil {
		ubicacion = &delivery.Coordinates{Latitud: *dto.Latitud, Longitud: *dto.Longitud}
	}

	evidences := make([]*delivery.Evidence, 0, len(dto.Evidences))
	for _, evDTO := range dto.Evidences {
		ev, evErr := evidenceToDomain(evDTO)
		if evErr != nil {
			return nil, evErr
		}
		evidences = append(evidences, ev)
	}

	incidents := make([]*delivery.Incident, 0, len(dto.Incidents))
	for _, incDTO := range dto.Incidents {
		inc, incErr := incidentToDomain(incDTO)
		if incErr != nil {
			return nil, incErr
		}
		incidents = append(incidents, inc)
	}

	return delivery.RestoreDelivery(
		id, pedidoID, ruteroID, transportistaID, status,
		dto.AsignadoEn, dto.SalidaRutaEn, dto.EntregadoEn,
		dto.MotivoNoEntrega, dto.MotivoParcial, dto.MotivoCancelacion,
		dto.Observaciones, ubicacion, evidences, incidents, dto.Version,
	)
}

func evidenceToDomain(dto EvidenceDTO) (*delivery.Evidence, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tipo, err := delivery.EvidenceTypeFromString(dto.Tipo)
	if err != nil {
		return nil, err
	}
	return delivery.NewEvidence(id, tipo, dto.URL, dto.MimeType, dto.Descripcion)
}

func incidentToDomain(dto IncidentDTO) (*delivery.Incident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	severidad, err := delivery.SeverityFromString(dto.Severidad)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreIncident(
		id, dto.TipoIncidencia, severidad, dto.Descripcion,
		dto.ReportadoEn, dto.ResueltoEn, dto.Resolucion,
	)
}
