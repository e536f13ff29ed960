package dto

import (
	"encoding/json"

	"github.com/BruksfildServices01/service-auto/internal/models"
)

// CreateAppointmentRequest has no binding tags: presence checks belong to the
// use case so they run after the client and vehicle lookups.
type CreateAppointmentRequest struct {
	ClientID   string           `json:"clientId"`
	SerieSasiu string           `json:"serieSasiu"`
	Actiune    string           `json:"actiune"`
	Interval   *models.Interval `json:"interval"`
}

type ServiceEventRequest struct {
	PrimireMasina   json.RawMessage `json:"primireMasina"`
	ProcesareMasina json.RawMessage `json:"procesareMasina"`
	DurataReparatie json.RawMessage `json:"durataReparatie"`
}

func (r ServiceEventRequest) ToModel() models.ServiceEvent {
	return models.ServiceEvent{
		PrimireMasina:   r.PrimireMasina,
		ProcesareMasina: r.ProcesareMasina,
		DurataReparatie: r.DurataReparatie,
	}
}
