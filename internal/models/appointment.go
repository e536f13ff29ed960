package models

import "encoding/json"

type Appointment struct {
	ID         int    `json:"id"`
	ClientID   string `json:"clientId"`
	SerieSasiu string `json:"serieSasiu"`

	// Masina is a snapshot of the vehicle taken when the appointment was
	// created; later edits to the client record do not show up here.
	Masina Vehicle `json:"masina"`

	Actiune  string   `json:"actiune"`
	Interval Interval `json:"interval"`

	IstoricServicii []ServiceEvent `json:"istoricServicii"`
}

// Interval keeps the timestamps exactly as the caller sent them.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceEvent is one history entry. Its fields are stored verbatim,
// whatever JSON type the caller used.
type ServiceEvent struct {
	PrimireMasina   json.RawMessage `json:"primireMasina,omitempty"`
	ProcesareMasina json.RawMessage `json:"procesareMasina,omitempty"`
	DurataReparatie json.RawMessage `json:"durataReparatie,omitempty"`
}

// Clone returns a copy that shares no slices with ap.
func (ap Appointment) Clone() Appointment {
	out := ap
	out.Masina = ap.Masina.Clone()
	out.IstoricServicii = make([]ServiceEvent, len(ap.IstoricServicii))
	copy(out.IstoricServicii, ap.IstoricServicii)
	return out
}
