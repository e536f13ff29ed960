package appointment

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/service-auto/internal/audit"
	domain "github.com/BruksfildServices01/service-auto/internal/domain/appointment"
	"github.com/BruksfildServices01/service-auto/internal/httperr"
	"github.com/BruksfildServices01/service-auto/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID   string
	SerieSasiu string
	Actiune    string

	// Interval is nil when the request did not carry one.
	Interval *models.Interval
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	clients  domain.ClientDirectory
	repo     domain.Repository
	window   domain.Window
	location *time.Location
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	clients domain.ClientDirectory,
	repo domain.Repository,
	window domain.Window,
	location *time.Location,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		clients:  clients,
		repo:     repo,
		window:   window,
		location: location,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the checks in a fixed order and stops at the first failure.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Client
	// --------------------------------------------------
	client, err := uc.clients.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Vehicle owned by the client
	// --------------------------------------------------
	masina, ok := client.FindVehicle(in.SerieSasiu)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeVehicleNotFound)
	}

	// --------------------------------------------------
	// 3. Required details
	// --------------------------------------------------
	if missing := missingDetails(in); len(missing) > 0 {
		return nil, httperr.ErrInvalidInput(httperr.CodeIncompleteDetails, missing...)
	}

	// --------------------------------------------------
	// 4. Business window
	// --------------------------------------------------
	if err := uc.window.Validate(in.Interval.Start, in.Interval.End, uc.location); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Id assignment + persistence
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:        in.ClientID,
		SerieSasiu:      in.SerieSasiu,
		Masina:          masina,
		Actiune:         in.Actiune,
		Interval:        *in.Interval,
		IstoricServicii: []models.ServiceEvent{},
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: strconv.Itoa(ap.ID),
		Metadata: map[string]any{
			"client_id":   ap.ClientID,
			"serie_sasiu": ap.SerieSasiu,
			"interval":    ap.Interval,
		},
	})

	return ap, nil
}

func missingDetails(in CreateAppointmentInput) []string {
	var missing []string
	if in.Actiune == "" {
		missing = append(missing, "actiune")
	}
	if in.Interval == nil {
		return append(missing, "interval")
	}
	if in.Interval.Start == "" {
		missing = append(missing, "interval.start")
	}
	if in.Interval.End == "" {
		missing = append(missing, "interval.end")
	}
	return missing
}
