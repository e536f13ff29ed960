package appointment

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/service-auto/internal/audit"
	domain "github.com/BruksfildServices01/service-auto/internal/domain/appointment"
	"github.com/BruksfildServices01/service-auto/internal/models"
)

// AppendServiceEvent records one entry in an appointment's service history.
// The event payload is not inspected.
type AppendServiceEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAppendServiceEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AppendServiceEvent {
	return &AppendServiceEvent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AppendServiceEvent) Execute(
	ctx context.Context,
	appointmentID int,
	ev models.ServiceEvent,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppendServiceEvent(ctx, appointmentID, ev)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_event_appended",
		Entity:   "appointment",
		EntityID: strconv.Itoa(ap.ID),
		Metadata: map[string]any{
			"history_length": len(ap.IstoricServicii),
		},
	})

	return ap, nil
}
