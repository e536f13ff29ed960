package appointment

import (
	"context"

	"github.com/BruksfildServices01/service-auto/internal/models"
)

// ClientDirectory is the read side of the client records the scheduler
// validates against.
type ClientDirectory interface {
	// GetClient fails with the client_not_found business error when the id
	// is unknown.
	GetClient(ctx context.Context, id string) (*models.Client, error)
}

type Repository interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// CreateAppointment assigns ap.ID with NextID and stores ap, atomically
	// with respect to other writers of the collection.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// AppendServiceEvent adds ev at the end of the appointment's history and
	// returns the updated appointment. Fails with appointment_not_found.
	AppendServiceEvent(
		ctx context.Context,
		appointmentID int,
		ev models.ServiceEvent,
	) (*models.Appointment, error)
}
