package repository

import (
	"context"

	domain "github.com/BruksfildServices01/service-auto/internal/domain/appointment"
	"github.com/BruksfildServices01/service-auto/internal/httperr"
	"github.com/BruksfildServices01/service-auto/internal/infra/storage"
	"github.com/BruksfildServices01/service-auto/internal/models"
)

type AppointmentCollectionRepository struct {
	col *storage.Collection[models.Appointment]
}

func NewAppointmentCollectionRepository(
	col *storage.Collection[models.Appointment],
) *AppointmentCollectionRepository {
	return &AppointmentCollectionRepository{col: col}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentCollectionRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {
	return r.col.Load(ctx)
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AppointmentCollectionRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.col.Update(ctx, func(items []models.Appointment) ([]models.Appointment, error) {
		ap.ID = domain.NextID(items)
		if ap.IstoricServicii == nil {
			ap.IstoricServicii = []models.ServiceEvent{}
		}
		return append(items, ap.Clone()), nil
	})
}

func (r *AppointmentCollectionRepository) AppendServiceEvent(
	ctx context.Context,
	appointmentID int,
	ev models.ServiceEvent,
) (*models.Appointment, error) {

	var updated models.Appointment

	err := r.col.Update(ctx, func(items []models.Appointment) ([]models.Appointment, error) {
		for i := range items {
			if items[i].ID != appointmentID {
				continue
			}
			items[i].IstoricServicii = append(items[i].IstoricServicii, ev)
			updated = items[i].Clone()
			return items, nil
		}
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentCollectionRepository)(nil)
