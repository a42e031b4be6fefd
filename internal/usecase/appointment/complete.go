package appointment

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/cache"
	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	reportCache cache.Cache,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
		cache: reportCache,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	_ = uc.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
