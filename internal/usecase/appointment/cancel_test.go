package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/cache"
	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

func seedAppointment(t *testing.T, repo *memAppointmentRepo, status domain.Status) string {
	t.Helper()

	ap := &models.Appointment{
		ClientID: "c1",
		Date:     "2026-03-10",
		Time:     "14:00",
		Duration: 45,
		Status:   string(status),
	}
	require.NoError(t, repo.Create(context.Background(), ap))
	return ap.ID
}

func TestCancelAppointment(t *testing.T) {
	repo := newMemAppointmentRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher(), newMemCache())

	id := seedAppointment(t, repo, domain.StatusUpcoming)

	ap, err := uc.Execute(context.Background(), 1, id)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCancelled), ap.Status)

	// o cancelamento fica registrado, o agendamento não some
	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	uc := NewCancelAppointment(newMemAppointmentRepo(), newTestDispatcher(), newMemCache())

	_, err := uc.Execute(context.Background(), 1, "inexistente")
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelAppointmentInvalidState(t *testing.T) {
	repo := newMemAppointmentRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher(), newMemCache())

	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusCancelled} {
		id := seedAppointment(t, repo, status)
		_, err := uc.Execute(context.Background(), 1, id)
		require.True(t, httperr.IsBusiness(err, "invalid_state"), "status %s", status)
	}
}

func TestCompleteAppointment(t *testing.T) {
	repo := newMemAppointmentRepo()
	uc := NewCompleteAppointment(repo, newTestDispatcher(), newMemCache())

	id := seedAppointment(t, repo, domain.StatusUpcoming)

	ap, err := uc.Execute(context.Background(), 1, id)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCompleted), ap.Status)
}

func TestCancelAppointmentInvalidatesReportCache(t *testing.T) {
	repo := newMemAppointmentRepo()
	reportCache := newMemCache()
	uc := NewCancelAppointment(repo, newTestDispatcher(), reportCache)

	// falha antes da escrita não invalida nada
	_, err := uc.Execute(context.Background(), 1, "inexistente")
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	require.Empty(t, reportCache.invalidated)

	id := seedAppointment(t, repo, domain.StatusUpcoming)
	_, err = uc.Execute(context.Background(), 1, id)
	require.NoError(t, err)
	require.Equal(t, []string{cache.ReportsPrefix}, reportCache.invalidated)
}

func TestCompleteAppointmentInvalidState(t *testing.T) {
	repo := newMemAppointmentRepo()
	uc := NewCompleteAppointment(repo, newTestDispatcher(), newMemCache())

	id := seedAppointment(t, repo, domain.StatusCancelled)
	_, err := uc.Execute(context.Background(), 1, id)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}
