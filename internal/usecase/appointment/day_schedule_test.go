package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/models"
)

func TestGetDaySchedule(t *testing.T) {
	repo := newMemAppointmentRepo()
	sid := "corte"

	require.NoError(t, repo.Create(context.Background(), &models.Appointment{
		ClientID:  "c1",
		ServiceID: &sid,
		Date:      "2026-03-10",
		Time:      "14:00:00",
		Duration:  45,
		Status:    string(domain.StatusUpcoming),
	}))
	// outro dia, não deve aparecer
	require.NoError(t, repo.Create(context.Background(), &models.Appointment{
		ClientID: "c1",
		Date:     "2026-03-11",
		Time:     "10:00:00",
		Duration: 30,
		Status:   string(domain.StatusUpcoming),
	}))

	uc := NewGetDaySchedule(
		repo,
		newMemClientRepo(models.Client{
			ID:     "c1",
			Name:   "Ana Souza",
			Status: string(domaincli.StatusActive),
		}),
		newMemServiceRepo(models.Service{ID: sid, Name: "Corte", Duration: 45}),
	)

	rows, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)

	// uma linha por hora cheia, 09:00 a 17:00
	require.Len(t, rows, 9)
	require.Equal(t, "09:00", rows[0].Slot)
	require.Equal(t, "17:00", rows[8].Slot)

	var filled int
	for _, row := range rows {
		filled += len(row.Appointments)
	}
	require.Equal(t, 1, filled)

	entry := rows[5].Appointments[0] // slot 14:00
	require.Equal(t, "Ana Souza", entry.ClientName)
	require.Equal(t, "Corte", entry.ServiceName)
	require.Equal(t, 45, entry.Duration)

	// a duração de 45 minutos não vaza para o slot das 15:00
	require.Empty(t, rows[6].Appointments)
}

func TestGetDayScheduleEmptyDay(t *testing.T) {
	uc := NewGetDaySchedule(
		newMemAppointmentRepo(),
		newMemClientRepo(),
		newMemServiceRepo(),
	)

	rows, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 9)
	for _, row := range rows {
		require.Empty(t, row.Appointments)
	}
}
