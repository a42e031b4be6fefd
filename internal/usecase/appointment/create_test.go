package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/cache"
	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

const futureDate = "2099-06-15"

func setupCreate(t *testing.T, clients ...models.Client) (*CreateAppointment, *memAppointmentRepo) {
	t.Helper()

	repo := newMemAppointmentRepo()
	services := newMemServiceRepo(models.Service{
		ID:       "corte",
		Name:     "Corte",
		Duration: 45,
		Price:    50,
	})

	uc := NewCreateAppointment(
		repo,
		newMemClientRepo(clients...),
		services,
		newMemShopRepo(),
		newTestDispatcher(),
		newMemCache(),
	)
	return uc, repo
}

func TestCreateAppointment(t *testing.T) {
	uc, repo := setupCreate(t, models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.StatusActive),
	})

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    1,
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "14:30",
	})

	require.NoError(t, err)
	require.NotEmpty(t, ap.ID)
	require.Equal(t, string(domain.StatusUpcoming), ap.Status)

	// duração copiada do serviço no momento da criação
	require.Equal(t, 45, ap.Duration)

	stored, err := repo.GetByID(context.Background(), ap.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateAppointmentDurationOverride(t *testing.T) {
	uc, _ := setupCreate(t, models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.StatusActive),
	})

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    1,
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "14:30",
		Duration:  60,
	})

	require.NoError(t, err)
	require.Equal(t, 60, ap.Duration)
}

func TestCreateAppointmentClientChecks(t *testing.T) {
	uc, _ := setupCreate(t, models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.InitialStatus()),
	})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "desconhecido",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "client_not_found"))

	// cliente recém-cadastrado começa como "new" e ainda não pode agendar
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "client_not_active"))
}

func TestCreateAppointmentActivationUnlocks(t *testing.T) {
	client := models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.InitialStatus()),
	}

	repo := newMemAppointmentRepo()
	clientRepo := newMemClientRepo(client)
	uc := NewCreateAppointment(
		repo,
		clientRepo,
		newMemServiceRepo(models.Service{ID: "corte", Name: "Corte", Duration: 45}),
		newMemShopRepo(),
		newTestDispatcher(),
		newMemCache(),
	)

	in := CreateAppointmentInput{
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "10:00",
	}

	_, err := uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "client_not_active"))

	client.Status = string(domaincli.StatusActive)
	require.NoError(t, clientRepo.Update(context.Background(), &client))

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusUpcoming), ap.Status)
}

func TestCreateAppointmentDateChecks(t *testing.T) {
	uc, _ := setupCreate(t, models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.StatusActive),
	})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      "15/06/2099",
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      "2020-01-01",
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "date_in_past"))
}

func TestCreateAppointmentSlotCheck(t *testing.T) {
	uc, _ := setupCreate(t, models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.StatusActive),
	})

	for _, bad := range []string{"14:15", "08:30", "18:30"} {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID:  "c1",
			ServiceID: "corte",
			Date:      futureDate,
			Time:      bad,
		})
		require.True(t, httperr.IsBusiness(err, "invalid_time_slot"), "time %s", bad)
	}
}

func TestCreateAppointmentInvalidatesReportCache(t *testing.T) {
	repo := newMemAppointmentRepo()
	reportCache := newMemCache()
	uc := NewCreateAppointment(
		repo,
		newMemClientRepo(models.Client{
			ID:     "c1",
			Name:   "Ana Souza",
			Status: string(domaincli.StatusActive),
		}),
		newMemServiceRepo(models.Service{ID: "corte", Name: "Corte", Duration: 45}),
		newMemShopRepo(),
		newTestDispatcher(),
		reportCache,
	)

	// rejeição antes da escrita não mexe no cache
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "desconhecido",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "client_not_found"))
	require.Empty(t, reportCache.invalidated)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    1,
		ClientID:  "c1",
		ServiceID: "corte",
		Date:      futureDate,
		Time:      "14:30",
	})
	require.NoError(t, err)
	require.Equal(t, []string{cache.ReportsPrefix}, reportCache.invalidated)
}

func TestCreateAppointmentServiceCheck(t *testing.T) {
	uc, _ := setupCreate(t, models.Client{
		ID:     "c1",
		Name:   "Ana Souza",
		Status: string(domaincli.StatusActive),
	})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "c1",
		ServiceID: "inexistente",
		Date:      futureDate,
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "service_not_found"))
}
