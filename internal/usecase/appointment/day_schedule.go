package appointment

import (
	"context"

	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/domain/catalog"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/dto"
	"github.com/barberbook/barberbook-api/internal/schedule"
)

// Visão diária: uma linha por slot de hora cheia, cada linha com zero ou
// mais agendamentos do dia, casados pelo prefixo "HH:MM" do horário.
type GetDaySchedule struct {
	repo     domain.Repository
	clients  domaincli.Repository
	services catalog.Repository
}

func NewGetDaySchedule(
	repo domain.Repository,
	clients domaincli.Repository,
	services catalog.Repository,
) *GetDaySchedule {
	return &GetDaySchedule{
		repo:     repo,
		clients:  clients,
		services: services,
	}
}

func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	date string,
) ([]dto.DayScheduleRow, error) {

	aps, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	clientNames := make(map[string]string)
	allClients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range allClients {
		clientNames[c.ID] = c.Name
	}

	serviceNames := make(map[string]string)
	allServices, err := uc.services.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range allServices {
		serviceNames[s.ID] = s.Name
	}

	buckets := schedule.BucketBySlot(schedule.DailySlots(), aps)

	rows := make([]dto.DayScheduleRow, 0, len(buckets))
	for _, b := range buckets {
		row := dto.DayScheduleRow{
			Slot:         b.Slot,
			Appointments: []dto.DayScheduleEntry{},
		}
		for _, ap := range b.Appointments {
			serviceName := ""
			if ap.ServiceID != nil {
				serviceName = serviceNames[*ap.ServiceID]
			}
			row.Appointments = append(row.Appointments, dto.DayScheduleEntry{
				ID:          ap.ID,
				ClientName:  clientNames[ap.ClientID],
				ServiceName: serviceName,
				Time:        ap.Time,
				Duration:    ap.Duration,
				Status:      ap.Status,
			})
		}
		rows = append(rows, row)
	}

	return rows, nil
}
