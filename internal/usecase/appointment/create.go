package appointment

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/cache"
	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/domain/catalog"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/domain/shop"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/schedule"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	ClientID  string
	ServiceID string

	Date string
	Time string

	// 0 = copiar a duração atual do serviço
	Duration int
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	clients  domaincli.Repository
	services catalog.Repository
	shop     shop.Repository
	audit    *audit.Dispatcher
	cache    cache.Cache
}

func NewCreateAppointment(
	repo domain.Repository,
	clients domaincli.Repository,
	services catalog.Repository,
	shopRepo shop.Repository,
	auditDispatcher *audit.Dispatcher,
	reportCache cache.Cache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		clients:  clients,
		services: services,
		shop:     shopRepo,
		audit:    auditDispatcher,
		cache:    reportCache,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Cliente: precisa existir e estar ativo
	// --------------------------------------------------
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	if client.Status != string(domaincli.StatusActive) {
		return nil, httperr.ErrBusiness("client_not_active")
	}

	// --------------------------------------------------
	// Data: não pode estar no passado (fuso da barbearia)
	// --------------------------------------------------
	profile, err := uc.shop.Get(ctx)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(profile.Timezone)

	past, err := schedule.IsDatePast(in.Date, loc, timezone.NowIn(profile.Timezone))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if past {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// Horário: precisa pertencer à grade de meia hora
	// --------------------------------------------------
	if !schedule.IsBookingSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	// --------------------------------------------------
	// Serviço: duração copiada no momento da criação,
	// salvo override manual
	// --------------------------------------------------
	service, err := uc.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := in.Duration
	if duration <= 0 {
		duration = service.Duration
	}

	var notes *string
	if in.Notes != "" {
		notes = &in.Notes
	}

	ap := &models.Appointment{
		ClientID:  in.ClientID,
		ServiceID: &service.ID,
		Date:      in.Date,
		Time:      in.Time,
		Duration:  duration,
		Status:    string(domain.InitialStatus()),
		Notes:     notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// Relatórios em cache ficariam até 60s atrás do novo agendamento
	_ = uc.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
