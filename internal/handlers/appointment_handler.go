package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/cache"
	domain "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/schedule"
	ucAppointment "github.com/barberbook/barberbook-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo  domain.Repository
	cache cache.Cache

	createUC      *ucAppointment.CreateAppointment
	cancelUC      *ucAppointment.CancelAppointment
	completeUC    *ucAppointment.CompleteAppointment
	dayScheduleUC *ucAppointment.GetDaySchedule
}

func NewAppointmentHandler(
	repo domain.Repository,
	reportCache cache.Cache,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	dayScheduleUC *ucAppointment.GetDaySchedule,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:          repo,
		cache:         reportCache,
		createUC:      createUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		dayScheduleUC: dayScheduleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Duration  int    `json:"duration"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ServiceID *string `json:"service_id,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		aps, err := h.repo.ListByDate(ctx, date)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
			return
		}
		httpresp.List(c, aps)
		return
	}

	aps, err := h.repo.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// DAY SCHEDULE
// ======================================================

func (h *AppointmentHandler) DaySchedule(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}
	if _, err := schedule.ParseDate(date, time.UTC); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	rows, err := h.dayScheduleUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_build_day_schedule", "Erro ao montar a agenda do dia.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:    userID,
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Notes:     req.Notes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, businessMessage(code))
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	ap, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ServiceID != nil {
		ap.ServiceID = req.ServiceID
	}
	if req.Date != nil {
		ap.Date = *req.Date
	}
	if req.Time != nil {
		ap.Time = *req.Time
	}
	if req.Duration != nil {
		ap.Duration = *req.Duration
	}
	if req.Status != nil {
		// update direto aceita qualquer status válido, sem máquina de estados
		if !domain.IsValid(domain.Status(*req.Status)) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		ap.Status = *req.Status
	}
	if req.Notes != nil {
		ap.Notes = req.Notes
	}

	if err := h.repo.Update(ctx, ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.completeUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser concluído.")
			return
		}
		httperr.Internal(c, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	ap, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := h.repo.Delete(ctx, ap.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func businessMessage(code string) string {
	switch code {
	case "client_not_found":
		return "Cliente não encontrado."
	case "client_not_active":
		return "Apenas clientes ativos podem ser agendados."
	case "invalid_date":
		return "Data inválida."
	case "date_in_past":
		return "A data não pode estar no passado."
	case "invalid_time_slot":
		return "Horário fora da grade de atendimento."
	case "service_not_found":
		return "Serviço não encontrado."
	}
	return "Dados inválidos."
}
