package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/audit"
	domainap "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/domain/catalog"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/domain/shop"
	"github.com/barberbook/barberbook-api/internal/domain/suggestion"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/schedule"
	"github.com/barberbook/barberbook-api/internal/suggest"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type SuggestionHandler struct {
	suggestions  suggestion.Repository
	clients      domaincli.Repository
	appointments domainap.Repository
	services     catalog.Repository
	shop         shop.Repository
	audit        *audit.Dispatcher
}

func NewSuggestionHandler(
	suggestions suggestion.Repository,
	clients domaincli.Repository,
	appointments domainap.Repository,
	services catalog.Repository,
	shopRepo shop.Repository,
	auditDispatcher *audit.Dispatcher,
) *SuggestionHandler {
	return &SuggestionHandler{
		suggestions:  suggestions,
		clients:      clients,
		appointments: appointments,
		services:     services,
		shop:         shopRepo,
		audit:        auditDispatcher,
	}
}

// ======================================================
// LISTAGEM
// ======================================================

func (h *SuggestionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		switch suggestion.Status(status) {
		case suggestion.StatusPending, suggestion.StatusSent,
			suggestion.StatusConfirmed, suggestion.StatusDismissed:
		default:
			httperr.BadRequest(c, "invalid_status", "Status de sugestão inválido.")
			return
		}

		list, err := h.suggestions.ListByStatus(ctx, suggestion.Status(status))
		if err != nil {
			httperr.Internal(c, "failed_to_list_suggestions", "Erro ao listar sugestões.")
			return
		}
		httpresp.List(c, list)
		return
	}

	list, err := h.suggestions.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_suggestions", "Erro ao listar sugestões.")
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// CANDIDATOS (derivados do histórico, nada persiste)
// ======================================================

func (h *SuggestionHandler) Candidates(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.clients.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_candidates", "Erro ao calcular candidatos.")
		return
	}
	aps, err := h.appointments.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_candidates", "Erro ao calcular candidatos.")
		return
	}
	services, err := h.services.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_candidates", "Erro ao calcular candidatos.")
		return
	}
	profile, err := h.shop.Get(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_candidates", "Erro ao calcular candidatos.")
		return
	}

	loc := timezone.Location(profile.Timezone)
	candidates := suggest.BuildCandidates(clients, aps, services, time.Now(), loc)

	httpresp.List(c, candidates)
}

// ======================================================
// ESTATÍSTICAS
// ======================================================

type suggestionStats struct {
	Pending        int     `json:"pending"`
	SentLast30Days int     `json:"sent_last_30_days"`
	Confirmed      int     `json:"confirmed"`
	ConversionRate float64 `json:"conversion_rate"`
}

// Stats resume o funil de sugestões: pendentes, enviadas nos últimos 30
// dias, confirmadas e taxa de conversão (confirmadas sobre o total já
// enviado; zero quando nada foi enviado).
func (h *SuggestionHandler) Stats(c *gin.Context) {
	list, err := h.suggestions.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_suggestions", "Erro ao listar sugestões.")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -30)

	var stats suggestionStats
	everSent := 0
	for _, s := range list {
		switch suggestion.Status(s.Status) {
		case suggestion.StatusPending:
			stats.Pending++
		case suggestion.StatusConfirmed:
			stats.Confirmed++
		}
		if s.SentAt != nil {
			everSent++
			if s.SentAt.After(cutoff) {
				stats.SentLast30Days++
			}
		}
	}

	if everSent > 0 {
		stats.ConversionRate = float64(stats.Confirmed) / float64(everSent) * 100
	}

	c.JSON(http.StatusOK, stats)
}

// ======================================================
// CRIAÇÃO MANUAL
// ======================================================

type CreateSuggestionRequest struct {
	ClientID  string  `json:"client_id" binding:"required"`
	ServiceID *string `json:"service_id"`
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	Reason    string  `json:"reason"`
}

func (h *SuggestionHandler) Create(c *gin.Context) {
	var req CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	client, err := h.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_suggestion", "Erro ao criar sugestão.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	profile, err := h.shop.Get(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_create_suggestion", "Erro ao criar sugestão.")
		return
	}
	loc := timezone.Location(profile.Timezone)

	past, err := schedule.IsDatePast(req.Date, loc, time.Now())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	if past {
		httperr.BadRequest(c, "date_in_past", "A data sugerida já passou.")
		return
	}
	if !schedule.IsBookingSlot(req.Time) {
		httperr.BadRequest(c, "invalid_time_slot", "Horário fora da grade de agendamento.")
		return
	}

	if req.ServiceID != nil {
		svc, err := h.services.GetByID(ctx, *req.ServiceID)
		if err != nil {
			httperr.Internal(c, "failed_to_create_suggestion", "Erro ao criar sugestão.")
			return
		}
		if svc == nil {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
	}

	s := &models.Suggestion{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    string(suggestion.InitialStatus()),
	}

	if err := h.suggestions.Create(ctx, s); err != nil {
		httperr.Internal(c, "failed_to_create_suggestion", "Erro ao criar sugestão.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "suggestion_created",
		Entity:   "suggestion",
		EntityID: &s.ID,
		Metadata: gin.H{"client_id": s.ClientID, "date": s.Date, "time": s.Time},
	})

	c.JSON(http.StatusCreated, s)
}

// ======================================================
// TRANSIÇÕES DE ESTADO
// ======================================================

func (h *SuggestionHandler) Send(c *gin.Context) {
	h.transition(c, "suggestion_sent", func(s *models.Suggestion) error {
		return suggestion.Send(s, time.Now())
	})
}

func (h *SuggestionHandler) Confirm(c *gin.Context) {
	h.transition(c, "suggestion_confirmed", func(s *models.Suggestion) error {
		return suggestion.Confirm(s, time.Now())
	})
}

func (h *SuggestionHandler) Dismiss(c *gin.Context) {
	h.transition(c, "suggestion_dismissed", suggestion.Dismiss)
}

func (h *SuggestionHandler) transition(c *gin.Context, action string, apply func(*models.Suggestion) error) {
	ctx := c.Request.Context()
	id := c.Param("id")

	s, err := h.suggestions.GetByID(ctx, id)
	if err != nil {
		httperr.Internal(c, "failed_to_update_suggestion", "Erro ao atualizar sugestão.")
		return
	}
	if s == nil {
		httperr.NotFound(c, "suggestion_not_found", "Sugestão não encontrada.")
		return
	}

	if err := apply(s); err != nil {
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida para a sugestão.")
		return
	}

	if err := h.suggestions.Update(ctx, s); err != nil {
		httperr.Internal(c, "failed_to_update_suggestion", "Erro ao atualizar sugestão.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "suggestion",
		EntityID: &s.ID,
		Metadata: gin.H{"status": s.Status},
	})

	c.JSON(http.StatusOK, s)
}
