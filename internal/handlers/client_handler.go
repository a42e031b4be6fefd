package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/cache"
	domainap "github.com/barberbook/barberbook-api/internal/domain/appointment"
	domain "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	repo         domain.Repository
	appointments domainap.Repository
	audit        *audit.Dispatcher
	cache        cache.Cache
}

func NewClientHandler(
	repo domain.Repository,
	appointments domainap.Repository,
	auditDispatcher *audit.Dispatcher,
	reportCache cache.Cache,
) *ClientHandler {
	return &ClientHandler{
		repo:         repo,
		appointments: appointments,
		audit:        auditDispatcher,
		cache:        reportCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	ImageURL *string `json:"image_url"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Status   *string `json:"status,omitempty"`

	LastVisit       *string `json:"last_visit,omitempty"`
	TotalVisits     *int    `json:"total_visits,omitempty"`
	FavoriteService *string `json:"favorite_service,omitempty"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	statusStr := strings.TrimSpace(c.Query("status"))
	query := strings.TrimSpace(c.Query("query"))

	var (
		clients []models.Client
		err     error
	)

	switch {
	case statusStr != "":
		if !domain.IsValid(domain.Status(statusStr)) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		clients, err = h.repo.ListByStatus(ctx, domain.Status(statusStr))
	case query != "":
		clients, err = h.repo.Search(ctx, query)
	default:
		clients, err = h.repo.List(ctx)
	}

	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		ImageURL: req.ImageURL,
		Status:   string(domain.InitialStatus()),
	}

	if err := h.repo.Create(c.Request.Context(), &client); err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	_ = h.cache.DeletePrefix(c.Request.Context(), cache.ReportsPrefix)

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	client, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.ImageURL != nil {
		client.ImageURL = req.ImageURL
	}
	if req.Status != nil {
		// update direto aceita qualquer status válido, sem guarda de transição
		if !domain.IsValid(domain.Status(*req.Status)) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		client.Status = *req.Status
	}
	if req.LastVisit != nil {
		client.LastVisit = req.LastVisit
	}
	if req.TotalVisits != nil {
		client.TotalVisits = *req.TotalVisits
	}
	if req.FavoriteService != nil {
		client.FavoriteService = req.FavoriteService
	}

	if err := h.repo.Update(ctx, client); err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	client, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if err := h.repo.Delete(ctx, client.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	c.Status(http.StatusNoContent)
}

// ======================================================
// ACTIVATE / DEACTIVATE
// ======================================================

func (h *ClientHandler) Activate(c *gin.Context) {
	h.setStatus(c, domain.StatusActive, "client_activated")
}

func (h *ClientHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, domain.StatusInactive, "client_deactivated")
}

func (h *ClientHandler) setStatus(c *gin.Context, status domain.Status, action string) {
	ctx := c.Request.Context()
	userID := c.MustGet(middleware.ContextUserID).(uint)

	client, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	// a UI desabilita o botão do status atual; repetir a ação não é erro
	if client.Status != string(status) {
		client.Status = string(status)
		if err := h.repo.Update(ctx, client); err != nil {
			httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
			return
		}

		_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

		h.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   action,
			Entity:   "client",
			EntityID: &client.ID,
		})
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// APPOINTMENT HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	ctx := c.Request.Context()

	client, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	aps, err := h.appointments.ListByClient(ctx, client.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}
