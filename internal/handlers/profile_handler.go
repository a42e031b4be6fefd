package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/domain/shop"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type ProfileHandler struct {
	shop  shop.Repository
	audit *audit.Dispatcher
}

func NewProfileHandler(shopRepo shop.Repository, auditDispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{shop: shopRepo, audit: auditDispatcher}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.shop.Get(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Erro ao buscar perfil da barbearia.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	profile, err := h.shop.Get(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil da barbearia.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_name", "Nome da barbearia não pode ser vazio.")
			return
		}
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		profile.Timezone = *req.Timezone
	}

	if err := h.shop.Update(ctx, profile); err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil da barbearia.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "profile_updated",
		Entity:   "shop_profile",
		Metadata: gin.H{"name": profile.Name, "timezone": profile.Timezone},
	})

	c.JSON(http.StatusOK, profile)
}
