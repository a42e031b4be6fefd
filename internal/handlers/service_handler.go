package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/cache"
	"github.com/barberbook/barberbook-api/internal/domain/catalog"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/models"
)

type ServiceHandler struct {
	repo  catalog.Repository
	cache cache.Cache
}

func NewServiceHandler(repo catalog.Repository, reportCache cache.Cache) *ServiceHandler {
	return &ServiceHandler{repo: repo, cache: reportCache}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Duration    int     `json:"duration" binding:"required,min=5"`
	Price       float64 `json:"price" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}
	if service == nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	}

	if err := h.repo.Create(c.Request.Context(), &service); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	_ = h.cache.DeletePrefix(c.Request.Context(), cache.ReportsPrefix)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	service, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}
	if service == nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.Duration != nil {
		if *req.Duration < 5 {
			httperr.BadRequest(c, "invalid_duration", "Duração mínima é de 5 minutos.")
			return
		}
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
			return
		}
		service.Price = *req.Price
	}

	// agendamentos existentes mantêm a duração copiada na criação
	if err := h.repo.Update(ctx, service); err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	service, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}
	if service == nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	if err := h.repo.Delete(ctx, service.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	_ = h.cache.DeletePrefix(ctx, cache.ReportsPrefix)

	c.Status(http.StatusNoContent)
}
