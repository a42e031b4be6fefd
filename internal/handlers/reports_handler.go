package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/cache"
	domainap "github.com/barberbook/barberbook-api/internal/domain/appointment"
	"github.com/barberbook/barberbook-api/internal/domain/catalog"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/domain/shop"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/reports"
	"github.com/barberbook/barberbook-api/internal/schedule"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

// Relatórios são recalculados das coleções completas a cada consulta.
// Com Redis configurado, a resposta serializada fica em cache por um
// período curto; o padrão é o NoopCache, sem cache nenhum. Mutações de
// agendamentos, clientes e serviços apagam todas as chaves do prefixo,
// então o TTL só cobre leituras repetidas, não esconde escritas.
const reportCacheTTL = 60 * time.Second

type ReportsHandler struct {
	appointments domainap.Repository
	services     catalog.Repository
	clients      domaincli.Repository
	shop         shop.Repository
	cache        cache.Cache
}

func NewReportsHandler(
	appointments domainap.Repository,
	services catalog.Repository,
	clients domaincli.Repository,
	shopRepo shop.Repository,
	c cache.Cache,
) *ReportsHandler {
	return &ReportsHandler{
		appointments: appointments,
		services:     services,
		clients:      clients,
		shop:         shopRepo,
		cache:        c,
	}
}

func (h *ReportsHandler) parseRange(c *gin.Context) (reports.DateRange, bool) {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_range", "Período obrigatório (from e to).")
		return reports.DateRange{}, false
	}
	if _, err := schedule.ParseDate(from, time.UTC); err != nil {
		httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
		return reports.DateRange{}, false
	}
	if _, err := schedule.ParseDate(to, time.UTC); err != nil {
		httperr.BadRequest(c, "invalid_to", "Data final inválida.")
		return reports.DateRange{}, false
	}

	return reports.DateRange{From: from, To: to}, true
}

// serve responde do cache quando possível; senão calcula, responde e grava.
func (h *ReportsHandler) serve(c *gin.Context, key string, compute func() (any, error)) {
	ctx := c.Request.Context()

	if cached, found, err := h.cache.Get(ctx, key); err == nil && found {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	payload, err := compute()
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}

	_ = h.cache.Set(ctx, key, body, reportCacheTTL)
	c.Data(http.StatusOK, "application/json", body)
}

func cacheKey(report string, r reports.DateRange) string {
	return fmt.Sprintf("%s%s:%s:%s", cache.ReportsPrefix, report, r.From, r.To)
}

// ======================================================
// RECEITA POR DIA
// ======================================================

func (h *ReportsHandler) Revenue(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	h.serve(c, cacheKey("revenue", r), func() (any, error) {
		aps, err := h.appointments.List(ctx)
		if err != nil {
			return nil, err
		}
		services, err := h.services.List(ctx)
		if err != nil {
			return nil, err
		}
		return reports.RevenueByDay(aps, services, r), nil
	})
}

// ======================================================
// POPULARIDADE DE SERVIÇOS
// ======================================================

func (h *ReportsHandler) Popularity(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	h.serve(c, cacheKey("popularity", r), func() (any, error) {
		aps, err := h.appointments.List(ctx)
		if err != nil {
			return nil, err
		}
		services, err := h.services.List(ctx)
		if err != nil {
			return nil, err
		}
		return reports.ServicePopularity(aps, services, r), nil
	})
}

// ======================================================
// NOVOS CLIENTES POR MÊS
// ======================================================

func (h *ReportsHandler) NewClients(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	h.serve(c, cacheKey("new-clients", r), func() (any, error) {
		clients, err := h.clients.List(ctx)
		if err != nil {
			return nil, err
		}
		loc, err := h.shopLocation(c)
		if err != nil {
			return nil, err
		}
		return reports.NewClientsByMonth(clients, r, loc), nil
	})
}

// ======================================================
// RETENÇÃO
// ======================================================

func (h *ReportsHandler) Retention(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	h.serve(c, cacheKey("retention", r), func() (any, error) {
		aps, err := h.appointments.List(ctx)
		if err != nil {
			return nil, err
		}
		return reports.Retention(aps, r), nil
	})
}

// ======================================================
// COMPARAÇÃO MÊS A MÊS
// ======================================================

func (h *ReportsHandler) Comparison(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	h.serve(c, cacheKey("comparison", r), func() (any, error) {
		aps, err := h.appointments.List(ctx)
		if err != nil {
			return nil, err
		}
		services, err := h.services.List(ctx)
		if err != nil {
			return nil, err
		}
		clients, err := h.clients.List(ctx)
		if err != nil {
			return nil, err
		}
		loc, err := h.shopLocation(c)
		if err != nil {
			return nil, err
		}
		return reports.Comparison(aps, services, clients, r, loc), nil
	})
}

// ======================================================
// DASHBOARD
// ======================================================

// Dashboard resume o dia corrente no fuso da barbearia. Depende de
// "hoje", então não passa pelo cache de relatórios.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.shop.Get(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}
	today := timezone.NowIn(profile.Timezone).Format("2006-01-02")

	aps, err := h.appointments.ListByDate(ctx, today)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}
	services, err := h.services.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}
	clients, err := h.clients.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}

	c.JSON(http.StatusOK, reports.Dashboard(aps, services, clients, today))
}

func (h *ReportsHandler) shopLocation(c *gin.Context) (*time.Location, error) {
	profile, err := h.shop.Get(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return timezone.Location(profile.Timezone), nil
}
