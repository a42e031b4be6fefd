package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/cache"
	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/handlers"
	infraRepo "github.com/barberbook/barberbook-api/internal/infra/repository"
	"github.com/barberbook/barberbook-api/internal/middleware"
	ucAppointment "github.com/barberbook/barberbook-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	shopRepo := infraRepo.NewShopGormRepository(db)
	suggestionRepo := infraRepo.NewSuggestionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Cache de relatórios: Redis quando configurado, senão noop.
	var reportCache cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		reportCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		clientRepo,
		serviceRepo,
		shopRepo,
		auditDispatcher,
		reportCache,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		reportCache,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		reportCache,
	)

	dayScheduleUC := ucAppointment.NewGetDaySchedule(
		appointmentRepo,
		clientRepo,
		serviceRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(clientRepo, appointmentRepo, auditDispatcher, reportCache)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, reportCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		reportCache,
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		dayScheduleUC,
	)

	reportsHandler := handlers.NewReportsHandler(
		appointmentRepo,
		serviceRepo,
		clientRepo,
		shopRepo,
		reportCache,
	)

	suggestionHandler := handlers.NewSuggestionHandler(
		suggestionRepo,
		clientRepo,
		appointmentRepo,
		serviceRepo,
		shopRepo,
		auditDispatcher,
	)

	profileHandler := handlers.NewProfileHandler(shopRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// 👤 CLIENTES
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.PATCH("/clients/:id/activate", clientHandler.Activate)
			secured.PATCH("/clients/:id/deactivate", clientHandler.Deactivate)
			secured.GET("/clients/:id/appointments", clientHandler.History)

			// ------------------------------
			// 💈 SERVIÇOS
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// 📅 AGENDAMENTOS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/day-schedule", appointmentHandler.DaySchedule)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// 📊 RELATÓRIOS
			// ------------------------------
			secured.GET("/reports/revenue", reportsHandler.Revenue)
			secured.GET("/reports/popularity", reportsHandler.Popularity)
			secured.GET("/reports/new-clients", reportsHandler.NewClients)
			secured.GET("/reports/retention", reportsHandler.Retention)
			secured.GET("/reports/comparison", reportsHandler.Comparison)

			// ------------------------------
			// 🏠 DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/stats", reportsHandler.Dashboard)

			// ------------------------------
			// 💡 SUGESTÕES
			// ------------------------------
			secured.GET("/suggestions", suggestionHandler.List)
			secured.GET("/suggestions/candidates", suggestionHandler.Candidates)
			secured.GET("/suggestions/stats", suggestionHandler.Stats)
			secured.POST("/suggestions", suggestionHandler.Create)
			secured.PATCH("/suggestions/:id/send", suggestionHandler.Send)
			secured.PATCH("/suggestions/:id/confirm", suggestionHandler.Confirm)
			secured.PATCH("/suggestions/:id/dismiss", suggestionHandler.Dismiss)

			// ------------------------------
			// ⚙️ CONFIGURAÇÕES
			// ------------------------------
			secured.GET("/settings/profile", profileHandler.Get)
			secured.PATCH("/settings/profile", profileHandler.Update)

			// ------------------------------
			// 📝 AUDIT LOGS
			// ------------------------------
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
