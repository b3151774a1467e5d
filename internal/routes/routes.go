package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/barber-agenda/internal/audit"
	"github.com/NavalhaDigital/barber-agenda/internal/cache"
	"github.com/NavalhaDigital/barber-agenda/internal/config"
	"github.com/NavalhaDigital/barber-agenda/internal/handlers"
	infraRepo "github.com/NavalhaDigital/barber-agenda/internal/infra/repository"
	"github.com/NavalhaDigital/barber-agenda/internal/media"
	"github.com/NavalhaDigital/barber-agenda/internal/middleware"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
	ucAppointment "github.com/NavalhaDigital/barber-agenda/internal/usecase/appointment"
	ucReport "github.com/NavalhaDigital/barber-agenda/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.New(cfg.RedisAddr)
	logoStorage := media.NewLogoStorage(cfg)

	clock := schedule.SystemClock{}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
		clock,
	)

	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		clock,
	)

	walkInUC := ucAppointment.NewCreateWalkIn(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		clock,
	)

	statusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		clock,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	timelineUC := ucAppointment.NewGetDayTimeline(appointmentRepo, clock)

	revenueUC := ucReport.NewRevenue(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db, logoStorage)

	barberProductHandler := handlers.NewBarberProductHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, availabilityCache)
	blockHandler := handlers.NewBlockHandler(db, availabilityCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createBookingUC,
		walkInUC,
		statusUC,
		listUC,
		timelineUC,
	)

	reportHandler := handlers.NewReportHandler(revenueUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/products", publicHandler.ListProducts)
			publicAPI.GET("/:slug/availability", publicHandler.AvailabilityForClient)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/:slug/appointments/:reference", publicHandler.GetByReference)
		}

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

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)
			secured.POST("/me/barbershop/logo", barbershopHandler.UploadLogo)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/products", barberProductHandler.List)
			secured.POST("/me/products", barberProductHandler.Create)
			secured.PATCH("/me/products/:id", barberProductHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/blocks", blockHandler.List)
			secured.POST("/me/blocks", blockHandler.Create)
			secured.DELETE("/me/blocks/:id", blockHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.POST("/me/appointments/walkin", appointmentHandler.CreateWalkIn)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/appointments/timeline", appointmentHandler.Timeline)
			secured.PATCH("/me/appointments/:id/checkin", appointmentHandler.CheckIn)
			secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/reports/revenue", reportHandler.Revenue)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
