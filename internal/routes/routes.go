package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/events"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
)

// Deps are the process-wide singletons built in main. Cache, Publisher and
// Limiter may be no-ops.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       *slog.Logger
	Cache     cache.Cache
	Publisher events.Publisher
	Audit     *audit.Dispatcher
	AuditLog  audit.Reader
	Limiter   middleware.Counter
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
		middleware.Language(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	directoryRepo := infraRepo.NewDirectoryGormRepository(d.DB)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		ucAvailability.NewGetWeek(availabilityRepo, d.Cache, d.Log),
		ucAvailability.NewSaveWeek(availabilityRepo, d.Cache, d.Audit, d.Log),
		ucAvailability.NewAddSlot(availabilityRepo, d.Cache, d.Audit, d.Log),
		ucAvailability.NewDeleteSlot(availabilityRepo, d.Cache, d.Audit, d.Log),
		ucAvailability.NewMoveSlot(availabilityRepo, d.Cache, d.Audit, d.Log),
		ucAvailability.NewSetSlotStatus(availabilityRepo, d.Cache, d.Audit, d.Log),
		ucAvailability.NewGetBookable(availabilityRepo, d.Cache, d.Log),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewBookAppointment(appointmentRepo, d.Audit, d.Publisher, d.Log),
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, d.Publisher, d.Log),
		ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, d.Publisher, d.Log),
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewListAppointmentsByDate(appointmentRepo),
		ucAppointment.NewListAppointmentsByMonth(appointmentRepo),
		ucAppointment.NewListClientAppointments(appointmentRepo),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	storeHandler := handlers.NewStoreHandler(directoryRepo, d.Cache, d.Audit, d.Log)
	workerHandler := handlers.NewWorkerHandler(directoryRepo, d.Cache, d.Audit, d.Log)
	clientHandler := handlers.NewClientHandler(directoryRepo)
	friendHandler := handlers.NewFriendHandler(directoryRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog, directoryRepo)

	limited := middleware.RateLimit(d.Limiter, d.Config.RateLimitPerMinute, time.Minute, d.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		api.GET("/days", handlers.ListDays)
		api.GET("/days/translate", handlers.TranslateDay)

		// ------------------------------
		// STORES
		// ------------------------------
		api.GET("/stores", storeHandler.List)
		api.POST("/stores", limited, storeHandler.Create)
		api.GET("/stores/by-slug/:slug", storeHandler.GetBySlug)
		api.GET("/stores/:storeId", storeHandler.Get)
		api.PATCH("/stores/:storeId", storeHandler.Update)

		api.GET("/stores/:storeId/workers", workerHandler.List)
		api.POST("/stores/:storeId/workers", workerHandler.Create)
		api.GET("/stores/:storeId/audit-logs", auditLogsHandler.List)

		// ------------------------------
		// WORKERS
		// ------------------------------
		workers := api.Group("/workers/:workerId")
		{
			workers.GET("", workerHandler.Get)
			workers.PATCH("", workerHandler.Update)

			workers.GET("/availability", availabilityHandler.Get)
			workers.PUT("/availability", availabilityHandler.Save)
			workers.POST("/availability/slots", availabilityHandler.AddSlot)
			workers.DELETE("/availability/slots/:slotId", availabilityHandler.DeleteSlot)
			workers.PATCH("/availability/slots/:slotId/move", availabilityHandler.MoveSlot)
			workers.PATCH("/availability/slots/:slotId/status", availabilityHandler.SetStatus)
			workers.GET("/bookable", availabilityHandler.Bookable)

			workers.GET("/appointments", appointmentHandler.ListForWorker)
			workers.GET("/appointments/:id", appointmentHandler.GetForWorker)
			workers.PATCH("/appointments/:id/cancel", appointmentHandler.CancelByWorker)
			workers.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		}

		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.POST("/clients", limited, clientHandler.Register)

		clients := api.Group("/clients/:clientId")
		{
			clients.GET("", clientHandler.Get)
			clients.PATCH("", clientHandler.Update)

			clients.GET("/friends", friendHandler.List)
			clients.POST("/friends", friendHandler.Add)
			clients.DELETE("/friends/:friendId", friendHandler.Remove)

			clients.GET("/appointments", appointmentHandler.ListForClient)
			clients.POST("/appointments", limited, appointmentHandler.Book)
			clients.GET("/appointments/:id", appointmentHandler.GetForClient)
			clients.PATCH("/appointments/:id/cancel", appointmentHandler.CancelByClient)
		}
	}
}
