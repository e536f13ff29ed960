package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/service-auto/internal/audit"
	"github.com/BruksfildServices01/service-auto/internal/config"
	domainAppointment "github.com/BruksfildServices01/service-auto/internal/domain/appointment"
	"github.com/BruksfildServices01/service-auto/internal/handlers"
	infraRepo "github.com/BruksfildServices01/service-auto/internal/infra/repository"
	"github.com/BruksfildServices01/service-auto/internal/infra/storage"
	"github.com/BruksfildServices01/service-auto/internal/middleware"
	"github.com/BruksfildServices01/service-auto/internal/models"
	"github.com/BruksfildServices01/service-auto/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/service-auto/internal/usecase/appointment"
)

type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger
	Store  storage.Store
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) error {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(deps.Logger),
		middleware.RecoveryMiddleware(deps.Logger),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	clientsPolicy, err := storage.ParseReadPolicy(cfg.Storage.ClientsReadPolicy)
	if err != nil {
		return fmt.Errorf("CLIENTS_READ_POLICY: %w", err)
	}
	appointmentsPolicy, err := storage.ParseReadPolicy(cfg.Storage.AppointmentsReadPolicy)
	if err != nil {
		return fmt.Errorf("APPOINTMENTS_READ_POLICY: %w", err)
	}

	clients := storage.NewCollection[models.Client](
		deps.Store, cfg.Storage.ClientsCollection, clientsPolicy, deps.Logger,
	)
	appointments := storage.NewCollection[models.Appointment](
		deps.Store, cfg.Storage.AppointmentsCollection, appointmentsPolicy, deps.Logger,
	)

	clientRepo := infraRepo.NewClientCollectionRepository(clients)
	appointmentRepo := infraRepo.NewAppointmentCollectionRepository(appointments)

	window := domainAppointment.Window{
		OpenHour:    cfg.Schedule.OpenHour,
		CloseHour:   cfg.Schedule.CloseHour,
		SlotMinutes: cfg.Schedule.SlotMinutes,
		Strict:      cfg.Schedule.StrictInterval,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		clientRepo,
		appointmentRepo,
		window,
		timezone.Location(cfg.ShopTimezone),
		deps.Audit,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	appendServiceEventUC := ucAppointment.NewAppendServiceEvent(appointmentRepo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		createAppointmentUC,
		appendServiceEventUC,
	)
	clientHandler := handlers.NewClientHandler(clientRepo, deps.Audit)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	programari := r.Group("/programari")
	{
		programari.GET("", appointmentHandler.List)
		programari.POST("", appointmentHandler.Create)
		programari.POST("/:programareId/istoric", appointmentHandler.AppendHistory)
	}

	clienti := r.Group("/clienti")
	{
		clienti.GET("", clientHandler.List)
		clienti.POST("", clientHandler.Create)
		clienti.PUT("/:id", clientHandler.Update)
		clienti.DELETE("/:id", clientHandler.Delete)
	}

	return nil
}
