// Package http exposes the back-office over a JSON API: one route group per
// feature module, gated by the session middleware.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yurisurdi/flats/internal/backup"
	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/service"
)

// Server wires the services into a gin router.
type Server struct {
	auth       service.AuthService
	clients    *service.ClientService
	agents     *service.AgentService
	apartments *service.ApartmentService
	bookings   *service.BookingService
	settings   *service.SettingsService
	reports    *service.ReportService
	backup     *backup.Service
	logger     *zap.Logger
}

// New constructs a server over the application services.
func New(
	auth service.AuthService,
	clients *service.ClientService,
	agents *service.AgentService,
	apartments *service.ApartmentService,
	bookings *service.BookingService,
	settings *service.SettingsService,
	reports *service.ReportService,
	backupSvc *backup.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		auth:       auth,
		clients:    clients,
		agents:     agents,
		apartments: apartments,
		bookings:   bookings,
		settings:   settings,
		reports:    reports,
		backup:     backupSvc,
		logger:     logger,
	}
}

// Router builds the route table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.requestLogger())

	api := r.Group("/api")
	api.POST("/auth/login", s.login)

	authed := api.Group("/")
	authed.Use(s.requireAuth())
	{
		authed.GET("/clients", s.listClients)
		authed.GET("/clients/:id", s.getClient)
		authed.POST("/clients", s.addClient)
		authed.PUT("/clients/:id", s.updateClient)
		authed.DELETE("/clients/:id", s.deleteClient)

		authed.GET("/agents", s.listAgents)
		authed.GET("/agents/:id", s.getAgent)
		authed.POST("/agents", s.addAgent)
		authed.PUT("/agents/:id", s.updateAgent)
		authed.DELETE("/agents/:id", s.deleteAgent)

		authed.GET("/apartments", s.listApartments)
		authed.GET("/apartments/:id", s.getApartment)
		authed.POST("/apartments", s.addApartment)
		authed.PUT("/apartments/:id", s.updateApartment)
		authed.DELETE("/apartments/:id", s.deleteApartment)
		authed.GET("/apartments/:id/videos", s.listVideos)
		authed.POST("/apartments/:id/videos", s.uploadVideo)
		authed.GET("/media/:id", s.downloadVideo)
		authed.DELETE("/media/:id", s.deleteVideo)
		authed.GET("/media-usage", s.mediaUsage)

		authed.GET("/bookings", s.listBookings)
		authed.GET("/bookings/:id", s.getBooking)
		authed.POST("/bookings", s.addBooking)
		authed.PUT("/bookings/:id", s.updateBooking)
		authed.DELETE("/bookings/:id", s.deleteBooking)

		authed.GET("/reports/dashboard", s.dashboard)
		authed.GET("/reports/commissions", s.commissions)

		authed.GET("/settings", s.getSettings)
		authed.PUT("/settings", s.updateSettings)
		authed.PUT("/account/username", s.changeUsername)
		authed.PUT("/account/password", s.changePassword)

		authed.GET("/backup/export", s.exportBackup)
		authed.POST("/backup/import", s.importBackup)
	}

	return r
}

// fail maps service errors onto HTTP statuses: validation 400, auth 401,
// missing 404, anything else a generic 500 (the transient-notification path;
// details stay in the server log).
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrBadBackup):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage operation failed"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
