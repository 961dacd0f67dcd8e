package router

import (
	"net/http"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(kind domain.EventKind) ginext.HandlerFunc
	GetEvent(kind domain.EventKind) ginext.HandlerFunc
	ListEvents(kind domain.EventKind) ginext.HandlerFunc
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	Register(kind domain.EventKind) ginext.HandlerFunc
	Unregister(kind domain.EventKind) ginext.HandlerFunc
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	ListClubs(c *ginext.Context)
	GetClub(c *ginext.Context)
}

// HealthFunc reports the state of optional dependencies for /health.
type HealthFunc func() map[string]string

func InitRouter(mode string, h Handler, metrics http.Handler, health HealthFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/clubs/:clubId/events", h.CreateEvent(""))
		api.POST("/clubs/:clubId/tournaments", h.CreateEvent(domain.EventKindTournament))
		api.POST("/clubs/:clubId/trainings", h.CreateEvent(domain.EventKindTraining))

		for path, kind := range map[string]domain.EventKind{
			"/events":      "",
			"/tournaments": domain.EventKindTournament,
			"/trainings":   domain.EventKindTraining,
		} {
			api.GET(path, h.ListEvents(kind))
			api.GET(path+"/:id", h.GetEvent(kind))

			// Registrations
			api.POST(path+"/:id/register/:userId", h.Register(kind))
			api.DELETE(path+"/:id/register/:userId", h.Unregister(kind))
		}

		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)

		// Clubs
		api.GET("/clubs", h.ListClubs)
		api.GET("/clubs/:clubId", h.GetClub)
	}

	router.GET("/health", func(c *ginext.Context) {
		resp := ginext.H{"status": "ok"}
		if health != nil {
			for k, v := range health() {
				resp[k] = v
			}
		}
		c.JSON(http.StatusOK, resp)
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
