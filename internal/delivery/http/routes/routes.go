package routes

import (
	"skill-bridge/internal/delivery/http/handler"
	"skill-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health          *handler.HealthHandler
	Auth            *handler.AuthHandler
	Recommendations *handler.RecommendationHandler
	Events          *ws.Handler
}

// Register mounts every route at the root: the dashboard client calls
// /login, /signup, /mentors, and /jobs without a version prefix.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Auth != nil {
		r.Auth.RegisterRoutes(app)
	}
	if r.Recommendations != nil {
		r.Recommendations.RegisterRoutes(app)
	}
	if r.Events != nil {
		app.Get("/ws", r.Events.HandleEventsWS)
	}
}
