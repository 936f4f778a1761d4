package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/mafl/internal/httpserver/deps"
	"github.com/MrSnakeDoc/mafl/internal/httpserver/handlers"
)

func init() { Register(registerConfig) }

func registerConfig(r chi.Router, d deps.Deps) {
	r.Get("/api/config", handlers.Config(d))
	r.Get("/api/services", handlers.Services(d))
}
