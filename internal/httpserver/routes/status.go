package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/handlers"
)

func init() { Register("status", registerStatus) }

// The status surface is open to the whole LAN.
func registerStatus(r chi.Router, d deps.Deps) {
	r.Get("/api/status", handlers.Status(d))
	r.Get("/api/services", handlers.Services(d))
}
