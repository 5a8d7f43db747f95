package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/mw"
)

func init() { Register("search", registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	s := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	s.Get("/search", handlers.Search(d))
	s.Get("/api/search", handlers.SearchAPI(d))
}
