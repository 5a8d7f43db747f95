package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/mw"
)

func init() { Register("dashboard", registerDashboard) }

func registerDashboard(r chi.Router, d deps.Deps) {
	pages := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	pages.Get("/", handlers.Dashboard(d))
	pages.Get("/about", handlers.About(d))
	pages.Get("/about.html", handlers.About(d))

	if d.IconsDir == "" {
		return
	}
	r.Handle("/icons/*", handlers.Icons(d))
	r.Get("/favicon.ico", handlers.Favicon(d))
}
