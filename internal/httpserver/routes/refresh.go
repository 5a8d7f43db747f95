package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/mw"
)

func init() { Register("refresh", registerRefresh) }

func registerRefresh(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RefreshBurst,
			RefillPerIPPerMin: d.RefreshPerMin,
			MaxEntries:        1024,
			TrustProxy:        d.TrustProxy,
		}),
	).Post("/api/refresh", handlers.Refresh(d))
}
