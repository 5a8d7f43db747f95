package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool `json:"ready"`
	Services int  `json:"services"`
	Warm     bool `json:"warm"` // at least one scan completed
}

// Readyz reports ready once a non-empty catalog is loaded. A cold cache is
// not a reason to refuse traffic: the first status request scans.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := d.Monitor.Info()
		resp := readyzResponse{
			Ready:    d.Catalog.Count() > 0,
			Services: d.Catalog.Count(),
			Warm:     info.LastScan != nil,
		}

		if !resp.Ready {
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, resp)
	}
}
