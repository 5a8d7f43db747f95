package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
	"github.com/MrSnakeDoc/lanscout/internal/utils"
)

type refreshResponse struct {
	Invalidated bool `json:"invalidated"`
}

// Refresh drops the cached status so the next read scans. It never scans
// itself: the cost stays bounded by the status polling rate.
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Monitor.Invalidate()
		d.Logger.Info("status cache invalidated via endpoint",
			logger.String("remote_ip", utils.ClientIP(r, d.TrustProxy)))

		render.Status(r, http.StatusAccepted)
		render.JSON(w, r, refreshResponse{Invalidated: true})
	}
}
