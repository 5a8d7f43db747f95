package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
)

type statusResponse struct {
	Status           domain.Snapshot         `json:"status"`
	OfflineDurations domain.OfflineDurations `json:"offline_durations"`
}

// Status serves the current snapshot and offline durations. Both maps
// come from the same scan.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := d.Monitor.GetStatus(r.Context())

		noCache(w)
		writeJSON(w, r, d.Logger, http.StatusOK, statusResponse{
			Status:           st.Snapshot,
			OfflineDurations: st.OfflineDurations,
		})
	}
}
