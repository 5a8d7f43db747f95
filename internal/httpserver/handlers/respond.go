package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/lanscout/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v fully before touching the response, so a client
// either gets the whole body or a JSON error with status 500.
func writeJSON(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error("failed to encode response",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "failed to encode response"})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Debug("failed to write response", logger.Error(err))
	}
}

// noCache marks a response as never reusable by browsers or proxies.
func noCache(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}
