package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
)

type serviceView struct {
	Name   string `json:"name"`
	Emoji  string `json:"emoji,omitempty"`
	Domain string `json:"domain,omitempty"`
	URL    string `json:"url"`
	Port   int    `json:"port"`
}

type servicesResponse struct {
	Services                []serviceView `json:"services"`
	OfflineThresholdSeconds float64       `json:"offline_threshold_seconds"`
	PollIntervalSeconds     float64       `json:"poll_interval_seconds"`
}

func newServiceView(s *domain.Service) serviceView {
	return serviceView{
		Name:   s.Name,
		Emoji:  s.Emoji,
		Domain: s.Domain,
		URL:    s.URL(),
		Port:   s.Port,
	}
}

// Services lists the catalog for the dashboard script.
func Services(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svcs := d.Catalog.Services()
		views := make([]serviceView, 0, len(svcs))
		for _, s := range svcs {
			views = append(views, newServiceView(s))
		}

		render.JSON(w, r, servicesResponse{
			Services:                views,
			OfflineThresholdSeconds: d.OfflineThreshold.Seconds(),
			PollIntervalSeconds:     pollInterval(d).Seconds(),
		})
	}
}
