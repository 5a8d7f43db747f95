package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool     `json:"ok"`
	ServicesLoaded  *int     `json:"services_loaded,omitempty"`
	LoadedAt        string   `json:"loaded_at,omitempty"`
	LastScan        string   `json:"last_scan,omitempty"`
	CacheAgeSeconds *float64 `json:"cache_age_seconds,omitempty"`
	CacheSeconds    *float64 `json:"cache_seconds,omitempty"`
	Scans           *uint64  `json:"scans,omitempty"`
	Mode            string   `json:"mode,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra describes catalog and cache state without triggering a scan.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.Catalog.Count()
		info := d.Monitor.Info()
		cacheSeconds := info.CacheDuration.Seconds()
		scans := info.Scans

		mon := componentStatus{
			OK:           true,
			LastScan:     "never",
			CacheSeconds: &cacheSeconds,
			Scans:        &scans,
			Mode:         "cold",
		}
		if info.LastScan != nil {
			age := d.Now().Sub(*info.LastScan).Seconds()
			mon.LastScan = info.LastScan.Format(time.RFC3339)
			mon.CacheAgeSeconds = &age
			mon.Mode = "cached"
			if age >= cacheSeconds {
				mon.Mode = "stale"
			}
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:             count > 0,
				ServicesLoaded: &count,
				LoadedAt:       d.Catalog.LoadedAt().Format(time.RFC3339),
			},
			"monitor": mon,
			"metrics": {
				OK:   true,
				Mode: metricsMode(d),
			},
		}

		render.JSON(w, r, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func metricsMode(d deps.Deps) string {
	if d.Metrics == nil {
		return "disabled"
	}
	return "enabled"
}

func determineMode(components map[string]componentStatus) string {
	if c, ok := components["catalog"]; ok && !c.OK {
		return "critical" // nothing to monitor
	}
	if m, ok := components["monitor"]; ok && m.Mode == "cold" {
		return "starting"
	}
	return "operational"
}
