package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
)

const defaultPollInterval = 5 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Title                   string
	Version                 string
	Services                []serviceView
	IconsEnabled            bool
	OfflineThresholdSeconds float64
	CacheSeconds            float64
	PollIntervalMillis      int64
}

func pollInterval(d deps.Deps) time.Duration {
	if d.PollInterval > 0 {
		return d.PollInterval
	}
	return defaultPollInterval
}

func newPageData(d deps.Deps) pageData {
	svcs := d.Catalog.Services()
	views := make([]serviceView, 0, len(svcs))
	for _, s := range svcs {
		views = append(views, newServiceView(s))
	}
	return pageData{
		Title:                   "LanScout",
		Version:                 d.Version,
		Services:                views,
		IconsEnabled:            d.IconsDir != "",
		OfflineThresholdSeconds: d.OfflineThreshold.Seconds(),
		CacheSeconds:            d.Monitor.Info().CacheDuration.Seconds(),
		PollIntervalMillis:      pollInterval(d).Milliseconds(),
	}
}

// Dashboard renders the tile page. Tiles start as "Checking..." and the
// page script fills them in from /api/status.
func Dashboard(d deps.Deps) http.HandlerFunc {
	return renderPage(d, "dashboard.html")
}

// About renders a short static description of the dashboard.
func About(d deps.Deps) http.HandlerFunc {
	return renderPage(d, "about.html")
}

func renderPage(d deps.Deps, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := pages.ExecuteTemplate(&buf, name, newPageData(d)); err != nil {
			d.Logger.Error("failed to render page",
				logger.String("template", name),
				logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := buf.WriteTo(w); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
