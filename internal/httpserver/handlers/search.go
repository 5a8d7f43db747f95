package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 20
)

type searchResult struct {
	serviceView
	Score float64 `json:"score"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
}

// Search redirects to the best matching service, or back to the dashboard.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		// Empty query -> redirect to dashboard
		if query == "" {
			d.Logger.Debug("empty query, redirecting to dashboard")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		// Internal endpoints (queries starting with /)
		if strings.HasPrefix(query, "/") {
			target := matchInternalEndpoint(query)
			if target == "" {
				target = "/"
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		best := domain.FindBestMatch(domain.ParseQuery(query), d.Catalog.Services())
		if best == nil {
			d.Logger.Info("no matching service found",
				logger.String("query", query))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		d.Logger.Info("resolved service",
			logger.String("query", query),
			logger.String("service", best.Name))
		http.Redirect(w, r, best.URL(), http.StatusFound)
	}
}

// SearchAPI returns ranked suggestions for the dashboard search box.
func SearchAPI(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		limit := parseLimit(r.URL.Query().Get("limit"))

		results := make([]searchResult, 0, limit)
		if query != "" {
			for _, c := range domain.RankCandidates(domain.ParseQuery(query), d.Catalog.Services()) {
				if len(results) == limit {
					break
				}
				results = append(results, searchResult{
					serviceView: newServiceView(c.Service),
					Score:       c.Score,
				})
			}
		}

		render.JSON(w, r, searchResponse{Query: query, Results: results})
	}
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultSearchLimit
	}
	return min(n, maxSearchLimit)
}

// matchInternalEndpoint returns the endpoint when exactly one starts with query.
func matchInternalEndpoint(query string) string {
	endpoints := []string{
		"/about",
		"/infra",
		"/healthz",
		"/readyz",
		"/api/status",
	}

	query = strings.ToLower(query)
	var matches []string
	for _, endpoint := range endpoints {
		if strings.HasPrefix(endpoint, query) {
			matches = append(matches, endpoint)
		}
	}

	if len(matches) == 1 {
		return matches[0]
	}
	return ""
}
