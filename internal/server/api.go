package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/game"
	"github.com/appengine-ltd/sortcycle/internal/prefs"
	"github.com/appengine-ltd/sortcycle/internal/storage"
	"github.com/appengine-ltd/sortcycle/internal/tracker"
)

// API owns the stores behind the HTTP surface. The stores expect a
// single owner, so every mutating or derived-view call is serialized here.
type API struct {
	mu      sync.Mutex
	items   []catalog.Item
	tracker *tracker.Store
	prefs   *prefs.Store
	board   *game.Leaderboard
}

func NewAPI(kv storage.KV) *API {
	return &API{
		items:   catalog.Items(),
		tracker: tracker.NewStore(kv),
		prefs:   prefs.NewStore(kv),
		board:   game.NewLeaderboard(kv),
	}
}

func (api *API) addRoutes(r chi.Router) {
	r.Get("/healthz", api.handleHealth)
	r.Get("/api/openapi.json", handleOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", api.handleSearch)
		r.Get("/stats", api.handleStats)
		r.Get("/trend", api.handleTrend)
		r.Get("/logs", api.handleLogsList)
		r.Post("/logs", api.handleLogCreate)
		r.Delete("/logs/{id}", api.handleLogDelete)
		r.Get("/region", api.handleRegionGet)
		r.Put("/region", api.handleRegionSet)
		r.Delete("/region", api.handleRegionClear)
		r.Get("/leaderboard", api.handleLeaderboard)
	})
}

func (api *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (api *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	api.mu.Lock()
	region := api.prefs.ActiveRegion()
	api.mu.Unlock()

	matches := catalog.Search(query, api.items)
	resp := SearchResponse{Query: query, Items: make([]ItemResult, 0, len(matches))}
	for _, item := range matches {
		cat, sub := catalog.EffectiveRule(item, region)
		resp.Items = append(resp.Items, ItemResult{
			ID:                item.ID.String(),
			Name:              item.Name,
			ImageName:         item.ImageName,
			EffectiveCategory: cat,
			Subcategory:       sub,
			Fact:              item.Fact,
		})
	}
	if len(matches) == 0 {
		resp.Suggestions = catalog.Suggest(query, api.items, 3)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (api *API) handleStats(w http.ResponseWriter, _ *http.Request) {
	api.mu.Lock()
	defer api.mu.Unlock()

	today := api.tracker.TodayCounts()
	week := api.tracker.WeekCounts()
	writeJSON(w, http.StatusOK, StatsResponse{
		Today:         today,
		Week:          week,
		TodayTotal:    today.Total(),
		WeekTotal:     week.Total(),
		Streak:        api.tracker.CurrentStreak(),
		DiversionRate: api.tracker.DiversionRate(),
		ImpactKg:      api.tracker.EstimatedImpact(),
		Summary:       api.tracker.Summary(),
		Tip:           api.tracker.Tip(),
	})
}

func (api *API) handleTrend(w http.ResponseWriter, _ *http.Request) {
	api.mu.Lock()
	defer api.mu.Unlock()
	writeJSON(w, http.StatusOK, TrendResponse{Days: api.tracker.Last7Days()})
}

func (api *API) handleLogsList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	api.mu.Lock()
	entries := api.tracker.Recent(limit)
	api.mu.Unlock()

	resp := LogsResponse{Entries: make([]LogEntry, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, LogEntry{
			ID:       entry.ID.String(),
			LoggedAt: entry.LoggedAt,
			Category: entry.Category,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (api *API) handleLogCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	cat, ok := catalog.ParseCategory(req.Category)
	if !ok {
		writeError(w, http.StatusBadRequest, "category must be recycle, compost or landfill")
		return
	}

	api.mu.Lock()
	entry := api.tracker.Append(cat)
	api.mu.Unlock()

	writeJSON(w, http.StatusCreated, LogEntry{
		ID:       entry.ID.String(),
		LoggedAt: entry.LoggedAt,
		Category: entry.Category,
	})
}

func (api *API) handleLogDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	// Deleting an absent entry is a no-op in the store; the API still
	// answers 204 so deletes are idempotent.
	api.mu.Lock()
	api.tracker.DeleteByID(id)
	api.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) regionResponse() RegionResponse {
	names := make([]string, 0, len(catalog.Regions()))
	for _, region := range catalog.Regions() {
		names = append(names, region.Name)
	}
	resp := RegionResponse{Available: names}
	if region := api.prefs.ActiveRegion(); region != nil {
		resp.Name = region.Name
		resp.Overrides = len(region.Overrides)
	}
	return resp
}

func (api *API) handleRegionGet(w http.ResponseWriter, _ *http.Request) {
	api.mu.Lock()
	resp := api.regionResponse()
	api.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (api *API) handleRegionSet(w http.ResponseWriter, r *http.Request) {
	var req SetRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	region, ok := catalog.RegionByName(req.Name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown region")
		return
	}

	api.mu.Lock()
	api.prefs.SetActiveRegion(&region)
	resp := api.regionResponse()
	api.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (api *API) handleRegionClear(w http.ResponseWriter, _ *http.Request) {
	api.mu.Lock()
	api.prefs.SetActiveRegion(nil)
	api.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (api *API) handleLeaderboard(w http.ResponseWriter, _ *http.Request) {
	api.mu.Lock()
	resp := LeaderboardResponse{Best: api.board.Best(), Scores: api.board.Top()}
	api.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}
