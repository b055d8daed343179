package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/appengine-ltd/sortcycle/internal/storage"
)

func newTestRouter(t *testing.T) (*chi.Mux, *API) {
	t.Helper()
	api := NewAPI(storage.NewMemoryStore())
	r := chi.NewRouter()
	api.addRoutes(r)
	return r, api
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSearchEmptyQueryReturnsNoItems(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/items?q=", nil)
	resp := decode[SearchResponse](t, rec)
	if len(resp.Items) != 0 {
		t.Fatalf("expected no items for empty query, got %d", len(resp.Items))
	}
}

func TestSearchResolvesUnderActiveRegion(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/items?q=pizza+box", nil)
	resp := decode[SearchResponse](t, rec)
	if len(resp.Items) != 1 || resp.Items[0].EffectiveCategory != "compost" {
		t.Fatalf("expected default compost for pizza box, got %+v", resp.Items)
	}

	rec = doJSON(t, r, http.MethodPut, "/api/region", SetRegionRequest{Name: "United Kingdom"})
	if rec.Code != http.StatusOK {
		t.Fatalf("setting region: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/items?q=pizza+box", nil)
	resp = decode[SearchResponse](t, rec)
	if len(resp.Items) != 1 || resp.Items[0].EffectiveCategory != "recycle" {
		t.Fatalf("expected UK recycle override for pizza box, got %+v", resp.Items)
	}
}

func TestLogLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/logs", CreateLogRequest{Category: "recycle"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	created := decode[LogEntry](t, rec)

	rec = doJSON(t, r, http.MethodGet, "/api/stats", nil)
	stats := decode[StatsResponse](t, rec)
	if stats.Today.Recycle != 1 || stats.WeekTotal != 1 || stats.Streak != 1 {
		t.Fatalf("unexpected stats after one recycle: %+v", stats)
	}
	if stats.DiversionRate != 1 {
		t.Fatalf("expected diversion 1, got %v", stats.DiversionRate)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/logs/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/logs", nil)
	logs := decode[LogsResponse](t, rec)
	if len(logs.Entries) != 0 {
		t.Fatalf("expected empty log after delete, got %d", len(logs.Entries))
	}

	// Idempotent: deleting again still succeeds.
	rec = doJSON(t, r, http.MethodDelete, "/api/logs/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("second delete: %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/logs/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestLogCreateRejectsUnknownCategory(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/logs", CreateLogRequest{Category: "plutonium"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegionUnknownNameIs404(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPut, "/api/region", SetRegionRequest{Name: "Atlantis"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/region", nil)
	region := decode[RegionResponse](t, rec)
	if region.Name != "" {
		t.Fatalf("failed set must not activate a region, got %q", region.Name)
	}
	if len(region.Available) != 5 {
		t.Fatalf("expected 5 available regions, got %d", len(region.Available))
	}
}

func TestRegionClear(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPut, "/api/region", SetRegionRequest{Name: "Ontario"})

	rec := doJSON(t, r, http.MethodDelete, "/api/region", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("clear: %d", rec.Code)
	}
	region := decode[RegionResponse](t, doJSON(t, r, http.MethodGet, "/api/region", nil))
	if region.Name != "" {
		t.Fatalf("expected cleared region, got %q", region.Name)
	}
}

func TestLogsLimitValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/logs?limit=0", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for limit=0, got %d", rec.Code)
	}
	rec = doJSON(t, r, http.MethodGet, "/api/logs?limit=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for limit=abc, got %d", rec.Code)
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	r, _ := newTestRouter(t)
	board := decode[LeaderboardResponse](t, doJSON(t, r, http.MethodGet, "/api/leaderboard", nil))
	if board.Best != 0 || len(board.Scores) != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", board)
	}
}

func TestOpenAPIDocumentIsValidJSON(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/openapi.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("openapi: %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi document is not JSON: %v", err)
	}
	if _, ok := doc["paths"]; !ok {
		t.Fatalf("openapi document has no paths section")
	}
}
