package server

import (
	"time"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/tracker"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ItemResult is a catalog item with its category resolved under the
// active region.
type ItemResult struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	ImageName         string              `json:"image_name"`
	EffectiveCategory catalog.Category    `json:"effective_category"`
	Subcategory       catalog.Subcategory `json:"subcategory,omitempty"`
	Fact              string              `json:"fact,omitempty"`
}

type SearchResponse struct {
	Query       string       `json:"query"`
	Items       []ItemResult `json:"items"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

type StatsResponse struct {
	Today         tracker.Counts `json:"today"`
	Week          tracker.Counts `json:"week"`
	TodayTotal    int            `json:"today_total"`
	WeekTotal     int            `json:"week_total"`
	Streak        int            `json:"streak"`
	DiversionRate float64        `json:"diversion_rate"`
	ImpactKg      float64        `json:"impact_kg"`
	Summary       string         `json:"summary"`
	Tip           string         `json:"tip"`
}

type TrendResponse struct {
	Days []tracker.DayCounts `json:"days"`
}

type LogEntry struct {
	ID       string           `json:"id"`
	LoggedAt time.Time        `json:"logged_at"`
	Category catalog.Category `json:"category"`
}

type LogsResponse struct {
	Entries []LogEntry `json:"entries"`
}

type CreateLogRequest struct {
	Category string `json:"category"`
}

type RegionResponse struct {
	Name      string `json:"name,omitempty"`
	Overrides int    `json:"overrides,omitempty"`
	Available []string `json:"available"`
}

type SetRegionRequest struct {
	Name string `json:"name"`
}

type LeaderboardResponse struct {
	Best   int   `json:"best"`
	Scores []int `json:"scores"`
}
