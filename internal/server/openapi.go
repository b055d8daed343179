package server

import (
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "sortcycle API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Local companion API for the sortcycle waste-sorting trainer.")

	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	getItems, _ := r.NewOperationContext(http.MethodGet, "/api/items")
	getItems.SetSummary("Search the item catalog")
	getItems.SetDescription("Substring search over names, image keys and keywords, resolved under the active region. An empty query returns no items.")
	getItems.AddRespStructure(SearchResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getItems)

	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/stats")
	getStats.SetSummary("Consumption statistics")
	getStats.AddRespStructure(StatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStats)

	getTrend, _ := r.NewOperationContext(http.MethodGet, "/api/trend")
	getTrend.SetSummary("Last seven days of logging, bucketed per day")
	getTrend.AddRespStructure(TrendResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getTrend)

	getLogs, _ := r.NewOperationContext(http.MethodGet, "/api/logs")
	getLogs.SetSummary("Recent log entries, newest first")
	getLogs.AddRespStructure(LogsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getLogs.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getLogs)

	postLogs, _ := r.NewOperationContext(http.MethodPost, "/api/logs")
	postLogs.SetSummary("Log a waste action")
	postLogs.AddReqStructure(CreateLogRequest{})
	postLogs.AddRespStructure(LogEntry{}, openapi.WithHTTPStatus(http.StatusCreated))
	postLogs.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postLogs)

	deleteLog, _ := r.NewOperationContext(http.MethodDelete, "/api/logs/{id}")
	deleteLog.SetSummary("Delete a log entry")
	deleteLog.SetDescription("Deleting an entry that no longer exists still succeeds.")
	deleteLog.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteLog.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(deleteLog)

	getRegion, _ := r.NewOperationContext(http.MethodGet, "/api/region")
	getRegion.SetSummary("Active region and available rule sets")
	getRegion.AddRespStructure(RegionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getRegion)

	putRegion, _ := r.NewOperationContext(http.MethodPut, "/api/region")
	putRegion.SetSummary("Select the active region")
	putRegion.AddReqStructure(SetRegionRequest{})
	putRegion.AddRespStructure(RegionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putRegion.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putRegion)

	deleteRegion, _ := r.NewOperationContext(http.MethodDelete, "/api/region")
	deleteRegion.SetSummary("Clear the active region")
	deleteRegion.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(deleteRegion)

	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getBoard.SetSummary("Best score and top five past scores")
	getBoard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	return r.Spec
}

func handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	spec := newOpenAPISpec()
	data, err := spec.MarshalJSON()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "building openapi document")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
