package handlers

import (
	"net/http"

	"gardenmon/internal/service"
)

// NewRefreshHandler returns POST /api/refresh handler. It only drops the
// window cache; the UI re-requests data afterwards.
func NewRefreshHandler(svc *service.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Refresh()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshing"})
	}
}

// NewHealthHandler returns GET /health handler.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
