package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"gardenmon/internal/models"
	"gardenmon/internal/repository"
	"gardenmon/internal/service"
)

const hoursParam = "hours"

// windowHours reads the ?hours= parameter, defaulting when absent.
func windowHours(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(hoursParam)
	if raw == "" {
		return models.DefaultWindowHours, nil
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return hours, nil
}

// NewReadingsHandler returns GET /api/readings handler. An empty window is
// a normal 200 with an empty list; only a store failure is an error.
func NewReadingsHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hours, err := windowHours(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid hours parameter")
			return
		}

		readings, err := svc.Window(r.Context(), hours)
		if err != nil {
			respondWindowError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"window_hours": hours,
			"readings":     readings,
		})
	}
}

// NewLatestHandler returns GET /api/readings/latest handler. An empty store
// answers 204 so the UI can show its "no data" state; a connectivity
// failure answers 503 and renders differently.
func NewLatestHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := svc.Latest(r.Context())
		if err != nil {
			respondWindowError(w, logger, err)
			return
		}
		if latest == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, latest)
	}
}

// NewOverviewHandler returns GET /api/overview handler, one full render
// pass for the UI.
func NewOverviewHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hours, err := windowHours(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid hours parameter")
			return
		}

		overview, err := svc.Overview(r.Context(), hours)
		if err != nil {
			respondWindowError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, overview)
	}
}

func respondWindowError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWindow):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrStoreUnavailable):
		logger.Error("sensor store read failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "sensor store unavailable")
	default:
		logger.Error("unexpected dashboard error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
