package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"gardenmon/internal/models"
	"gardenmon/internal/service"
)

// NewGetRangesHandler returns GET /api/ranges handler.
func NewGetRangesHandler(svc *service.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Ranges())
	}
}

// NewPutRangesHandler returns PUT /api/ranges handler. The UI submits the
// full set of bands; partial updates are not supported.
func NewPutRangesHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ranges models.Ranges
		if err := json.NewDecoder(r.Body).Decode(&ranges); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := svc.UpdateRanges(r.Context(), ranges); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		logger.Info("ranges updated",
			zap.Float64("ph_min", ranges.PH.Min),
			zap.Float64("ph_max", ranges.PH.Max),
			zap.Float64("humidity_min", ranges.Humidity.Min),
			zap.Float64("light_max", ranges.Light.Max),
		)
		writeJSON(w, http.StatusOK, svc.Ranges())
	}
}
