package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
)

// ProgressHandler handles one-shot progress snapshot requests.
type ProgressHandler struct {
	service ports.ProgressService
}

func NewProgressHandler(service ports.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

type progressResponse struct {
	TrackingNumber string                  `json:"tracking_number"`
	Status         string                  `json:"status"`
	Progress       domain.ProgressSnapshot `json:"progress"`
	ETA            string                  `json:"eta,omitempty"`
	EstimateSource string                  `json:"estimate_source,omitempty"`
}

func toProgressResponse(r *ports.ProgressResult) progressResponse {
	return progressResponse{
		TrackingNumber: r.TrackingNumber,
		Status:         r.Status,
		Progress:       r.Progress,
		ETA:            r.ETA,
		EstimateSource: r.EstimateSource,
	}
}

// Get handles GET /v1/contracts/:tracking_number/progress.
//
// @Summary      Get the current delivery progress snapshot
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true   "Tracking number (e.g. LG-7A8B9C2D)"
// @Param        mode             query     string  false  "Estimation mode: routed (default) or haversine"
// @Success      200              {object}  progressResponse
// @Failure      404              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /v1/contracts/{tracking_number}/progress [get]
func (h *ProgressHandler) Get(c echo.Context) error {
	routed := c.QueryParam("mode") != "haversine"

	result, err := h.service.Snapshot(c.Request().Context(), c.Param("tracking_number"), routed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProgressResponse(result))
}
