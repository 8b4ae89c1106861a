package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
)

// ContractHandler handles HTTP requests for delivery contract operations.
type ContractHandler struct {
	service ports.ContractService
}

func NewContractHandler(service ports.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// --- Request / Response types ---

type pointRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

type createContractRequest struct {
	AirlineID     string       `json:"airline_id" validate:"required"`
	PassengerName string       `json:"passenger_name" validate:"required"`
	Pickup        pointRequest `json:"pickup"`
	Dropoff       pointRequest `json:"dropoff"`
}

type createContractResponse struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type updateLocationRequest struct {
	Lat    float64 `json:"lat" validate:"latitude"`
	Lng    float64 `json:"lng" validate:"longitude"`
	Status string  `json:"status,omitempty" validate:"omitempty,oneof=pending accepted in_transit delivered cancelled failed"`
}

// Create handles POST /v1/contracts.
//
// @Summary      Register a new delivery contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body  body      createContractRequest  true  "Contract details"
// @Success      201   {object}  createContractResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreateContract(c.Request().Context(), ports.CreateContractInput{
		AirlineID:     req.AirlineID,
		PassengerName: req.PassengerName,
		Pickup:        domain.GeoPoint{Lat: req.Pickup.Lat, Lng: req.Pickup.Lng},
		Dropoff:       domain.GeoPoint{Lat: req.Dropoff.Lat, Lng: req.Dropoff.Lng},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createContractResponse{
		TrackingNumber: result.TrackingNumber,
		Status:         result.Status,
		CreatedAt:      result.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// UpdateLocation handles PUT /v1/contracts/:tracking_number/location.
//
// @Summary      Report the courier's current position
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        tracking_number  path      string                 true  "Tracking number (e.g. LG-7A8B9C2D)"
// @Param        body             body      updateLocationRequest  true  "Position and optional status"
// @Success      204              "updated"
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/contracts/{tracking_number}/location [put]
func (h *ContractHandler) UpdateLocation(c echo.Context) error {
	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateLocation(c.Request().Context(), ports.LocationUpdateInput{
		TrackingNumber: c.Param("tracking_number"),
		Position:       domain.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		Status:         req.Status,
		Timestamp:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
