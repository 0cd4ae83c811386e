package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snadaily/internal/errors"
	"snadaily/internal/gateway"
)

// ShippingHandler proxies destination search, cost calculation, and waybill
// tracking to the shipping provider.
type ShippingHandler struct {
	shipping gateway.ShippingGateway
}

// NewShippingHandler creates a new shipping handler.
func NewShippingHandler(shipping gateway.ShippingGateway) *ShippingHandler {
	return &ShippingHandler{shipping: shipping}
}

// CalculateCostRequest represents a shipping cost query.
type CalculateCostRequest struct {
	Origin      int    `json:"origin" validate:"required"`
	Destination int    `json:"destination" validate:"required"`
	Weight      int    `json:"weight" validate:"required,min=1"`
	Courier     string `json:"courier" validate:"required"`
}

// SearchDestinations godoc
// @Summary Search shipping destinations by name
// @Tags shipping
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} gateway.Destination
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /shipping/destinations [get]
func (h *ShippingHandler) SearchDestinations(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "q is required",
			Code:  "VALIDATION_ERROR",
		})
	}

	destinations, err := h.shipping.SearchDestinations(c.Request().Context(), query)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, destinations)
}

// CalculateCost godoc
// @Summary Calculate shipping cost options
// @Tags shipping
// @Accept json
// @Produce json
// @Param request body CalculateCostRequest true "Cost query"
// @Success 200 {array} gateway.CostOption
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /shipping/cost [post]
func (h *ShippingHandler) CalculateCost(c echo.Context) error {
	var req CalculateCostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	options, err := h.shipping.CalculateCost(c.Request().Context(), req.Origin, req.Destination, req.Weight, req.Courier)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, options)
}

// TrackWaybill godoc
// @Summary Track a shipment by waybill number
// @Tags shipping
// @Produce json
// @Param awb query string true "Waybill number"
// @Param courier query string true "Courier code"
// @Success 200 {object} gateway.TrackingInfo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /shipping/track [get]
func (h *ShippingHandler) TrackWaybill(c echo.Context) error {
	awb := c.QueryParam("awb")
	courier := c.QueryParam("courier")
	if awb == "" || courier == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "awb and courier are required",
			Code:  "VALIDATION_ERROR",
		})
	}

	info, err := h.shipping.TrackWaybill(c.Request().Context(), awb, courier)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, info)
}
