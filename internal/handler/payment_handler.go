package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snadaily/internal/errors"
	"snadaily/internal/service"
)

// PaymentHandler issues checkout tokens for orders.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Token godoc
// @Summary Create a payment checkout token for an order
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Param order_id path string true "Order ID"
// @Success 200 {object} gateway.PaymentToken
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment/token/{order_id} [post]
func (h *PaymentHandler) Token(c echo.Context) error {
	id, err := parseOrderParam(c, "order_id")
	if err != nil {
		return err
	}

	token, err := h.paymentService.Token(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, token)
}
