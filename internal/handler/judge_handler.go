package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snadaily/internal/auth"
	"snadaily/internal/errors"
	"snadaily/internal/service"
)

// JudgeHandler handles the judge-facing contest endpoints.
type JudgeHandler struct {
	judgeService service.JudgeService
}

// NewJudgeHandler creates a new judge handler.
func NewJudgeHandler(judgeService service.JudgeService) *JudgeHandler {
	return &JudgeHandler{judgeService: judgeService}
}

// SubmitScoreRequest represents a score submission for one entry.
type SubmitScoreRequest struct {
	Body    int    `json:"body" validate:"min=0,max=100"`
	Form    int    `json:"form" validate:"min=0,max=100"`
	Color   int    `json:"color" validate:"min=0,max=100"`
	Comment string `json:"comment"`
}

// Events godoc
// @Summary List events assigned to the calling judge
// @Tags judge
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /judge/events [get]
func (h *JudgeHandler) Events(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	events, err := h.judgeService.AssignedEvents(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Entries godoc
// @Summary List approved entries in the judge's assigned contests
// @Tags judge
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ContestRegistration
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /judge/entries [get]
func (h *JudgeHandler) Entries(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	entries, err := h.judgeService.Entries(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Score godoc
// @Summary Submit or overwrite scores for an approved entry
// @Tags judge
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body SubmitScoreRequest true "Score components, 0-100 each"
// @Success 200 {object} model.ContestRegistration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /judge/entries/{id}/score [post]
func (h *JudgeHandler) Score(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req SubmitScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	reg, err := h.judgeService.SubmitScore(c.Request().Context(), claims.UserID, id, service.SubmitScoreInput{
		Body:    req.Body,
		Form:    req.Form,
		Color:   req.Color,
		Comment: req.Comment,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, reg)
}
