package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
	"snadaily/internal/service"
)

// FishHandler handles provenance registry endpoints.
type FishHandler struct {
	fishService service.FishService
}

// NewFishHandler creates a new fish handler.
func NewFishHandler(fishService service.FishService) *FishHandler {
	return &FishHandler{fishService: fishService}
}

// CreateFishRequest represents a new provenance record submission.
type CreateFishRequest struct {
	ID         string  `json:"id"`
	Species    string  `json:"species" validate:"required"`
	Origin     string  `json:"origin"`
	Weight     float64 `json:"weight" validate:"gte=0"`
	Method     string  `json:"method" validate:"required"`
	CatchDate  string  `json:"catchDate"`
	ImportDate string  `json:"importDate"`
}

// UpdateFishRequest represents a partial update; only provided fields are
// written.
type UpdateFishRequest struct {
	Species    *string  `json:"species"`
	Origin     *string  `json:"origin"`
	Weight     *float64 `json:"weight" validate:"omitempty,gte=0"`
	Method     *string  `json:"method"`
	CatchDate  *string  `json:"catchDate"`
	ImportDate *string  `json:"importDate"`
}

// SetStatusRequest represents a status workflow transition.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available sold"`
}

// FishResponse wraps a record with the derived premium flag.
type FishResponse struct {
	model.Fish
	IsPremium bool `json:"is_premium"`
}

func toFishResponse(fish *model.Fish) FishResponse {
	return FishResponse{Fish: *fish, IsPremium: fish.IsPremium()}
}

// List godoc
// @Summary List fish records
// @Tags fish
// @Produce json
// @Param search query string false "Filter by id or species"
// @Success 200 {array} FishResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fish [get]
func (h *FishHandler) List(c echo.Context) error {
	fish, err := h.fishService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}

	out := make([]FishResponse, 0, len(fish))
	for i := range fish {
		out = append(out, toFishResponse(&fish[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get one fish record by certificate ID
// @Tags fish
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} FishResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fish/{id} [get]
func (h *FishHandler) Get(c echo.Context) error {
	fish, err := h.fishService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, toFishResponse(fish))
}

// Create godoc
// @Summary Create a fish record
// @Tags fish
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFishRequest true "Record data"
// @Success 201 {object} FishResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fish [post]
func (h *FishHandler) Create(c echo.Context) error {
	var req CreateFishRequest
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

	fish, err := h.fishService.Create(c.Request().Context(), service.CreateFishInput{
		ID:         req.ID,
		Species:    req.Species,
		Origin:     req.Origin,
		Weight:     req.Weight,
		Method:     req.Method,
		CatchDate:  req.CatchDate,
		ImportDate: req.ImportDate,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusCreated, toFishResponse(fish))
}

// Update godoc
// @Summary Update a fish record
// @Tags fish
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body UpdateFishRequest true "Fields to update"
// @Success 200 {object} FishResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fish/{id} [put]
func (h *FishHandler) Update(c echo.Context) error {
	var req UpdateFishRequest
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

	fish, err := h.fishService.Update(c.Request().Context(), c.Param("id"), repository.FishPatch{
		Species:    req.Species,
		Origin:     req.Origin,
		Weight:     req.Weight,
		Method:     req.Method,
		CatchDate:  req.CatchDate,
		ImportDate: req.ImportDate,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, toFishResponse(fish))
}

// SetStatus godoc
// @Summary Set the availability status of a fish
// @Tags fish
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body SetStatusRequest true "New status"
// @Success 200 {object} FishResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fish/{id}/status [patch]
func (h *FishHandler) SetStatus(c echo.Context) error {
	var req SetStatusRequest
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

	id := c.Param("id")
	if err := h.fishService.SetStatus(c.Request().Context(), id, model.FishStatus(req.Status)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}

	fish, err := h.fishService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, toFishResponse(fish))
}

// Delete godoc
// @Summary Delete a fish record
// @Tags fish
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fish/{id} [delete]
func (h *FishHandler) Delete(c echo.Context) error {
	if err := h.fishService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
