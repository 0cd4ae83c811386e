package handler

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"snadaily/internal/auth"
	"snadaily/internal/errors"
	"snadaily/internal/service"
)

// ContestHandler handles the user-facing contest endpoints.
type ContestHandler struct {
	contestService service.ContestService
}

// NewContestHandler creates a new contest handler.
func NewContestHandler(contestService service.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

// RegisterEntryRequest represents the multipart form fields of a contest
// entry. Media arrives as the fishPhoto and fishVideo file parts.
type RegisterEntryRequest struct {
	ContestName   string `form:"contest_name" validate:"required"`
	FishName      string `form:"fish_name" validate:"required"`
	FishType      string `form:"fish_type"`
	FishSize      string `form:"fish_size"`
	Tier          string `form:"tier" validate:"required,oneof=Standard Gold Diamond"`
	PaymentAmount string `form:"payment_amount" validate:"required"`
}

// SpinResponse carries the prize from a successful wheel spin.
type SpinResponse struct {
	Prize string `json:"prize"`
}

// Register godoc
// @Summary Register a contest entry with media upload
// @Tags contest
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param contest_name formData string true "Contest name"
// @Param fish_name formData string true "Fish name"
// @Param tier formData string true "Tier" Enums(Standard, Gold, Diamond)
// @Param payment_amount formData string true "Payment amount"
// @Param fishPhoto formData file true "Entry photo"
// @Param fishVideo formData file false "Entry video"
// @Success 201 {object} model.ContestRegistration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contest/register [post]
func (h *ContestHandler) Register(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req RegisterEntryRequest
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

	amount, err := decimal.NewFromString(req.PaymentAmount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid payment_amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	photo, photoFile, err := openUpload(c, "fishPhoto")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "fishPhoto is required",
			Code:  "MISSING_PHOTO",
		})
	}
	defer photoFile.Close()

	input := service.RegisterEntryInput{
		UserID:        claims.UserID,
		ContestName:   req.ContestName,
		FishName:      req.FishName,
		FishType:      req.FishType,
		FishSize:      req.FishSize,
		Tier:          req.Tier,
		PaymentAmount: amount,
		Photo:         photo,
	}

	video, videoFile, err := openOptionalUpload(c, "fishVideo")
	if err != nil {
		// The part was supplied but could not be read.
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "fishVideo could not be read",
			Code:  "INVALID_VIDEO",
		})
	}
	if video != nil {
		defer videoFile.Close()
		input.Video = video
	}

	reg, err := h.contestService.Register(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusCreated, reg)
}

// MyRegistrations godoc
// @Summary List the caller's own registrations
// @Tags contest
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ContestRegistration
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contest/my-registrations [get]
func (h *ContestHandler) MyRegistrations(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	regs, err := h.contestService.ListByUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, regs)
}

// Spin godoc
// @Summary Claim the Diamond-tier spin prize
// @Tags contest
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} SpinResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /contest/registrations/{id}/spin [post]
func (h *ContestHandler) Spin(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	prize, err := h.contestService.Spin(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, SpinResponse{Prize: prize})
}

// Redeem godoc
// @Summary Redeem a claimed spin prize
// @Tags contest
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /contest/registrations/{id}/redeem [post]
func (h *ContestHandler) Redeem(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.contestService.Redeem(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "prize redeemed"})
}

// openUpload extracts one multipart file as a streamed MediaUpload.
func openUpload(c echo.Context, field string) (*service.MediaUpload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, file, nil
}

// openOptionalUpload is openUpload for parts the form may omit: an absent
// part is not an error, anything else still is.
func openOptionalUpload(c echo.Context, field string) (*service.MediaUpload, multipart.File, error) {
	upload, file, err := openUpload(c, field)
	if stderrors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	return upload, file, err
}

// parseUintParam parses a numeric path parameter.
func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(value), nil
}
