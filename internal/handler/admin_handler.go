package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/service"
)

// AdminHandler handles admin management of judges, events, and contest
// registrations.
type AdminHandler struct {
	userService    service.UserService
	eventService   service.EventService
	contestService service.ContestService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService, eventService service.EventService, contestService service.ContestService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		eventService:   eventService,
		contestService: contestService,
	}
}

// JudgeRequest represents a judge account create or update request. The
// password is required on create and optional on update.
type JudgeRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"`
}

// EventRequest represents an event create or update request.
type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Location    string `json:"location"`
	EventDate   string `json:"event_date"`
	Status      string `json:"status" validate:"omitempty,oneof=upcoming ongoing finished"`
}

// AssignJudgesRequest carries the full judge set for an event.
type AssignJudgesRequest struct {
	JudgeIDs []uint `json:"judge_ids" validate:"required"`
}

// SetRegistrationStatusRequest moves a pending registration.
type SetRegistrationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ListJudges godoc
// @Summary List judge accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/judges [get]
func (h *AdminHandler) ListJudges(c echo.Context) error {
	judges, err := h.userService.ListJudges(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, judges)
}

// CreateJudge godoc
// @Summary Create a judge account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JudgeRequest true "Judge account"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/judges [post]
func (h *AdminHandler) CreateJudge(c echo.Context) error {
	var req JudgeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "password is required",
			Code:  "VALIDATION_ERROR",
		})
	}

	judge, err := h.userService.CreateJudge(c.Request().Context(), service.JudgeInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusCreated, judge)
}

// UpdateJudge godoc
// @Summary Update a judge account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Judge ID"
// @Param request body JudgeRequest true "Judge account"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/judges/{id} [put]
func (h *AdminHandler) UpdateJudge(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req JudgeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	judge, err := h.userService.UpdateJudge(c.Request().Context(), id, service.JudgeInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, judge)
}

// DeleteJudge godoc
// @Summary Delete a judge account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Judge ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/judges/{id} [delete]
func (h *AdminHandler) DeleteJudge(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.userService.DeleteJudge(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "judge deleted"})
}

// ListEvents godoc
// @Summary List contest events
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Router /admin/events [get]
func (h *AdminHandler) ListEvents(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get a contest event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [get]
func (h *AdminHandler) GetEvent(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	event, err := h.eventService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a contest event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event details"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/events [post]
func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventService.Create(c.Request().Context(), eventInput(req))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update a contest event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event details"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [put]
func (h *AdminHandler) UpdateEvent(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventService.Update(c.Request().Context(), id, eventInput(req))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete a contest event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [delete]
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.eventService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
}

// AssignJudges godoc
// @Summary Replace the judge set assigned to an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body AssignJudgesRequest true "Judge IDs"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id}/judges [put]
func (h *AdminHandler) AssignJudges(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req AssignJudgesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventService.AssignJudges(c.Request().Context(), id, req.JudgeIDs)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, event)
}

// ListRegistrations godoc
// @Summary List contest registrations, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Registration status" Enums(pending, approved, rejected)
// @Success 200 {array} model.ContestRegistration
// @Router /admin/registrations [get]
func (h *AdminHandler) ListRegistrations(c echo.Context) error {
	status := model.RegistrationStatus(c.QueryParam("status"))
	regs, err := h.contestService.List(c.Request().Context(), status)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, regs)
}

// SetRegistrationStatus godoc
// @Summary Approve or reject a pending registration
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body SetRegistrationStatusRequest true "New status"
// @Success 200 {object} model.ContestRegistration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/registrations/{id}/status [patch]
func (h *AdminHandler) SetRegistrationStatus(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req SetRegistrationStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.contestService.SetStatus(c.Request().Context(), id, model.RegistrationStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, reg)
}

// DeleteRegistration godoc
// @Summary Delete a registration and its uploaded media
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/registrations/{id} [delete]
func (h *AdminHandler) DeleteRegistration(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.contestService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "registration deleted"})
}

// bindAndValidate binds the JSON body and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

func eventInput(req EventRequest) service.EventInput {
	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		EventDate:   req.EventDate,
		Status:      model.EventStatus(req.Status),
	}
}
