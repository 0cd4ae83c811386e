package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrFishNotFound is returned when a fish record is not found.
	ErrFishNotFound = errors.New("fish not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrRegistrationNotFound is returned when a contest registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrEventNotFound is returned when a contest event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when login credentials are wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrForbidden is returned when the caller's role does not permit the action.
	ErrForbidden = errors.New("forbidden")
	// ErrJudgeNotAssigned is returned when a judge scores an entry outside their events.
	ErrJudgeNotAssigned = errors.New("judge is not assigned to this contest")
	// ErrFishUnavailable is returned when ordering a fish that is already sold.
	ErrFishUnavailable = errors.New("fish is not available")
	// ErrInvalidStatusTransition is returned for a transition outside the workflow.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	// ErrSpinNotAllowed is returned when the spin guards reject a claim.
	ErrSpinNotAllowed = errors.New("spin prize not available for this registration")
	// ErrPrizeAlreadyRedeemed is returned when a prize is redeemed twice.
	ErrPrizeAlreadyRedeemed = errors.New("prize already redeemed")
	// ErrInvalidDates is returned when catch/import dates conflict with the method.
	ErrInvalidDates = errors.New("catch date and import date are mutually exclusive")
	// ErrInvalidScore is returned when a score component is outside 0-100.
	ErrInvalidScore = errors.New("score components must be between 0 and 100")
	// ErrChatUnavailable is returned when no chat provider is configured.
	ErrChatUnavailable = errors.New("chat assistant is not available")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// UpstreamError wraps a failure from an external provider (payment, shipping,
// storage, AI). No retries are attempted; the failure surfaces in the same
// request. The provider message is only forwarded to the client in
// development builds.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps a provider failure.
func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Provider detail for
// upstream failures is masked here; development mode re-attaches it in the
// global error handler.
func MapErrorToHTTP(err error) *HTTPError {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return NewHTTPError(http.StatusInternalServerError, "upstream provider error", "UPSTREAM_ERROR")
	}

	switch {
	case errors.Is(err, ErrFishNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FISH_NOT_FOUND")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrRegistrationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REGISTRATION_NOT_FOUND")
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrJudgeNotAssigned):
		return NewHTTPError(http.StatusForbidden, err.Error(), "JUDGE_NOT_ASSIGNED")
	case errors.Is(err, ErrFishUnavailable):
		return NewHTTPError(http.StatusConflict, err.Error(), "FISH_UNAVAILABLE")
	case errors.Is(err, ErrInvalidStatusTransition):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS_TRANSITION")
	case errors.Is(err, ErrSpinNotAllowed):
		return NewHTTPError(http.StatusConflict, err.Error(), "SPIN_NOT_ALLOWED")
	case errors.Is(err, ErrPrizeAlreadyRedeemed):
		return NewHTTPError(http.StatusConflict, err.Error(), "PRIZE_ALREADY_REDEEMED")
	case errors.Is(err, ErrInvalidDates):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATES")
	case errors.Is(err, ErrInvalidScore):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SCORE")
	case errors.Is(err, ErrChatUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "CHAT_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
