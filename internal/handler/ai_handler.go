package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snadaily/internal/errors"
	"snadaily/internal/gateway"
)

// AIHandler handles the betta-care chat endpoint.
type AIHandler struct {
	chat gateway.ChatGateway
}

// NewAIHandler creates a new AI chat handler.
func NewAIHandler(chat gateway.ChatGateway) *AIHandler {
	return &AIHandler{chat: chat}
}

// ChatRequest carries one user message; the conversation is stateless.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the model's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat godoc
// @Summary Ask the betta-care assistant a question
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /ai/chat [post]
func (h *AIHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reply, err := h.chat.Reply(c.Request().Context(), req.Message)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
