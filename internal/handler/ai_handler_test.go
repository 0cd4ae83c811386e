package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"snadaily/internal/errors"
	"snadaily/internal/gateway"
)

// MockChatGateway is a mock implementation of gateway.ChatGateway.
type MockChatGateway struct {
	mock.Mock
}

func (m *MockChatGateway) Reply(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestAIHandler_Chat(t *testing.T) {
	t.Run("answers the message", func(t *testing.T) {
		mockChat := new(MockChatGateway)
		mockChat.On("Reply", mock.Anything, "Berapa suhu air ideal?").
			Return("24-28 derajat Celsius.", nil)

		c, rec := newTestContext(http.MethodPost, "/api/ai/chat", `{"message":"Berapa suhu air ideal?"}`)
		h := NewAIHandler(mockChat)

		assert.NoError(t, h.Chat(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "24-28 derajat Celsius.")
		mockChat.AssertExpectations(t)
	})

	t.Run("provider failure keeps the cause on the error", func(t *testing.T) {
		cause := errors.NewUpstreamError("gemini", fmt.Errorf("quota exceeded for project 12345"))
		mockChat := new(MockChatGateway)
		mockChat.On("Reply", mock.Anything, "hi").Return("", cause)

		c, _ := newTestContext(http.MethodPost, "/api/ai/chat", `{"message":"hi"}`)
		h := NewAIHandler(mockChat)

		err := h.Chat(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.ErrorIs(t, httpErr.Internal, cause)
		mockChat.AssertExpectations(t)
	})

	t.Run("unconfigured provider answers 503", func(t *testing.T) {
		chat, err := gateway.NewGeminiChat(context.Background(), "", "gemini-2.0-flash")
		assert.NoError(t, err)

		c, _ := newTestContext(http.MethodPost, "/api/ai/chat", `{"message":"hi"}`)
		h := NewAIHandler(chat)

		err = h.Chat(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	})
}
