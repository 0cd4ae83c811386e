package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"snadaily/internal/auth"
	"snadaily/internal/model"
	"snadaily/internal/service"
)

// MockContestService is a mock implementation of ContestService.
type MockContestService struct {
	mock.Mock
}

func (m *MockContestService) Register(ctx context.Context, input service.RegisterEntryInput) (*model.ContestRegistration, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContestRegistration), args.Error(1)
}

func (m *MockContestService) Get(ctx context.Context, id uint) (*model.ContestRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContestRegistration), args.Error(1)
}

func (m *MockContestService) List(ctx context.Context, status model.RegistrationStatus) ([]model.ContestRegistration, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContestRegistration), args.Error(1)
}

func (m *MockContestService) ListByUser(ctx context.Context, userID uint) ([]model.ContestRegistration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContestRegistration), args.Error(1)
}

func (m *MockContestService) SetStatus(ctx context.Context, id uint, status model.RegistrationStatus) (*model.ContestRegistration, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContestRegistration), args.Error(1)
}

func (m *MockContestService) Spin(ctx context.Context, id, userID uint) (string, error) {
	args := m.Called(ctx, id, userID)
	return args.String(0), args.Error(1)
}

func (m *MockContestService) Redeem(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockContestService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newMultipartContext(fields map[string]string, files map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		_ = w.WriteField(name, value)
	}
	for field, filename := range files {
		fw, _ := w.CreateFormFile(field, filename)
		_, _ = fw.Write([]byte("media bytes"))
	}
	_ = w.Close()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/contest/register", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &auth.Claims{UserID: 7, Role: model.RoleUser}, Valid: true})
	return c, rec
}

func TestContestHandler_Register(t *testing.T) {
	fields := map[string]string{
		"contest_name":   "Jakarta Betta Championship 2026",
		"fish_name":      "Crown Jewel",
		"tier":           "Diamond",
		"payment_amount": "150000",
	}

	t.Run("photo only", func(t *testing.T) {
		mockSvc := new(MockContestService)
		mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterEntryInput) bool {
			return in.UserID == 7 && in.Photo != nil && in.Video == nil
		})).Return(&model.ContestRegistration{ID: 1, UserID: 7}, nil)

		c, rec := newMultipartContext(fields, map[string]string{"fishPhoto": "photo.jpg"})
		h := NewContestHandler(mockSvc)

		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("photo and video", func(t *testing.T) {
		mockSvc := new(MockContestService)
		mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterEntryInput) bool {
			return in.Photo != nil && in.Video != nil && in.Video.Filename == "entry.mp4"
		})).Return(&model.ContestRegistration{ID: 2, UserID: 7}, nil)

		c, rec := newMultipartContext(fields, map[string]string{
			"fishPhoto": "photo.jpg",
			"fishVideo": "entry.mp4",
		})
		h := NewContestHandler(mockSvc)

		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing photo", func(t *testing.T) {
		mockSvc := new(MockContestService)

		c, _ := newMultipartContext(fields, nil)
		h := NewContestHandler(mockSvc)

		err := h.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertNotCalled(t, "Register")
	})
}

func TestOpenOptionalUpload(t *testing.T) {
	t.Run("absent part is not an error", func(t *testing.T) {
		c, _ := newMultipartContext(map[string]string{"contest_name": "x"}, nil)

		upload, file, err := openOptionalUpload(c, "fishVideo")
		assert.NoError(t, err)
		assert.Nil(t, upload)
		assert.Nil(t, file)
	})

	t.Run("present part is opened", func(t *testing.T) {
		c, _ := newMultipartContext(nil, map[string]string{"fishVideo": "entry.mp4"})

		upload, file, err := openOptionalUpload(c, "fishVideo")
		assert.NoError(t, err)
		assert.NotNil(t, upload)
		assert.Equal(t, "entry.mp4", upload.Filename)
		file.Close()
	})

	t.Run("unreadable form still errors", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/api/contest/register", `{"fishVideo":"x"}`)

		_, _, err := openOptionalUpload(c, "fishVideo")
		assert.Error(t, err)
	})
}
