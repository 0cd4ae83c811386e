package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"snadaily/internal/auth"
	"snadaily/internal/errors"
	"snadaily/internal/model"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret")
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "dewi",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "dewi").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "username already taken",
			username: "dewi",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "dewi").Return(&model.User{Username: "dewi"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, newTestJWTService(), "admin", "adminpass")
			user, err := svc.Register(context.Background(), tt.username, "password123", "Dewi Lestari", "0812")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEqual(t, "password123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("judge12345"), bcrypt.MinCost)
	assert.NoError(t, err)

	judge := &model.User{
		ID:           4,
		Username:     "judge.rahmat",
		PasswordHash: string(hash),
		Role:         model.RoleJudge,
	}

	t.Run("token carries stored role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "judge.rahmat").Return(judge, nil)

		svc := NewAuthService(mockRepo, newTestJWTService(), "admin", "adminpass")
		token, user, err := svc.Login(context.Background(), "judge.rahmat", "judge12345")

		assert.NoError(t, err)
		assert.Equal(t, model.RoleJudge, user.Role)

		claims, err := newTestJWTService().ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, uint(4), claims.UserID)
		assert.Equal(t, model.RoleJudge, claims.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "judge.rahmat").Return(judge, nil)

		svc := NewAuthService(mockRepo, newTestJWTService(), "admin", "adminpass")
		_, _, err := svc.Login(context.Background(), "judge.rahmat", "wrong")

		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, newTestJWTService(), "admin", "adminpass")
		_, _, err := svc.Login(context.Background(), "ghost", "whatever")

		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	tests := []struct {
		name          string
		adminPassword string
		username      string
		password      string
		expectedError error
	}{
		{name: "valid credentials", adminPassword: "adminpass", username: "admin", password: "adminpass"},
		{name: "wrong password", adminPassword: "adminpass", username: "admin", password: "nope", expectedError: errors.ErrInvalidCredentials},
		{name: "wrong username", adminPassword: "adminpass", username: "root", password: "adminpass", expectedError: errors.ErrInvalidCredentials},
		{name: "unconfigured admin always fails", adminPassword: "", username: "admin", password: "", expectedError: errors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(new(MockUserRepository), newTestJWTService(), "admin", tt.adminPassword)
			token, err := svc.AdminLogin(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)

			claims, err := newTestJWTService().ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, uint(0), claims.UserID)
			assert.Equal(t, model.RoleAdmin, claims.Role)
		})
	}
}
