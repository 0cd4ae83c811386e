package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"snadaily/internal/auth"
	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

const bcryptCost = 10

// AuthService handles both credential domains: the static admin credential
// and per-user hashed passwords. Both issue signed, time-boxed tokens with
// a role claim; there is no revocation list.
type AuthService interface {
	Register(ctx context.Context, username, password, fullName, phone string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	AdminLogin(ctx context.Context, username, password string) (token string, err error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtService    *auth.JWTService
	adminUsername string
	adminPassword string
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, adminUsername, adminPassword string) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Register creates a new user with hashed password and role user.
func (s *authService) Register(ctx context.Context, username, password, fullName, phone string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Phone:        phone,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user or judge and returns a token carrying their
// stored role.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// AdminLogin checks the environment-configured admin credential and issues
// an admin token. The admin is not a user row; UserID in the claims is 0.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if s.adminPassword == "" {
		return "", errors.ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(0, username, model.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
