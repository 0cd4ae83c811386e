package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

// JudgeInput is the admin payload for creating or updating a judge account.
type JudgeInput struct {
	Username string
	Password string
	FullName string
	Phone    string
}

// UserService handles admin management of judge accounts.
type UserService interface {
	CreateJudge(ctx context.Context, input JudgeInput) (*model.User, error)
	ListJudges(ctx context.Context) ([]model.User, error)
	UpdateJudge(ctx context.Context, id uint, input JudgeInput) (*model.User, error)
	DeleteJudge(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateJudge creates a user with the judge role.
func (s *userService) CreateJudge(ctx context.Context, input JudgeInput) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	judge := &model.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         model.RoleJudge,
	}
	if err := s.userRepo.Create(ctx, judge); err != nil {
		return nil, fmt.Errorf("create judge: %w", err)
	}
	return judge, nil
}

// ListJudges returns all judge accounts.
func (s *userService) ListJudges(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleJudge)
}

// UpdateJudge updates a judge's profile; the password only changes when a
// new one is supplied.
func (s *userService) UpdateJudge(ctx context.Context, id uint, input JudgeInput) (*model.User, error) {
	judge, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find judge: %w", err)
	}
	if judge.Role != model.RoleJudge {
		return nil, errors.ErrUserNotFound
	}

	if input.Username != "" {
		judge.Username = input.Username
	}
	judge.FullName = input.FullName
	judge.Phone = input.Phone
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		judge.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(ctx, judge); err != nil {
		return nil, fmt.Errorf("update judge: %w", err)
	}
	return judge, nil
}

// DeleteJudge removes a judge account.
func (s *userService) DeleteJudge(ctx context.Context, id uint) error {
	judge, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find judge: %w", err)
	}
	if judge.Role != model.RoleJudge {
		return errors.ErrUserNotFound
	}
	if _, err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete judge: %w", err)
	}
	return nil
}
