package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/model"
)

func TestEventService_Create(t *testing.T) {
	eventRepo := new(MockEventRepository)
	eventRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

	svc := NewEventService(eventRepo, new(MockUserRepository))
	event, err := svc.Create(context.Background(), EventInput{Title: "Jakarta Betta Championship 2026"})

	assert.NoError(t, err)
	assert.Equal(t, model.EventStatusUpcoming, event.Status)
	eventRepo.AssertExpectations(t)
}

func TestEventService_AssignJudges(t *testing.T) {
	event := &model.Event{ID: 1, Title: "Jakarta Betta Championship 2026"}

	t.Run("assigns judge-role users", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		userRepo := new(MockUserRepository)

		eventRepo.On("FindByID", mock.Anything, uint(1)).Return(event, nil)
		userRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4, Role: model.RoleJudge}, nil)
		eventRepo.On("AssignJudges", mock.Anything, event, mock.AnythingOfType("[]model.User")).Return(nil)

		svc := NewEventService(eventRepo, userRepo)
		_, err := svc.AssignJudges(context.Background(), 1, []uint{4})

		assert.NoError(t, err)
		eventRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("non-judge user rejected", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		userRepo := new(MockUserRepository)

		eventRepo.On("FindByID", mock.Anything, uint(1)).Return(event, nil)
		userRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Role: model.RoleUser}, nil)

		svc := NewEventService(eventRepo, userRepo)
		_, err := svc.AssignJudges(context.Background(), 1, []uint{7})

		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("unknown judge id", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		userRepo := new(MockUserRepository)

		eventRepo.On("FindByID", mock.Anything, uint(1)).Return(event, nil)
		userRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEventService(eventRepo, userRepo)
		_, err := svc.AssignJudges(context.Background(), 1, []uint{99})

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	eventRepo := new(MockEventRepository)
	eventRepo.On("Delete", mock.Anything, uint(5)).Return(int64(0), nil)

	svc := NewEventService(eventRepo, new(MockUserRepository))
	err := svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, errors.ErrEventNotFound)
	eventRepo.AssertExpectations(t)
}

func TestStatsService_Stats(t *testing.T) {
	fishRepo := new(MockFishRepository)
	regRepo := new(MockRegistrationRepository)

	fishRepo.On("CountByStatus", mock.Anything).Return(map[model.FishStatus]int64{
		model.FishStatusAvailable: 12,
		model.FishStatusSold:      3,
	}, nil)
	regRepo.On("CountByStatus", mock.Anything).Return(map[model.RegistrationStatus]int64{
		model.RegistrationStatusPending:  4,
		model.RegistrationStatusApproved: 9,
	}, nil)

	svc := NewStatsService(fishRepo, regRepo, nil)
	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(15), stats.TotalFish)
	assert.Equal(t, int64(12), stats.AvailableFish)
	assert.Equal(t, int64(3), stats.SoldFish)
	assert.Equal(t, int64(4), stats.Registrations.Pending)
	assert.Equal(t, int64(9), stats.Registrations.Approved)
	assert.Equal(t, int64(0), stats.Registrations.Rejected)
	fishRepo.AssertExpectations(t)
	regRepo.AssertExpectations(t)
}
