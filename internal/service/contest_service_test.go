package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/model"
)

func TestContestService_Register(t *testing.T) {
	input := RegisterEntryInput{
		UserID:        7,
		ContestName:   "Jakarta Betta Championship 2026",
		FishName:      "Samurai Blue",
		FishType:      "Halfmoon",
		Tier:          model.TierDiamond,
		PaymentAmount: decimal.NewFromInt(150000),
		Photo: &MediaUpload{
			Filename:    "samurai.jpg",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("jpeg-bytes"),
		},
	}

	t.Run("uploads media and creates pending entry", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		storage := new(MockObjectStorage)

		storage.On("Upload", mock.Anything, mock.MatchedBy(func(path string) bool {
			return strings.HasPrefix(path, "registrations/") && strings.HasSuffix(path, "/photo.jpg")
		}), "image/jpeg", mock.Anything).Return("https://cdn.example.com/photo.jpg", nil)
		regRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContestRegistration")).Return(nil)

		svc := NewContestService(regRepo, storage, zerolog.Nop())
		reg, err := svc.Register(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, model.RegistrationStatusPending, reg.Status)
		assert.Equal(t, "https://cdn.example.com/photo.jpg", reg.PhotoURL)
		assert.False(t, reg.HasSpun)
		regRepo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("row insert failure cleans up uploaded media", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		storage := new(MockObjectStorage)

		storage.On("Upload", mock.Anything, mock.Anything, "image/jpeg", mock.Anything).
			Return("https://cdn.example.com/photo.jpg", nil)
		regRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContestRegistration")).
			Return(gorm.ErrInvalidData)
		storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

		svc := NewContestService(regRepo, storage, zerolog.Nop())
		_, err := svc.Register(context.Background(), input)

		assert.Error(t, err)
		storage.AssertExpectations(t)
	})
}

func TestContestService_SetStatus(t *testing.T) {
	tests := []struct {
		name          string
		current       model.RegistrationStatus
		target        model.RegistrationStatus
		expectedError error
	}{
		{name: "pending to approved", current: model.RegistrationStatusPending, target: model.RegistrationStatusApproved},
		{name: "pending to rejected", current: model.RegistrationStatusPending, target: model.RegistrationStatusRejected},
		{name: "approved is final", current: model.RegistrationStatusApproved, target: model.RegistrationStatusRejected, expectedError: errors.ErrInvalidStatusTransition},
		{name: "rejected is terminal", current: model.RegistrationStatusRejected, target: model.RegistrationStatusApproved, expectedError: errors.ErrInvalidStatusTransition},
		{name: "cannot reset to pending", current: model.RegistrationStatusApproved, target: model.RegistrationStatusPending, expectedError: errors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regRepo := new(MockRegistrationRepository)
			if tt.target == model.RegistrationStatusApproved || tt.target == model.RegistrationStatusRejected {
				regRepo.On("FindByID", mock.Anything, uint(1)).
					Return(&model.ContestRegistration{ID: 1, Status: tt.current}, nil)
			}
			if tt.expectedError == nil {
				regRepo.On("UpdateStatus", mock.Anything, uint(1), tt.target).Return(int64(1), nil)
			}

			svc := NewContestService(regRepo, new(MockObjectStorage), zerolog.Nop())
			reg, err := svc.SetStatus(context.Background(), 1, tt.target)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.target, reg.Status)
			}
			regRepo.AssertExpectations(t)
		})
	}
}

func TestContestService_Spin(t *testing.T) {
	entry := &model.ContestRegistration{
		ID:     3,
		UserID: 7,
		Tier:   model.TierDiamond,
		Status: model.RegistrationStatusApproved,
	}

	t.Run("successful spin returns wheel prize", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		regRepo.On("FindByID", mock.Anything, uint(3)).Return(entry, nil)
		regRepo.On("ClaimSpin", mock.Anything, uint(3), uint(7), mock.AnythingOfType("string")).Return(int64(1), nil)

		svc := NewContestService(regRepo, new(MockObjectStorage), zerolog.Nop())
		prize, err := svc.Spin(context.Background(), 3, 7)

		assert.NoError(t, err)
		assert.Contains(t, spinPrizes, prize)
		regRepo.AssertExpectations(t)
	})

	t.Run("spin on someone else's entry", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		regRepo.On("FindByID", mock.Anything, uint(3)).Return(entry, nil)

		svc := NewContestService(regRepo, new(MockObjectStorage), zerolog.Nop())
		_, err := svc.Spin(context.Background(), 3, 99)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		regRepo.AssertExpectations(t)
	})

	t.Run("guard rejection maps to spin not allowed", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		regRepo.On("FindByID", mock.Anything, uint(3)).Return(entry, nil)
		regRepo.On("ClaimSpin", mock.Anything, uint(3), uint(7), mock.AnythingOfType("string")).Return(int64(0), nil)

		svc := NewContestService(regRepo, new(MockObjectStorage), zerolog.Nop())
		_, err := svc.Spin(context.Background(), 3, 7)

		assert.ErrorIs(t, err, errors.ErrSpinNotAllowed)
		regRepo.AssertExpectations(t)
	})
}

func TestContestService_Redeem(t *testing.T) {
	entry := &model.ContestRegistration{
		ID:        3,
		UserID:    7,
		Tier:      model.TierDiamond,
		HasSpun:   true,
		SpinPrize: "Free shipping voucher",
	}

	t.Run("redeem once", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		regRepo.On("FindByID", mock.Anything, uint(3)).Return(entry, nil)
		regRepo.On("RedeemPrize", mock.Anything, uint(3), uint(7)).Return(int64(1), nil)

		svc := NewContestService(regRepo, new(MockObjectStorage), zerolog.Nop())
		assert.NoError(t, svc.Redeem(context.Background(), 3, 7))
		regRepo.AssertExpectations(t)
	})

	t.Run("second redeem rejected", func(t *testing.T) {
		regRepo := new(MockRegistrationRepository)
		regRepo.On("FindByID", mock.Anything, uint(3)).Return(entry, nil)
		regRepo.On("RedeemPrize", mock.Anything, uint(3), uint(7)).Return(int64(0), nil)

		svc := NewContestService(regRepo, new(MockObjectStorage), zerolog.Nop())
		err := svc.Redeem(context.Background(), 3, 7)

		assert.ErrorIs(t, err, errors.ErrPrizeAlreadyRedeemed)
		regRepo.AssertExpectations(t)
	})
}

func TestContestService_Delete(t *testing.T) {
	regRepo := new(MockRegistrationRepository)
	storage := new(MockObjectStorage)

	regRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.ContestRegistration{
		ID:        3,
		PhotoPath: "registrations/abc/photo.jpg",
		VideoPath: "registrations/abc/video.mp4",
	}, nil)
	// Storage failure is logged, never blocks the row delete.
	storage.On("Delete", mock.Anything, "registrations/abc/photo.jpg").Return(gorm.ErrInvalidData)
	storage.On("Delete", mock.Anything, "registrations/abc/video.mp4").Return(nil)
	regRepo.On("Delete", mock.Anything, uint(3)).Return(int64(1), nil)

	svc := NewContestService(regRepo, storage, zerolog.Nop())
	err := svc.Delete(context.Background(), 3)

	assert.NoError(t, err)
	regRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}
