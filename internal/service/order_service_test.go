package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/gateway"
	"snadaily/internal/model"
)

func TestOrderService_Create(t *testing.T) {
	input := CreateOrderInput{
		FishID:       "FISH-AB12CD",
		BuyerName:    "Dewi Lestari",
		BuyerPhone:   "081234567890",
		Address:      "Jl. Melati 5, Bandung",
		Courier:      "jne",
		Service:      "REG",
		ShippingCost: decimal.NewFromInt(18000),
		Amount:       decimal.NewFromInt(350000),
	}

	tests := []struct {
		name          string
		setupMock     func(orders *MockOrderRepository, fish *MockFishRepository)
		expectedError error
	}{
		{
			name: "order marks fish sold",
			setupMock: func(orders *MockOrderRepository, fish *MockFishRepository) {
				orders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				fish.On("FindByID", mock.Anything, "FISH-AB12CD").
					Return(&model.Fish{ID: "FISH-AB12CD", Status: model.FishStatusAvailable}, nil)
				orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
				fish.On("UpdateStatus", mock.Anything, "FISH-AB12CD", model.FishStatusSold).Return(int64(1), nil)
			},
		},
		{
			name: "sold fish rejected",
			setupMock: func(orders *MockOrderRepository, fish *MockFishRepository) {
				orders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				fish.On("FindByID", mock.Anything, "FISH-AB12CD").
					Return(&model.Fish{ID: "FISH-AB12CD", Status: model.FishStatusSold}, nil)
			},
			expectedError: errors.ErrFishUnavailable,
		},
		{
			name: "missing fish rejected",
			setupMock: func(orders *MockOrderRepository, fish *MockFishRepository) {
				orders.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				fish.On("FindByID", mock.Anything, "FISH-AB12CD").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrFishNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fishRepo := new(MockFishRepository)
			orderRepo := &MockOrderRepository{fish: fishRepo}
			tt.setupMock(orderRepo, fishRepo)

			svc := NewOrderService(orderRepo, fishRepo)
			order, err := svc.Create(context.Background(), input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "FISH-AB12CD", order.FishID)
				assert.True(t, decimal.NewFromInt(350000).Equal(order.Amount))
			}
			orderRepo.AssertExpectations(t)
			fishRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_Delete(t *testing.T) {
	orderID := uuid.New()

	t.Run("delete restores fish availability", func(t *testing.T) {
		fishRepo := new(MockFishRepository)
		orderRepo := &MockOrderRepository{fish: fishRepo}

		orderRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		orderRepo.On("FindByID", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, FishID: "FISH-AB12CD"}, nil)
		orderRepo.On("Delete", mock.Anything, orderID).Return(int64(1), nil)
		fishRepo.On("UpdateStatus", mock.Anything, "FISH-AB12CD", model.FishStatusAvailable).Return(int64(1), nil)

		svc := NewOrderService(orderRepo, fishRepo)
		err := svc.Delete(context.Background(), orderID)

		assert.NoError(t, err)
		orderRepo.AssertExpectations(t)
		fishRepo.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		fishRepo := new(MockFishRepository)
		orderRepo := &MockOrderRepository{fish: fishRepo}

		orderRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewOrderService(orderRepo, fishRepo)
		err := svc.Delete(context.Background(), orderID)

		assert.ErrorIs(t, err, errors.ErrOrderNotFound)
		orderRepo.AssertExpectations(t)
	})
}

func TestPaymentService_Token(t *testing.T) {
	orderID := uuid.New()

	t.Run("gross amount includes shipping", func(t *testing.T) {
		fishRepo := new(MockFishRepository)
		orderRepo := &MockOrderRepository{fish: fishRepo}
		payments := new(MockPaymentGateway)

		orderRepo.On("FindByID", mock.Anything, orderID).Return(&model.Order{
			ID:           orderID,
			BuyerName:    "Dewi Lestari",
			BuyerPhone:   "081234567890",
			Amount:       decimal.NewFromInt(350000),
			ShippingCost: decimal.NewFromInt(18000),
		}, nil)
		payments.On("CreateToken", mock.Anything, orderID.String(), int64(368000), "Dewi Lestari", "081234567890").
			Return(&gateway.PaymentToken{Token: "tok-123", RedirectURL: "https://app.sandbox.midtrans.com/snap/v3/tok-123"}, nil)
		orderRepo.On("UpdateSnapToken", mock.Anything, orderID, "tok-123").Return(nil)

		svc := NewPaymentService(orderRepo, payments)
		token, err := svc.Token(context.Background(), orderID)

		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token.Token)
		orderRepo.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		fishRepo := new(MockFishRepository)
		orderRepo := &MockOrderRepository{fish: fishRepo}
		payments := new(MockPaymentGateway)

		orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPaymentService(orderRepo, payments)
		_, err := svc.Token(context.Background(), orderID)

		assert.ErrorIs(t, err, errors.ErrOrderNotFound)
		orderRepo.AssertExpectations(t)
	})
}
