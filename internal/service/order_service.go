package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

// CreateOrderInput is the validated payload for a storefront purchase.
type CreateOrderInput struct {
	FishID       string
	BuyerName    string
	BuyerPhone   string
	Address      string
	Courier      string
	Service      string
	ShippingCost decimal.Decimal
	Amount       decimal.Decimal
}

// OrderService handles purchases and the sold/available workflow that
// follows them. An order marks its fish sold; deleting the order restores
// the fish to available.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	fishRepo  repository.FishRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, fishRepo repository.FishRepository) OrderService {
	return &orderService{orderRepo: orderRepo, fishRepo: fishRepo}
}

// Create records the order and flips the fish to sold in one transaction.
func (s *orderService) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	order := &model.Order{
		FishID:       input.FishID,
		BuyerName:    input.BuyerName,
		BuyerPhone:   input.BuyerPhone,
		Address:      input.Address,
		Courier:      input.Courier,
		Service:      input.Service,
		ShippingCost: input.ShippingCost,
		Amount:       input.Amount,
	}

	err := s.orderRepo.WithTransaction(ctx, func(orders repository.OrderRepository, fish repository.FishRepository) error {
		current, err := fish.FindByID(ctx, input.FishID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrFishNotFound
			}
			return fmt.Errorf("find fish: %w", err)
		}
		if current.Status != model.FishStatusAvailable {
			return errors.ErrFishUnavailable
		}
		if err := orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if _, err := fish.UpdateStatus(ctx, input.FishID, model.FishStatusSold); err != nil {
			return fmt.Errorf("mark sold: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns a single order.
func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// List returns all orders newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

// Delete removes the order and restores its fish to available
// (restore-on-delete).
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.WithTransaction(ctx, func(orders repository.OrderRepository, fish repository.FishRepository) error {
		order, err := orders.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrOrderNotFound
			}
			return fmt.Errorf("find order: %w", err)
		}
		affected, err := orders.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if affected == 0 {
			return errors.ErrOrderNotFound
		}
		if _, err := fish.UpdateStatus(ctx, order.FishID, model.FishStatusAvailable); err != nil {
			return fmt.Errorf("restore availability: %w", err)
		}
		return nil
	})
}
