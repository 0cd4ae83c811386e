package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/gateway"
	"snadaily/internal/repository"
)

// PaymentService issues payment tokens for existing orders. The gross
// charge is the fish amount plus shipping; the issued token is kept on
// the order so the checkout page can be reopened.
type PaymentService interface {
	Token(ctx context.Context, orderID uuid.UUID) (*gateway.PaymentToken, error)
}

type paymentService struct {
	orderRepo repository.OrderRepository
	payments  gateway.PaymentGateway
}

// NewPaymentService creates a new payment service.
func NewPaymentService(orderRepo repository.OrderRepository, payments gateway.PaymentGateway) PaymentService {
	return &paymentService{orderRepo: orderRepo, payments: payments}
}

// Token creates a checkout token for the order with the payment provider.
func (s *paymentService) Token(ctx context.Context, orderID uuid.UUID) (*gateway.PaymentToken, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	gross := order.Amount.Add(order.ShippingCost).Round(0).IntPart()
	token, err := s.payments.CreateToken(ctx, order.ID.String(), gross, order.BuyerName, order.BuyerPhone)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateSnapToken(ctx, orderID, token.Token); err != nil {
		return nil, fmt.Errorf("store snap token: %w", err)
	}
	return token, nil
}
