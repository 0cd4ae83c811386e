package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a storefront purchase of a listed fish. Creating an order
// marks the fish sold; deleting the order restores it to available.
type Order struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	FishID       string          `json:"fish_id" gorm:"size:32;not null;index"`
	BuyerName    string          `json:"buyer_name" gorm:"size:255;not null"`
	BuyerPhone   string          `json:"buyer_phone" gorm:"size:32"`
	Address      string          `json:"address" gorm:"type:text"`
	Courier      string          `json:"courier" gorm:"size:32"`
	Service      string          `json:"service" gorm:"size:64"`
	ShippingCost decimal.Decimal `json:"shipping_cost" gorm:"type:decimal(20,2);not null;default:0"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	SnapToken    string          `json:"-" gorm:"size:255"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Fish Fish `json:"-" gorm:"foreignKey:FishID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
