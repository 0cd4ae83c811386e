package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrationStatus represents the lifecycle of a contest entry.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// Registration tiers. Diamond entries may claim a spin prize once.
const (
	TierStandard = "Standard"
	TierGold     = "Gold"
	TierDiamond  = "Diamond"
)

// ContestRegistration represents a contest entry submitted by a user.
// Status is mutated only by an admin; score fields only by an assigned
// judge. HasSpun and PrizeRedeemed are one-way guards flipped at most once.
type ContestRegistration struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	UserID        uint               `json:"user_id" gorm:"not null;index"`
	ContestName   string             `json:"contest_name" gorm:"size:255;not null;index"`
	FishName      string             `json:"fish_name" gorm:"size:255;not null"`
	FishType      string             `json:"fish_type" gorm:"size:255"`
	FishSize      string             `json:"fish_size" gorm:"size:32"`
	PhotoURL      string             `json:"photo_url" gorm:"size:512"`
	PhotoPath     string             `json:"-" gorm:"size:512"`
	VideoURL      string             `json:"video_url" gorm:"size:512"`
	VideoPath     string             `json:"-" gorm:"size:512"`
	Tier          string             `json:"tier" gorm:"size:32;not null;default:'Standard'"`
	PaymentAmount decimal.Decimal    `json:"payment_amount" gorm:"type:decimal(20,2);not null;default:0"`
	Status        RegistrationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ScoreBody     *int               `json:"score_body,omitempty"`
	ScoreForm     *int               `json:"score_form,omitempty"`
	ScoreColor    *int               `json:"score_color,omitempty"`
	ScoreTotal    *int               `json:"score_total,omitempty"`
	JudgeComment  string             `json:"judge_comment,omitempty" gorm:"type:text"`
	JudgedBy      *uint              `json:"judged_by,omitempty" gorm:"index"`
	HasSpun       bool               `json:"has_spun" gorm:"not null;default:false"`
	SpinPrize     string             `json:"spin_prize,omitempty" gorm:"size:255"`
	PrizeRedeemed bool               `json:"prize_redeemed" gorm:"not null;default:false"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// Scored reports whether a judge has already submitted a score.
func (r *ContestRegistration) Scored() bool {
	return r.ScoreTotal != nil
}
