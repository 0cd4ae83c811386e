package model

import "time"

// Role values carried in the JWT role claim. The admin role is issued from
// the static admin credential and never stored on a user row.
const (
	RoleUser  = "user"
	RoleJudge = "judge"
	RoleAdmin = "admin"
)

// User represents a registered customer or contest judge.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name" gorm:"size:255"`
	Phone        string    `json:"phone" gorm:"size:32"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'user';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
