package model

import (
	"strings"
	"time"
)

// FishStatus represents the availability of a registered fish.
type FishStatus string

const (
	FishStatusAvailable FishStatus = "available"
	FishStatusSold      FishStatus = "sold"
)

// Fish represents a provenance record for a single specimen. The ID is an
// opaque token (FISH-XXXXXX) that appears on the printed certificate.
type Fish struct {
	ID         string     `json:"id" gorm:"primaryKey;size:32"`
	Species    string     `json:"species" gorm:"size:255;not null;index"`
	Origin     string     `json:"origin" gorm:"size:255"`
	Weight     float64    `json:"weight"`
	Method     string     `json:"method" gorm:"size:100"`
	CatchDate  string     `json:"catchDate,omitempty" gorm:"size:32"`
	ImportDate string     `json:"importDate,omitempty" gorm:"size:128"`
	Status     FishStatus `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	Timestamp  time.Time  `json:"timestamp"`
}

// IsPremium reports whether the specimen qualifies for the premium
// certificate. Premium is derived, never stored: a specimen is premium when
// it originates from (or was imported from) Thailand.
func (f *Fish) IsPremium() bool {
	return strings.Contains(strings.ToLower(f.Origin), "thailand") ||
		strings.Contains(strings.ToLower(f.ImportDate), "thailand")
}
