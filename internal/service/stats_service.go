package service

import (
	"context"
	"fmt"
	"time"

	"snadaily/internal/cache"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

const statsCacheTTL = 60 * time.Second

// Stats is the registry dashboard aggregate.
type Stats struct {
	TotalFish     int64 `json:"total_fish"`
	AvailableFish int64 `json:"available_fish"`
	SoldFish      int64 `json:"sold_fish"`
	Registrations struct {
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Rejected int64 `json:"rejected"`
	} `json:"registrations"`
}

// StatsService aggregates registry counts for the dashboard.
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	fishRepo repository.FishRepository
	regRepo  repository.RegistrationRepository
	cache    *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(fishRepo repository.FishRepository, regRepo repository.RegistrationRepository, cache *cache.Client) StatsService {
	return &statsService{fishRepo: fishRepo, regRepo: regRepo, cache: cache}
}

// Stats returns the aggregates, cached briefly since the dashboard polls.
func (s *statsService) Stats(ctx context.Context) (*Stats, error) {
	var cached Stats
	if s.cache.GetJSON(ctx, cache.StatsKey, &cached) {
		return &cached, nil
	}

	fishCounts, err := s.fishRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count fish: %w", err)
	}
	regCounts, err := s.regRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	stats := &Stats{
		AvailableFish: fishCounts[model.FishStatusAvailable],
		SoldFish:      fishCounts[model.FishStatusSold],
	}
	stats.TotalFish = stats.AvailableFish + stats.SoldFish
	stats.Registrations.Pending = regCounts[model.RegistrationStatusPending]
	stats.Registrations.Approved = regCounts[model.RegistrationStatusApproved]
	stats.Registrations.Rejected = regCounts[model.RegistrationStatusRejected]

	s.cache.SetJSON(ctx, cache.StatsKey, stats, statsCacheTTL)
	return stats, nil
}
