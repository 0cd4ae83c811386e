package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"snadaily/internal/cache"
	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

const fishCacheTTL = 5 * time.Minute

// CreateFishInput is the validated payload for a new provenance record.
type CreateFishInput struct {
	ID         string
	Species    string
	Origin     string
	Weight     float64
	Method     string
	CatchDate  string
	ImportDate string
}

// FishService handles the provenance registry and its status workflow.
type FishService interface {
	Create(ctx context.Context, input CreateFishInput) (*model.Fish, error)
	Get(ctx context.Context, id string) (*model.Fish, error)
	List(ctx context.Context, search string) ([]model.Fish, error)
	Update(ctx context.Context, id string, patch repository.FishPatch) (*model.Fish, error)
	SetStatus(ctx context.Context, id string, status model.FishStatus) error
	Delete(ctx context.Context, id string) error
}

type fishService struct {
	fishRepo repository.FishRepository
	cache    *cache.Client
}

// NewFishService creates a new fish service.
func NewFishService(fishRepo repository.FishRepository, cache *cache.Client) FishService {
	return &fishService{fishRepo: fishRepo, cache: cache}
}

// Create registers a new specimen. The certificate ID is generated when the
// client did not supply one, and the catch/import dates are normalized so
// only the date matching the method is stored.
func (s *fishService) Create(ctx context.Context, input CreateFishInput) (*model.Fish, error) {
	catchDate, importDate, err := normalizeDates(input.Method, input.CatchDate, input.ImportDate)
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = generateFishID()
	}

	fish := &model.Fish{
		ID:         id,
		Species:    input.Species,
		Origin:     input.Origin,
		Weight:     input.Weight,
		Method:     input.Method,
		CatchDate:  catchDate,
		ImportDate: importDate,
		Status:     model.FishStatusAvailable,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.fishRepo.Create(ctx, fish); err != nil {
		return nil, fmt.Errorf("create fish: %w", err)
	}
	return fish, nil
}

// Get returns a single record, serving repeated certificate verifications
// from cache when possible.
func (s *fishService) Get(ctx context.Context, id string) (*model.Fish, error) {
	var cached model.Fish
	if s.cache.GetJSON(ctx, cache.FishKey(id), &cached) {
		return &cached, nil
	}

	fish, err := s.fishRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFishNotFound
		}
		return nil, fmt.Errorf("find fish: %w", err)
	}

	s.cache.SetJSON(ctx, cache.FishKey(id), fish, fishCacheTTL)
	return fish, nil
}

// List returns records newest first, optionally filtered by search term.
func (s *fishService) List(ctx context.Context, search string) ([]model.Fish, error) {
	return s.fishRepo.List(ctx, search)
}

// Update applies a partial update with only the provided fields.
func (s *fishService) Update(ctx context.Context, id string, patch repository.FishPatch) (*model.Fish, error) {
	if patch.Method != nil || patch.CatchDate != nil || patch.ImportDate != nil {
		// A method or date change re-runs the exclusivity rule against the
		// merged record.
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		method := current.Method
		catchDate := current.CatchDate
		importDate := current.ImportDate
		if patch.Method != nil {
			method = *patch.Method
		}
		if patch.CatchDate != nil {
			catchDate = *patch.CatchDate
		}
		if patch.ImportDate != nil {
			importDate = *patch.ImportDate
		}
		normCatch, normImport, err := normalizeDates(method, catchDate, importDate)
		if err != nil {
			return nil, err
		}
		patch.CatchDate = &normCatch
		patch.ImportDate = &normImport
	}

	affected, err := s.fishRepo.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("patch fish: %w", err)
	}
	if affected == 0 {
		return nil, errors.ErrFishNotFound
	}

	s.cache.Delete(ctx, cache.FishKey(id))
	return s.fishRepo.FindByID(ctx, id)
}

// SetStatus idempotently persists a new availability status.
func (s *fishService) SetStatus(ctx context.Context, id string, status model.FishStatus) error {
	if status != model.FishStatusAvailable && status != model.FishStatusSold {
		return errors.ErrInvalidStatusTransition
	}
	affected, err := s.fishRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if affected == 0 {
		return errors.ErrFishNotFound
	}
	s.cache.Delete(ctx, cache.FishKey(id))
	return nil
}

// Delete removes a record.
func (s *fishService) Delete(ctx context.Context, id string) error {
	affected, err := s.fishRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete fish: %w", err)
	}
	if affected == 0 {
		return errors.ErrFishNotFound
	}
	s.cache.Delete(ctx, cache.FishKey(id))
	return nil
}

// normalizeDates enforces the method rule: import methods carry an import
// date, every other method carries a catch date. Supplying the other date,
// or both, is invalid.
func normalizeDates(method, catchDate, importDate string) (string, string, error) {
	isImport := strings.Contains(strings.ToLower(method), "import")
	if isImport {
		if importDate == "" || catchDate != "" {
			return "", "", errors.ErrInvalidDates
		}
		return "", importDate, nil
	}
	if catchDate == "" || importDate != "" {
		return "", "", errors.ErrInvalidDates
	}
	return catchDate, "", nil
}

const fishIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateFishID builds an opaque certificate token like FISH-AB12CD.
func generateFishID() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = fishIDAlphabet[int(b)%len(fishIDAlphabet)]
	}
	return "FISH-" + string(buf)
}
