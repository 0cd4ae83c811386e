package service

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/gateway"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

// spinPrizes is the Diamond-tier prize wheel.
var spinPrizes = []string{
	"Free premium pellet food",
	"10% discount voucher",
	"Free shipping voucher",
	"SNA Daily sticker set",
	"Betta care e-book",
	"Extra contest entry",
}

// MediaUpload is one uploaded contest media file, streamed to storage.
type MediaUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// RegisterEntryInput is the validated payload for a contest entry.
type RegisterEntryInput struct {
	UserID        uint
	ContestName   string
	FishName      string
	FishType      string
	FishSize      string
	Tier          string
	PaymentAmount decimal.Decimal
	Photo         *MediaUpload
	Video         *MediaUpload
}

// ContestService handles the contest registration lifecycle: entry with
// media upload, admin approval, the Diamond spin wheel, and deletion with
// two-phase best-effort media cleanup.
type ContestService interface {
	Register(ctx context.Context, input RegisterEntryInput) (*model.ContestRegistration, error)
	Get(ctx context.Context, id uint) (*model.ContestRegistration, error)
	List(ctx context.Context, status model.RegistrationStatus) ([]model.ContestRegistration, error)
	ListByUser(ctx context.Context, userID uint) ([]model.ContestRegistration, error)
	SetStatus(ctx context.Context, id uint, status model.RegistrationStatus) (*model.ContestRegistration, error)
	Spin(ctx context.Context, id, userID uint) (prize string, err error)
	Redeem(ctx context.Context, id, userID uint) error
	Delete(ctx context.Context, id uint) error
}

type contestService struct {
	regRepo repository.RegistrationRepository
	storage gateway.ObjectStorage
	log     zerolog.Logger
}

// NewContestService creates a new contest service.
func NewContestService(regRepo repository.RegistrationRepository, storage gateway.ObjectStorage, log zerolog.Logger) ContestService {
	return &contestService{regRepo: regRepo, storage: storage, log: log}
}

// Register uploads the entry media and creates the registration in pending
// state. If the row insert fails, already-uploaded media is cleaned up on a
// best-effort basis.
func (s *contestService) Register(ctx context.Context, input RegisterEntryInput) (*model.ContestRegistration, error) {
	reg := &model.ContestRegistration{
		UserID:        input.UserID,
		ContestName:   input.ContestName,
		FishName:      input.FishName,
		FishType:      input.FishType,
		FishSize:      input.FishSize,
		Tier:          input.Tier,
		PaymentAmount: input.PaymentAmount,
		Status:        model.RegistrationStatusPending,
	}

	entryID := uuid.New().String()
	if input.Photo != nil {
		path := mediaPath(entryID, "photo", input.Photo.Filename)
		url, err := s.storage.Upload(ctx, path, input.Photo.ContentType, input.Photo.Body)
		if err != nil {
			return nil, err
		}
		reg.PhotoPath = path
		reg.PhotoURL = url
	}
	if input.Video != nil {
		path := mediaPath(entryID, "video", input.Video.Filename)
		url, err := s.storage.Upload(ctx, path, input.Video.ContentType, input.Video.Body)
		if err != nil {
			s.deleteMedia(ctx, reg.PhotoPath)
			return nil, err
		}
		reg.VideoPath = path
		reg.VideoURL = url
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		s.deleteMedia(ctx, reg.PhotoPath)
		s.deleteMedia(ctx, reg.VideoPath)
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

// Get returns a single registration.
func (s *contestService) Get(ctx context.Context, id uint) (*model.ContestRegistration, error) {
	reg, err := s.regRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return reg, nil
}

// List returns registrations, optionally filtered by status.
func (s *contestService) List(ctx context.Context, status model.RegistrationStatus) ([]model.ContestRegistration, error) {
	return s.regRepo.List(ctx, status)
}

// ListByUser returns a user's own registrations.
func (s *contestService) ListByUser(ctx context.Context, userID uint) ([]model.ContestRegistration, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

// SetStatus applies an admin approval decision. Only pending entries can
// move, and only to approved or rejected; rejected is terminal.
func (s *contestService) SetStatus(ctx context.Context, id uint, status model.RegistrationStatus) (*model.ContestRegistration, error) {
	if status != model.RegistrationStatusApproved && status != model.RegistrationStatusRejected {
		return nil, errors.ErrInvalidStatusTransition
	}

	reg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg.Status != model.RegistrationStatusPending {
		return nil, errors.ErrInvalidStatusTransition
	}

	if _, err := s.regRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	reg.Status = status
	return reg, nil
}

// Spin claims the Diamond-tier spin prize. The guards (owned, approved,
// Diamond, not yet spun) are enforced by a single conditional update so a
// double claim loses the race at the datastore.
func (s *contestService) Spin(ctx context.Context, id, userID uint) (string, error) {
	reg, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if reg.UserID != userID {
		return "", errors.ErrForbidden
	}

	prize := spinPrizes[rand.Intn(len(spinPrizes))]
	affected, err := s.regRepo.ClaimSpin(ctx, id, userID, prize)
	if err != nil {
		return "", fmt.Errorf("claim spin: %w", err)
	}
	if affected == 0 {
		return "", errors.ErrSpinNotAllowed
	}
	return prize, nil
}

// Redeem marks the spin prize redeemed, at most once, scoped to the owner.
func (s *contestService) Redeem(ctx context.Context, id, userID uint) error {
	reg, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if reg.UserID != userID {
		return errors.ErrForbidden
	}

	affected, err := s.regRepo.RedeemPrize(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("redeem prize: %w", err)
	}
	if affected == 0 {
		return errors.ErrPrizeAlreadyRedeemed
	}
	return nil
}

// Delete removes a registration. Uploaded media is deleted from object
// storage first; storage failures are logged but never block the row
// deletion.
func (s *contestService) Delete(ctx context.Context, id uint) error {
	reg, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, reg.PhotoPath)
	s.deleteMedia(ctx, reg.VideoPath)

	affected, err := s.regRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if affected == 0 {
		return errors.ErrRegistrationNotFound
	}
	return nil
}

// deleteMedia removes one object best-effort.
func (s *contestService) deleteMedia(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("media delete failed, leaving orphan")
	}
}

// mediaPath builds the storage path for an entry media file.
func mediaPath(entryID, kind, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("registrations/%s/%s%s", entryID, kind, ext)
}
