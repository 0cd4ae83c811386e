package repository

import (
	"context"

	"gorm.io/gorm"

	"snadaily/internal/model"
)

// Score carries the judge-submitted component scores and aggregate.
type Score struct {
	Body    int
	Form    int
	Color   int
	Total   int
	Comment string
	JudgeID uint
}

// RegistrationRepository defines contest registration persistence
// operations. The spin and redeem guards are single conditional UPDATEs so
// the datastore serializes concurrent claims.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.ContestRegistration) error
	FindByID(ctx context.Context, id uint) (*model.ContestRegistration, error)
	List(ctx context.Context, status model.RegistrationStatus) ([]model.ContestRegistration, error)
	ListByUser(ctx context.Context, userID uint) ([]model.ContestRegistration, error)
	ListByContestNames(ctx context.Context, names []string) ([]model.ContestRegistration, error)
	UpdateStatus(ctx context.Context, id uint, status model.RegistrationStatus) (int64, error)
	SubmitScore(ctx context.Context, id uint, score Score) (int64, error)
	ClaimSpin(ctx context.Context, id, userID uint, prize string) (int64, error)
	RedeemPrize(ctx context.Context, id, userID uint) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	CountByStatus(ctx context.Context) (map[model.RegistrationStatus]int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *model.ContestRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uint) (*model.ContestRegistration, error) {
	var reg model.ContestRegistration
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// List returns registrations newest first, optionally filtered by status.
func (r *registrationRepository) List(ctx context.Context, status model.RegistrationStatus) ([]model.ContestRegistration, error) {
	var regs []model.ContestRegistration
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) ListByUser(ctx context.Context, userID uint) ([]model.ContestRegistration, error) {
	var regs []model.ContestRegistration
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// ListByContestNames returns entries for the given contests. Used for the
// judge view, scoped to the titles of the judge's assigned events.
func (r *registrationRepository) ListByContestNames(ctx context.Context, names []string) ([]model.ContestRegistration, error) {
	if len(names) == 0 {
		return []model.ContestRegistration{}, nil
	}
	var regs []model.ContestRegistration
	if err := r.db.WithContext(ctx).Where("contest_name IN ?", names).Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id uint, status model.RegistrationStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ContestRegistration{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// SubmitScore persists component and aggregate scores with comment and
// judge id. Re-submission overwrites the previous values.
func (r *registrationRepository) SubmitScore(ctx context.Context, id uint, score Score) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ContestRegistration{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score_body":    score.Body,
			"score_form":    score.Form,
			"score_color":   score.Color,
			"score_total":   score.Total,
			"judge_comment": score.Comment,
			"judged_by":     score.JudgeID,
		})
	return res.RowsAffected, res.Error
}

// ClaimSpin flips the has_spun guard and sets the prize in one conditional
// UPDATE. Zero rows affected means a guard rejected the claim.
func (r *registrationRepository) ClaimSpin(ctx context.Context, id, userID uint, prize string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ContestRegistration{}).
		Where("id = ? AND user_id = ? AND status = ? AND tier = ? AND has_spun = ?",
			id, userID, model.RegistrationStatusApproved, model.TierDiamond, false).
		Updates(map[string]interface{}{
			"has_spun":   true,
			"spin_prize": prize,
		})
	return res.RowsAffected, res.Error
}

// RedeemPrize flips prize_redeemed once, scoped to the owning user.
func (r *registrationRepository) RedeemPrize(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ContestRegistration{}).
		Where("id = ? AND user_id = ? AND prize_redeemed = ?", id, userID, false).
		Update("prize_redeemed", true)
	return res.RowsAffected, res.Error
}

func (r *registrationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ContestRegistration{}, id)
	return res.RowsAffected, res.Error
}

// CountByStatus returns registration counts keyed by status.
func (r *registrationRepository) CountByStatus(ctx context.Context) (map[model.RegistrationStatus]int64, error) {
	type row struct {
		Status model.RegistrationStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.ContestRegistration{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.RegistrationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
