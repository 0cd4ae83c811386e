package repository

import (
	"context"

	"gorm.io/gorm"

	"snadaily/internal/model"
)

// FishPatch carries the fields of a partial update. Only non-nil fields are
// written; the service layer validates them before the patch reaches here.
type FishPatch struct {
	Species    *string
	Origin     *string
	Weight     *float64
	Method     *string
	CatchDate  *string
	ImportDate *string
}

// Updates returns the column map for GORM, containing only provided fields.
func (p FishPatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Species != nil {
		updates["species"] = *p.Species
	}
	if p.Origin != nil {
		updates["origin"] = *p.Origin
	}
	if p.Weight != nil {
		updates["weight"] = *p.Weight
	}
	if p.Method != nil {
		updates["method"] = *p.Method
	}
	if p.CatchDate != nil {
		updates["catch_date"] = *p.CatchDate
	}
	if p.ImportDate != nil {
		updates["import_date"] = *p.ImportDate
	}
	return updates
}

// FishRepository defines fish persistence operations.
type FishRepository interface {
	Create(ctx context.Context, fish *model.Fish) error
	FindByID(ctx context.Context, id string) (*model.Fish, error)
	List(ctx context.Context, search string) ([]model.Fish, error)
	Patch(ctx context.Context, id string, patch FishPatch) (int64, error)
	UpdateStatus(ctx context.Context, id string, status model.FishStatus) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context) (map[model.FishStatus]int64, error)
}

type fishRepository struct {
	db *gorm.DB
}

// NewFishRepository creates a new fish repository.
func NewFishRepository(db *gorm.DB) FishRepository {
	return &fishRepository{db: db}
}

// Create creates a new fish record.
func (r *fishRepository) Create(ctx context.Context, fish *model.Fish) error {
	return r.db.WithContext(ctx).Create(fish).Error
}

// FindByID finds a fish by its certificate ID.
func (r *fishRepository) FindByID(ctx context.Context, id string) (*model.Fish, error) {
	var fish model.Fish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fish).Error; err != nil {
		return nil, err
	}
	return &fish, nil
}

// List returns fish ordered newest first, optionally filtered by a search
// term matched against id and species.
func (r *fishRepository) List(ctx context.Context, search string) ([]model.Fish, error) {
	var fish []model.Fish
	q := r.db.WithContext(ctx).Order("timestamp DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("id ILIKE ? OR species ILIKE ?", like, like)
	}
	if err := q.Find(&fish).Error; err != nil {
		return nil, err
	}
	return fish, nil
}

// Patch applies a partial update and returns the number of rows affected.
func (r *fishRepository) Patch(ctx context.Context, id string, patch FishPatch) (int64, error) {
	updates := patch.Updates()
	if len(updates) == 0 {
		// Nothing to set; report existence only.
		var count int64
		err := r.db.WithContext(ctx).Model(&model.Fish{}).Where("id = ?", id).Count(&count).Error
		return count, err
	}
	res := r.db.WithContext(ctx).Model(&model.Fish{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// UpdateStatus persists a status idempotently.
func (r *fishRepository) UpdateStatus(ctx context.Context, id string, status model.FishStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Fish{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Delete removes a fish record.
func (r *fishRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Fish{})
	return res.RowsAffected, res.Error
}

// CountByStatus returns record counts keyed by status.
func (r *fishRepository) CountByStatus(ctx context.Context) (map[model.FishStatus]int64, error) {
	type row struct {
		Status model.FishStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Fish{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.FishStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
