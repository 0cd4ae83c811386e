package repository

import (
	"context"

	"gorm.io/gorm"

	"snadaily/internal/model"
)

// EventRepository defines contest event persistence operations, including
// the judge assignment join table.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Delete(ctx context.Context, id uint) (int64, error)
	AssignJudges(ctx context.Context, event *model.Event, judges []model.User) error
	ListByJudge(ctx context.Context, judgeID uint) ([]model.Event, error)
	JudgeAssignedToTitle(ctx context.Context, judgeID uint, title string) (bool, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Preload("Judges").First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("Judges").Order("event_date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Select("Judges").Delete(&model.Event{ID: id})
	return res.RowsAffected, res.Error
}

// AssignJudges replaces the judge assignment for an event.
func (r *eventRepository) AssignJudges(ctx context.Context, event *model.Event, judges []model.User) error {
	return r.db.WithContext(ctx).Model(event).Association("Judges").Replace(judges)
}

// ListByJudge returns the events a judge is assigned to.
func (r *eventRepository) ListByJudge(ctx context.Context, judgeID uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Joins("JOIN event_judges ON event_judges.event_id = events.id").
		Where("event_judges.user_id = ?", judgeID).
		Order("event_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// JudgeAssignedToTitle reports whether the judge is assigned to an event
// whose title matches the given contest name.
func (r *eventRepository) JudgeAssignedToTitle(ctx context.Context, judgeID uint, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Joins("JOIN event_judges ON event_judges.event_id = events.id").
		Where("event_judges.user_id = ? AND events.title = ?", judgeID, title).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
