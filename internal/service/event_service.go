package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

// EventInput is the payload for creating or updating a contest event.
type EventInput struct {
	Title       string
	Description string
	ImageURL    string
	Location    string
	EventDate   string
	Status      model.EventStatus
}

// EventService handles admin management of contest events and judge
// assignment.
type EventService interface {
	Create(ctx context.Context, input EventInput) (*model.Event, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id uint, input EventInput) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
	AssignJudges(ctx context.Context, eventID uint, judgeIDs []uint) (*model.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository) EventService {
	return &eventService{eventRepo: eventRepo, userRepo: userRepo}
}

func (s *eventService) Create(ctx context.Context, input EventInput) (*model.Event, error) {
	status := input.Status
	if status == "" {
		status = model.EventStatusUpcoming
	}
	event := &model.Event{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Location:    input.Location,
		EventDate:   input.EventDate,
		Status:      status,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventService) Update(ctx context.Context, id uint, input EventInput) (*model.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = input.Title
	event.Description = input.Description
	event.ImageURL = input.ImageURL
	event.Location = input.Location
	event.EventDate = input.EventDate
	if input.Status != "" {
		event.Status = input.Status
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	affected, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return errors.ErrEventNotFound
	}
	return nil
}

// AssignJudges replaces the judge list for an event. Every id must belong
// to a user with the judge role.
func (s *eventService) AssignJudges(ctx context.Context, eventID uint, judgeIDs []uint) (*model.Event, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	judges := make([]model.User, 0, len(judgeIDs))
	for _, id := range judgeIDs {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrUserNotFound
			}
			return nil, fmt.Errorf("find judge: %w", err)
		}
		if user.Role != model.RoleJudge {
			return nil, errors.ErrForbidden
		}
		judges = append(judges, *user)
	}

	if err := s.eventRepo.AssignJudges(ctx, event, judges); err != nil {
		return nil, fmt.Errorf("assign judges: %w", err)
	}
	event.Judges = judges
	return event, nil
}
