package service

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"snadaily/internal/errors"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

// SubmitScoreInput carries one judge's component scores for an entry.
type SubmitScoreInput struct {
	Body    int
	Form    int
	Color   int
	Comment string
}

// JudgeService handles the judge-facing side of contests: assigned events,
// scoped entry listing, and score submission. A judge only ever sees and
// scores entries of events they are assigned to.
type JudgeService interface {
	AssignedEvents(ctx context.Context, judgeID uint) ([]model.Event, error)
	Entries(ctx context.Context, judgeID uint) ([]model.ContestRegistration, error)
	SubmitScore(ctx context.Context, judgeID, registrationID uint, input SubmitScoreInput) (*model.ContestRegistration, error)
}

type judgeService struct {
	eventRepo repository.EventRepository
	regRepo   repository.RegistrationRepository
}

// NewJudgeService creates a new judge service.
func NewJudgeService(eventRepo repository.EventRepository, regRepo repository.RegistrationRepository) JudgeService {
	return &judgeService{eventRepo: eventRepo, regRepo: regRepo}
}

// AssignedEvents returns the events the judge is assigned to.
func (s *judgeService) AssignedEvents(ctx context.Context, judgeID uint) ([]model.Event, error) {
	return s.eventRepo.ListByJudge(ctx, judgeID)
}

// Entries returns registrations whose contest name matches a title of one
// of the judge's assigned events.
func (s *judgeService) Entries(ctx context.Context, judgeID uint) ([]model.ContestRegistration, error) {
	events, err := s.eventRepo.ListByJudge(ctx, judgeID)
	if err != nil {
		return nil, fmt.Errorf("list assigned events: %w", err)
	}
	titles := make([]string, 0, len(events))
	for _, event := range events {
		titles = append(titles, event.Title)
	}
	return s.regRepo.ListByContestNames(ctx, titles)
}

// SubmitScore validates the assignment invariant and persists component and
// aggregate scores. Total is the rounded mean of body, form and color.
// Re-submission overwrites the previous score without an audit trail.
func (s *judgeService) SubmitScore(ctx context.Context, judgeID, registrationID uint, input SubmitScoreInput) (*model.ContestRegistration, error) {
	for _, component := range []int{input.Body, input.Form, input.Color} {
		if component < 0 || component > 100 {
			return nil, errors.ErrInvalidScore
		}
	}

	reg, err := s.regRepo.FindByID(ctx, registrationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	if reg.Status != model.RegistrationStatusApproved {
		return nil, errors.ErrInvalidStatusTransition
	}

	assigned, err := s.eventRepo.JudgeAssignedToTitle(ctx, judgeID, reg.ContestName)
	if err != nil {
		return nil, fmt.Errorf("check assignment: %w", err)
	}
	if !assigned {
		return nil, errors.ErrJudgeNotAssigned
	}

	total := TotalScore(input.Body, input.Form, input.Color)
	score := repository.Score{
		Body:    input.Body,
		Form:    input.Form,
		Color:   input.Color,
		Total:   total,
		Comment: input.Comment,
		JudgeID: judgeID,
	}
	if _, err := s.regRepo.SubmitScore(ctx, registrationID, score); err != nil {
		return nil, fmt.Errorf("submit score: %w", err)
	}

	reg.ScoreBody = &input.Body
	reg.ScoreForm = &input.Form
	reg.ScoreColor = &input.Color
	reg.ScoreTotal = &total
	reg.JudgeComment = input.Comment
	reg.JudgedBy = &judgeID
	return reg, nil
}

// TotalScore computes the aggregate: round(mean(body, form, color)).
func TotalScore(body, form, color int) int {
	return int(math.Round(float64(body+form+color) / 3.0))
}
