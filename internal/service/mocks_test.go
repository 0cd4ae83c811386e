package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"snadaily/internal/gateway"
	"snadaily/internal/model"
	"snadaily/internal/repository"
)

// MockFishRepository is a mock implementation of FishRepository.
type MockFishRepository struct {
	mock.Mock
}

func (m *MockFishRepository) Create(ctx context.Context, fish *model.Fish) error {
	args := m.Called(ctx, fish)
	return args.Error(0)
}

func (m *MockFishRepository) FindByID(ctx context.Context, id string) (*model.Fish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fish), args.Error(1)
}

func (m *MockFishRepository) List(ctx context.Context, search string) ([]model.Fish, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fish), args.Error(1)
}

func (m *MockFishRepository) Patch(ctx context.Context, id string, patch repository.FishPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFishRepository) UpdateStatus(ctx context.Context, id string, status model.FishStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFishRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFishRepository) CountByStatus(ctx context.Context) (map[model.FishStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.FishStatus]int64), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository. Its
// WithTransaction runs the callback against the mocks themselves, so tests
// observe the same calls a real transaction would make.
type MockOrderRepository struct {
	mock.Mock
	fish *MockFishRepository
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateSnapToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) WithTransaction(ctx context.Context, fn func(orders repository.OrderRepository, fish repository.FishRepository) error) error {
	m.Called(ctx, fn)
	return fn(m, m.fish)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) AssignJudges(ctx context.Context, event *model.Event, judges []model.User) error {
	args := m.Called(ctx, event, judges)
	return args.Error(0)
}

func (m *MockEventRepository) ListByJudge(ctx context.Context, judgeID uint) ([]model.Event, error) {
	args := m.Called(ctx, judgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) JudgeAssignedToTitle(ctx context.Context, judgeID uint, title string) (bool, error) {
	args := m.Called(ctx, judgeID, title)
	return args.Bool(0), args.Error(1)
}

// MockRegistrationRepository is a mock implementation of
// RegistrationRepository.
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *model.ContestRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepository) FindByID(ctx context.Context, id uint) (*model.ContestRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContestRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) List(ctx context.Context, status model.RegistrationStatus) ([]model.ContestRegistration, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContestRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByUser(ctx context.Context, userID uint) ([]model.ContestRegistration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContestRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByContestNames(ctx context.Context, names []string) ([]model.ContestRegistration, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContestRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) UpdateStatus(ctx context.Context, id uint, status model.RegistrationStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationRepository) SubmitScore(ctx context.Context, id uint, score repository.Score) (int64, error) {
	args := m.Called(ctx, id, score)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationRepository) ClaimSpin(ctx context.Context, id, userID uint, prize string) (int64, error) {
	args := m.Called(ctx, id, userID, prize)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationRepository) RedeemPrize(ctx context.Context, id, userID uint) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationRepository) CountByStatus(ctx context.Context) (map[model.RegistrationStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.RegistrationStatus]int64), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, path, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateToken(ctx context.Context, orderID string, grossAmount int64, customerName, customerPhone string) (*gateway.PaymentToken, error) {
	args := m.Called(ctx, orderID, grossAmount, customerName, customerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PaymentToken), args.Error(1)
}
