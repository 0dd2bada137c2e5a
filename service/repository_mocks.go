package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"questbets/events"
	"questbets/models"
)

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) GetAll(ctx context.Context) ([]*models.Bet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

func (m *MockBetRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBetRepository) Upsert(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByAddress(ctx context.Context, address string) (*models.User, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, address string, discordHandle, xHandle *string) (*models.User, error) {
	args := m.Called(ctx, address, discordHandle, xHandle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetLeaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetAllAddresses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockUserBetRepository is a mock implementation of UserBetRepository
type MockUserBetRepository struct {
	mock.Mock
}

func (m *MockUserBetRepository) Create(ctx context.Context, userBet *models.UserBet) error {
	args := m.Called(ctx, userBet)
	return args.Error(0)
}

func (m *MockUserBetRepository) GetAllWithRelations(ctx context.Context) ([]*models.UserBet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserBet), args.Error(1)
}

// CapturingPublisher records published events for assertions
type CapturingPublisher struct {
	Events []events.Event
}

func (p *CapturingPublisher) Publish(event events.Event) {
	p.Events = append(p.Events, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	betRepo     BetRepository
	userRepo    UserRepository
	userBetRepo UserBetRepository
	publisher   *CapturingPublisher
}

// SetRepositories configures the repositories returned by the unit of work
func (m *MockUnitOfWork) SetRepositories(betRepo BetRepository, userRepo UserRepository, userBetRepo UserBetRepository) {
	m.betRepo = betRepo
	m.userRepo = userRepo
	m.userBetRepo = userBetRepo
	m.publisher = &CapturingPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) BetRepository() BetRepository {
	return m.betRepo
}

func (m *MockUnitOfWork) UserRepository() UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) UserBetRepository() UserBetRepository {
	return m.userBetRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.publisher
}

// PublishedEvents returns the events published through the unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.publisher.Events
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// MockCatalogCache is a mock implementation of CatalogCache
type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetCatalog(ctx context.Context) ([]*models.Bet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

func (m *MockCatalogCache) SetCatalog(ctx context.Context, bets []*models.Bet) error {
	args := m.Called(ctx, bets)
	return args.Error(0)
}
