package contest

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/event"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateEvent(ctx context.Context, evt *domain.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockRepository) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockRepository) ListEvents(ctx context.Context, status domain.EventStatus, limit int) ([]domain.Event, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockRepository) SetEventStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error {
	args := m.Called(ctx, eventID, status)
	return args.Error(0)
}

func (m *MockRepository) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockRepository) ListMatches(ctx context.Context, eventID uuid.UUID) ([]domain.Match, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

func (m *MockRepository) ReplacePicks(ctx context.Context, eventID uuid.UUID, userID string, picks []domain.Pick) error {
	args := m.Called(ctx, eventID, userID, picks)
	return args.Error(0)
}

func (m *MockRepository) ListPicksForMatch(ctx context.Context, matchID uuid.UUID) ([]domain.Pick, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pick), args.Error(1)
}

func (m *MockRepository) ListPicksForUser(ctx context.Context, eventID uuid.UUID, userID string) ([]domain.Pick, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pick), args.Error(1)
}

func (m *MockRepository) RecordMatchResult(ctx context.Context, match domain.Match, pickPoints map[uuid.UUID]float64) error {
	args := m.Called(ctx, match, pickPoints)
	return args.Error(0)
}

func (m *MockRepository) GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, eventID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// recordingBus captures published events in order
type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	out := make([]event.Type, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}
