package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// Contest defines the interface for event, match and pick persistence
type Contest interface {
	// CreateEvent stores the event and its matches atomically and fills in generated IDs
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context, status domain.EventStatus, limit int) ([]domain.Event, error)
	SetEventStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error

	GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	ListMatches(ctx context.Context, eventID uuid.UUID) ([]domain.Match, error)

	// ReplacePicks swaps a user's picks for an event in one transaction
	ReplacePicks(ctx context.Context, eventID uuid.UUID, userID string, picks []domain.Pick) error
	ListPicksForMatch(ctx context.Context, matchID uuid.UUID) ([]domain.Pick, error)
	ListPicksForUser(ctx context.Context, eventID uuid.UUID, userID string) ([]domain.Pick, error)

	// RecordMatchResult stores the winner and the rescored pick points together
	RecordMatchResult(ctx context.Context, match domain.Match, pickPoints map[uuid.UUID]float64) error

	GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error)
}
