package contest_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/matchpoints"
	"github.com/osse101/Pickem_Go/internal/pick6"
)

// --- Stubs (zero-overhead repository for benchmarking) ---

type StubRepository struct {
	event *domain.Event
	picks []domain.Pick
}

func newStubRepository(format domain.ContestFormat, matches, entries int) *StubRepository {
	evt := &domain.Event{
		ID:         uuid.New(),
		Name:       "Bench Card",
		Format:     format,
		PointsRule: domain.PointsRuleBalanced,
		PickCount:  matches,
		BasePoints: 1000,
		Status:     domain.EventStatusLocked,
	}
	for i := 0; i < matches; i++ {
		bmp := matchpoints.CalculateMatchPointsFromAmerican(-110-10*i, 1000)
		evt.Matches = append(evt.Matches, domain.Match{
			ID: uuid.New(), EventID: evt.ID, Position: i + 1,
			WrestlerA: fmt.Sprintf("A%d", i), WrestlerB: fmt.Sprintf("B%d", i),
			Favorite: domain.SideA, AmericanOdds: -110 - 10*i,
			FavoritePoints: bmp.FavoritePoints, UnderdogPoints: bmp.UnderdogPoints,
			SideAOdds: -110 - 10*i, SideBOdds: 100 + 10*i,
		})
	}

	repo := &StubRepository{event: evt}
	for u := 0; u < entries; u++ {
		side := domain.SideA
		if u%2 == 1 {
			side = domain.SideB
		}
		repo.picks = append(repo.picks, domain.Pick{
			ID: uuid.New(), EventID: evt.ID, MatchID: evt.Matches[0].ID,
			UserID: fmt.Sprintf("viewer-%d", u), SelectedSide: side,
			AmericanOdds: evt.Matches[0].OddsFor(side),
		})
	}
	return repo
}

func (s *StubRepository) CreateEvent(ctx context.Context, event *domain.Event) error { return nil }
func (s *StubRepository) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	return s.event, nil
}
func (s *StubRepository) ListEvents(ctx context.Context, status domain.EventStatus, limit int) ([]domain.Event, error) {
	return []domain.Event{*s.event}, nil
}
func (s *StubRepository) SetEventStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error {
	return nil
}
func (s *StubRepository) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	m := s.event.Matches[0]
	return &m, nil
}
func (s *StubRepository) ListMatches(ctx context.Context, eventID uuid.UUID) ([]domain.Match, error) {
	return s.event.Matches, nil
}
func (s *StubRepository) ReplacePicks(ctx context.Context, eventID uuid.UUID, userID string, picks []domain.Pick) error {
	return nil
}
func (s *StubRepository) ListPicksForMatch(ctx context.Context, matchID uuid.UUID) ([]domain.Pick, error) {
	return s.picks, nil
}
func (s *StubRepository) ListPicksForUser(ctx context.Context, eventID uuid.UUID, userID string) ([]domain.Pick, error) {
	return s.picks[:1], nil
}
func (s *StubRepository) RecordMatchResult(ctx context.Context, match domain.Match, pickPoints map[uuid.UUID]float64) error {
	return nil
}
func (s *StubRepository) GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

// --- Benchmarks ---

func BenchmarkRecordResult(b *testing.B) {
	for _, format := range []domain.ContestFormat{domain.FormatMatchPicks, domain.FormatPick6} {
		for _, entries := range []int{100, 1000} {
			b.Run(fmt.Sprintf("%s/%d_entries", format, entries), func(b *testing.B) {
				repo := newStubRepository(format, 6, entries)
				svc := contest.NewService(repo, nil, nil, contest.Options{})
				matchID := repo.event.Matches[0].ID
				ctx := context.Background()

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := svc.RecordResult(ctx, matchID, domain.SideB, domain.FinishKOTKO); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkGetEventPotential(b *testing.B) {
	repo := newStubRepository(domain.FormatMatchPicks, 12, 0)
	ctx := context.Background()

	b.Run("cached", func(b *testing.B) {
		svc := contest.NewService(repo, nil, nil, contest.Options{})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := svc.GetEventPotential(ctx, repo.event.ID); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkScoreSelection(b *testing.B) {
	sel := domain.Pick6Selection{AmericanOdds: 150, IsWinner: true, FinishType: domain.FinishSubmission, IsDoubleDown: true}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = pick6.ScoreSelection(sel)
	}
}

func BenchmarkCalculateMatchPointsFromAmerican(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = matchpoints.CalculateMatchPointsFromAmerican(-150-i%400, 1000)
	}
}
