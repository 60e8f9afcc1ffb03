// Package contest runs pick'em events: building cards, taking picks,
// scoring results and ranking entries.
package contest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/Pickem_Go/internal/concurrency"
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/event"
	"github.com/osse101/Pickem_Go/internal/logger"
	"github.com/osse101/Pickem_Go/internal/matchpoints"
	"github.com/osse101/Pickem_Go/internal/metrics"
	"github.com/osse101/Pickem_Go/internal/oddsinput"
	"github.com/osse101/Pickem_Go/internal/pick6"
	"github.com/osse101/Pickem_Go/internal/potential"
	"github.com/osse101/Pickem_Go/internal/repository"
	"github.com/osse101/Pickem_Go/internal/validation"
)

// Service defines the interface for contest operations
type Service interface {
	CreateEvent(ctx context.Context, in NewEvent) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context, status domain.EventStatus, limit int) ([]domain.Event, error)
	SetEventStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error)

	SubmitPicks(ctx context.Context, eventID uuid.UUID, userID string, in []PickInput) ([]domain.Pick, error)
	RecordResult(ctx context.Context, matchID uuid.UUID, winner domain.Side, finish domain.FinishType) (*domain.Match, error)

	GetEventPotential(ctx context.Context, eventID uuid.UUID) (*domain.EventPotential, error)
	GetEntryPotential(ctx context.Context, eventID uuid.UUID, userID string) (*domain.EntryPotential, error)
	GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error)

	ImportEventCard(ctx context.Context, path string) (*domain.Event, error)
	ImportEventCardDir(ctx context.Context, dir string) ([]*domain.Event, error)
}

// Options tunes a contest service
type Options struct {
	// BasePoints is used for balanced events that do not set their own
	BasePoints int
	CacheSize  int
	CacheTTL   time.Duration
	// SchemaPath is the JSON schema event card files are checked against
	SchemaPath string
}

// service implements the Service interface
type service struct {
	repo   repository.Contest
	bus    event.Bus
	schema validation.SchemaValidator
	cache  *potentialCache
	locks  *concurrency.LockManager
	opts   Options
}

// NewService creates a new contest service. bus and schema may be nil.
func NewService(repo repository.Contest, bus event.Bus, schema validation.SchemaValidator, opts Options) Service {
	if opts.BasePoints <= 0 {
		opts.BasePoints = matchpoints.DefaultBasePoints
	}
	return &service{
		repo:   repo,
		bus:    bus,
		schema: schema,
		cache:  newPotentialCache(opts.CacheSize, opts.CacheTTL),
		locks:  concurrency.NewLockManager(),
		opts:   opts,
	}
}

// ============================================================================
// Events
// ============================================================================

// CreateEvent validates a card, prices every match and stores it open for picks
func (s *service) CreateEvent(ctx context.Context, in NewEvent) (*domain.Event, error) {
	log := logger.FromContext(ctx)

	evt, err := s.buildEvent(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateEvent(ctx, evt); err != nil {
		log.Error(LogMsgFailedToCreateEvent, "error", err, "name", evt.Name)
		return nil, fmt.Errorf(ErrMsgFailedToCreateEvent, err)
	}

	s.publish(ctx, event.NewEventCreatedEvent(*evt))
	log.Info(LogMsgEventCreated, "event_id", evt.ID, "format", evt.Format, "matches", len(evt.Matches))
	return evt, nil
}

func (s *service) buildEvent(in NewEvent) (*domain.Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEventNameRequired)
	}
	if len(in.Matches) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoMatches)
	}

	evt := &domain.Event{
		Name:     name,
		Format:   in.Format,
		Status:   domain.EventStatusOpen,
		StartsAt: in.StartsAt,
	}

	switch in.Format {
	case domain.FormatMatchPicks:
		evt.PointsRule = in.PointsRule
		if evt.PointsRule == "" {
			evt.PointsRule = domain.PointsRuleRatio
		}
		if evt.PointsRule != domain.PointsRuleRatio && evt.PointsRule != domain.PointsRuleBalanced {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPointsRule, in.PointsRule)
		}
		evt.BasePoints = in.BasePoints
		if evt.BasePoints <= 0 {
			evt.BasePoints = s.opts.BasePoints
		}
	case domain.FormatPick6:
		evt.PickCount = in.PickCount
		if evt.PickCount == 0 {
			evt.PickCount = domain.DefaultPick6Count
		}
		if evt.PickCount < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPickCountRequired)
		}
		if evt.PickCount > len(in.Matches) {
			return nil, fmt.Errorf("%w: "+ErrMsgPickCountTooHigh, domain.ErrInvalidInput, evt.PickCount, len(in.Matches))
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, in.Format)
	}

	evt.Matches = make([]domain.Match, 0, len(in.Matches))
	for i, nm := range in.Matches {
		m, err := buildMatch(evt, i+1, nm)
		if err != nil {
			return nil, err
		}
		evt.Matches = append(evt.Matches, m)
	}

	return evt, nil
}

// buildMatch prices one bout according to the event's format and points rule
func buildMatch(evt *domain.Event, position int, nm NewMatch) (domain.Match, error) {
	m := domain.Match{
		Position:  position,
		WrestlerA: strings.TrimSpace(nm.WrestlerA),
		WrestlerB: strings.TrimSpace(nm.WrestlerB),
	}
	if m.WrestlerA == "" || m.WrestlerB == "" {
		return m, fmt.Errorf("%w: "+ErrMsgWrestlerRequired, domain.ErrInvalidInput, position)
	}

	if evt.Format == domain.FormatPick6 {
		for _, line := range []int{nm.SideAOdds, nm.SideBOdds} {
			if err := checkAmerican(position, line); err != nil {
				return m, err
			}
		}
		m.SideAOdds = nm.SideAOdds
		m.SideBOdds = nm.SideBOdds
		return m, nil
	}

	if evt.PointsRule == domain.PointsRuleBalanced {
		if err := checkAmerican(position, nm.AmericanOdds); err != nil {
			return m, err
		}
		bmp := matchpoints.CalculateMatchPointsFromAmerican(nm.AmericanOdds, evt.BasePoints)
		m.AmericanOdds = bmp.AmericanOdds
		m.OddsRatio = bmp.OddsRatio
		m.FavoritePoints = bmp.FavoritePoints
		m.UnderdogPoints = bmp.UnderdogPoints
		m.Favorite = favoriteFromSideAOdds(bmp)
		return m, nil
	}

	// ratio rule
	if nm.AmericanOdds != 0 {
		if err := checkAmerican(position, nm.AmericanOdds); err != nil {
			return m, err
		}
		m.AmericanOdds = nm.AmericanOdds
	}
	if nm.Favorite == domain.SideNone {
		if nm.OddsRatio > matchpoints.MinOddsRatio {
			return m, fmt.Errorf("%w: "+ErrMsgMatchFavoriteFmt, domain.ErrInvalidSide, position)
		}
		m.OddsRatio = matchpoints.MinOddsRatio
		m.FavoritePoints = matchpoints.EvenMatchPoints
		m.UnderdogPoints = matchpoints.EvenMatchPoints
		return m, nil
	}
	if !nm.Favorite.IsValid() {
		return m, fmt.Errorf("%w: "+ErrMsgMatchFavoriteFmt, domain.ErrInvalidSide, position)
	}
	if v := oddsinput.ValidateOddsRatio(nm.OddsRatio); !v.IsValid {
		return m, fmt.Errorf("%w: "+ErrMsgMatchOddsFmt, domain.ErrInvalidOdds, position, v.Error)
	}
	sided := matchpoints.AssignFavorite(matchpoints.CalculateMatchPoints(nm.OddsRatio), nm.Favorite)
	m.Favorite = sided.Favorite
	m.OddsRatio = sided.OddsRatio
	m.FavoritePoints = sided.FavoritePoints
	m.UnderdogPoints = sided.UnderdogPoints
	return m, nil
}

// favoriteFromSideAOdds reads the favored side off a line quoted for side A
func favoriteFromSideAOdds(bmp domain.BalancedMatchPoints) domain.Side {
	switch {
	case bmp.IsPickEm:
		return domain.SideNone
	case bmp.AmericanOdds < 0:
		return domain.SideA
	default:
		return domain.SideB
	}
}

func checkAmerican(position, line int) error {
	if v := oddsinput.ValidateAmericanOdds(line); !v.IsValid {
		return fmt.Errorf("%w: "+ErrMsgMatchOddsFmt, domain.ErrInvalidOdds, position, v.Error)
	}
	return nil
}

// GetEvent returns an event with its matches
func (s *service) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	return s.repo.GetEvent(ctx, eventID)
}

// ListEvents returns recent events, optionally filtered by status
func (s *service) ListEvents(ctx context.Context, status domain.EventStatus, limit int) ([]domain.Event, error) {
	if status != "" && !isKnownStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInput, status)
	}
	return s.repo.ListEvents(ctx, status, clampLimit(limit))
}

// SetEventStatus moves an event one step along open -> locked -> complete
func (s *service) SetEventStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error) {
	log := logger.FromContext(ctx)

	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if nextStatus[evt.Status] != status {
		return nil, fmt.Errorf("%w: "+ErrMsgTransitionFmt, domain.ErrInvalidStatus, evt.Status, status)
	}

	if err := s.repo.SetEventStatus(ctx, eventID, status); err != nil {
		return nil, err
	}

	from := evt.Status
	evt.Status = status
	s.publish(ctx, event.NewEventStatusChangedEvent(eventID, from, status))
	log.Info(LogMsgStatusChanged, "event_id", eventID, "from", from, "to", status)

	return evt, nil
}

var nextStatus = map[domain.EventStatus]domain.EventStatus{
	domain.EventStatusOpen:   domain.EventStatusLocked,
	domain.EventStatusLocked: domain.EventStatusComplete,
}

func isKnownStatus(status domain.EventStatus) bool {
	switch status {
	case domain.EventStatusOpen, domain.EventStatusLocked, domain.EventStatusComplete:
		return true
	}
	return false
}

// ============================================================================
// Picks
// ============================================================================

// SubmitPicks replaces a user's entry for an open event.
// Pick 6 entries are checked as a whole and every problem is reported together.
func (s *service) SubmitPicks(ctx context.Context, eventID uuid.UUID, userID string, in []PickInput) ([]domain.Pick, error) {
	log := logger.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoPicks)
	}

	defer s.locks.Lock(entryLockKey(eventID, userID))()

	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if evt.Status != domain.EventStatusOpen {
		return nil, fmt.Errorf("%w: %s", domain.ErrEventLocked, evt.Status)
	}

	matches := make(map[uuid.UUID]domain.Match, len(evt.Matches))
	for _, m := range evt.Matches {
		matches[m.ID] = m
	}

	picks := make([]domain.Pick, 0, len(in))
	seen := make(map[uuid.UUID]struct{}, len(in))
	for _, p := range in {
		m, ok := matches[p.MatchID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotInEvent, p.MatchID)
		}
		if !p.Side.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSide, p.Side)
		}

		pick := domain.Pick{
			EventID:      eventID,
			MatchID:      p.MatchID,
			UserID:       userID,
			SelectedSide: p.Side,
			IsDoubleDown: p.IsDoubleDown,
		}

		if evt.Format == domain.FormatMatchPicks {
			if p.IsDoubleDown {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDoubleDownNotPick6)
			}
			if _, dup := seen[p.MatchID]; dup {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateMatchPick, p.MatchID)
			}
			seen[p.MatchID] = struct{}{}
			pick.AmericanOdds = sideLine(m, p.Side)
		} else {
			pick.AmericanOdds = m.OddsFor(p.Side)
		}

		picks = append(picks, pick)
	}

	if evt.Format == domain.FormatPick6 {
		if v := pick6.ValidateEntry(picks, evt.PickCount); !v.IsValid {
			s.publish(ctx, event.NewEntryRejectedEvent(eventID, userID, v.Errors))
			log.Info(LogMsgEntryRejected, "event_id", eventID, "user_id", userID, "errors", v.Errors)
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEntry, strings.Join(v.Errors, "; "))
		}
	}

	if err := s.repo.ReplacePicks(ctx, eventID, userID, picks); err != nil {
		if errors.Is(err, domain.ErrEventLocked) {
			log.Info(LogMsgEntryClosed, "event_id", eventID, "user_id", userID)
			return nil, err
		}
		log.Error(LogMsgFailedToStorePicks, "error", err, "event_id", eventID, "user_id", userID)
		return nil, fmt.Errorf(ErrMsgFailedToStorePicks, err)
	}

	s.publish(ctx, event.NewPicksSubmittedEvent(eventID, userID, evt.Format, len(picks)))
	log.Info(LogMsgPicksSubmitted, "event_id", eventID, "user_id", userID, "count", len(picks))

	return picks, nil
}

func entryLockKey(eventID uuid.UUID, userID string) string {
	return LockPrefixEntry + eventID.String() + ":" + userID
}

// sideLine returns the line of side s for a match quoted from side A
func sideLine(m domain.Match, side domain.Side) int {
	if side == domain.SideB {
		return -m.AmericanOdds
	}
	return m.AmericanOdds
}

// ============================================================================
// Results
// ============================================================================

// RecordResult stores a match result and rescores every pick on it.
// Recording again overwrites the earlier result and its scores.
func (s *service) RecordResult(ctx context.Context, matchID uuid.UUID, winner domain.Side, finish domain.FinishType) (*domain.Match, error) {
	log := logger.FromContext(ctx)

	if !winner.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSide, winner)
	}
	if !finish.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFinishType, finish)
	}

	// a re-record must not interleave with the scoring pass it replaces
	defer s.locks.Lock(LockPrefixMatch + matchID.String())()

	m, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	evt, err := s.repo.GetEvent(ctx, m.EventID)
	if err != nil {
		return nil, err
	}
	if evt.Status == domain.EventStatusOpen {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, ErrMsgResultNeedsLock)
	}

	m.Winner = winner
	m.FinishType = finish

	picks, err := s.repo.ListPicksForMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	points := make(map[uuid.UUID]float64, len(picks))
	total, previous := decimal.Zero, decimal.Zero
	won := 0
	for _, p := range picks {
		earned := scorePick(evt.Format, *m, p)
		points[p.ID] = earned
		total = total.Add(decimal.NewFromFloat(earned))
		previous = previous.Add(decimal.NewFromFloat(p.PointsEarned))
		if p.SelectedSide == winner {
			won++
		}
	}

	if err := s.repo.RecordMatchResult(ctx, *m, points); err != nil {
		log.Error(LogMsgFailedToStoreResult, "error", err, "match_id", matchID)
		return nil, fmt.Errorf(ErrMsgFailedToStoreResult, err)
	}

	s.cache.Invalidate(m.EventID)
	s.publish(ctx, event.NewMatchResultRecordedEvent(*m, evt.Format, event.ScoreTally{
		PicksScored:  len(picks),
		PicksWon:     won,
		PointsEarned: total.InexactFloat64(),
		PointsDelta:  total.Sub(previous).InexactFloat64(),
	}))
	log.Info(LogMsgResultRecorded, "match_id", matchID, "winner", winner, "finish_type", finish, "picks_scored", len(picks))

	return m, nil
}

// scorePick prices one pick against a decided match
func scorePick(format domain.ContestFormat, m domain.Match, p domain.Pick) float64 {
	if format == domain.FormatPick6 {
		return pick6.ScoreSelection(domain.Pick6Selection{
			AmericanOdds: p.AmericanOdds,
			IsWinner:     p.SelectedSide == m.Winner,
			FinishType:   m.FinishType,
			IsDoubleDown: p.IsDoubleDown,
		}).TotalPoints
	}
	return float64(matchpoints.CalculatePickPoints(m, p))
}

// ============================================================================
// Standings
// ============================================================================

// GetEventPotential sums the legacy point range of a match picks card
func (s *service) GetEventPotential(ctx context.Context, eventID uuid.UUID) (*domain.EventPotential, error) {
	if p, ok := s.cache.Get(eventID); ok {
		metrics.PotentialCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgPotentialCacheHit, "event_id", eventID)
		return &p, nil
	}
	metrics.PotentialCacheMisses.Inc()

	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if evt.Format != domain.FormatMatchPicks {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFormat, ErrMsgPotentialNotPick6)
	}

	p := potential.Calculate(evt.Matches)
	s.cache.Set(eventID, p)
	return &p, nil
}

// GetEntryPotential reports what a user has banked and can still win
func (s *service) GetEntryPotential(ctx context.Context, eventID uuid.UUID, userID string) (*domain.EntryPotential, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	picks, err := s.repo.ListPicksForUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	matches := make(map[uuid.UUID]domain.Match, len(evt.Matches))
	for _, m := range evt.Matches {
		matches[m.ID] = m
	}

	earned, remaining := decimal.Zero, decimal.Zero
	open := 0
	for _, p := range picks {
		m, ok := matches[p.MatchID]
		if !ok {
			continue
		}
		if m.HasResult() {
			earned = earned.Add(decimal.NewFromFloat(p.PointsEarned))
			continue
		}
		open++
		remaining = remaining.Add(decimal.NewFromFloat(bestCase(evt.Format, m, p)))
	}

	return &domain.EntryPotential{
		EventID:     eventID.String(),
		UserID:      userID,
		Earned:      earned.InexactFloat64(),
		Remaining:   remaining.InexactFloat64(),
		MaxPossible: earned.Add(remaining).InexactFloat64(),
		OpenPicks:   open,
	}, nil
}

// bestCase is what a pick on an undecided match earns if it wins
func bestCase(format domain.ContestFormat, m domain.Match, p domain.Pick) float64 {
	if format == domain.FormatPick6 {
		return pick6.PotentialPoints(p.AmericanOdds, p.IsDoubleDown)
	}
	pp := matchpoints.PickingPoints(m)
	if p.SelectedSide == domain.SideB {
		return float64(pp.SideBPoints)
	}
	return float64(pp.SideAPoints)
}

// GetLeaderboard ranks an event's entries by total points
func (s *service) GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error) {
	if _, err := s.repo.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}
	if limit > domain.MaxLeaderboardLimit {
		limit = domain.MaxLeaderboardLimit
	}
	return s.repo.GetLeaderboard(ctx, eventID, limit)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
