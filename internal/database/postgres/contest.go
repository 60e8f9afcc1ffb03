package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/repository"
)

// ContestRepository implements repository.Contest for PostgreSQL
type ContestRepository struct {
	pool *pgxpool.Pool
}

// NewContestRepository creates a new ContestRepository
func NewContestRepository(pool *pgxpool.Pool) repository.Contest {
	return &ContestRepository{pool: pool}
}

const eventColumns = `event_id, name, format, points_rule, pick_count, base_points, status, starts_at, created_at`

const matchColumns = `match_id, event_id, position, wrestler_a, wrestler_b, favorite, odds_ratio,
	american_odds, favorite_points, underdog_points, side_a_odds, side_b_odds, winner, finish_type`

const pickColumns = `pick_id, event_id, match_id, user_id, selected_side, american_odds,
	is_double_down, points_earned, created_at`

// CreateEvent inserts the event row and all of its matches in one transaction
func (r *ContestRepository) CreateEvent(ctx context.Context, event *domain.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, `
		INSERT INTO events (name, format, points_rule, pick_count, base_points, status, starts_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id, created_at`,
		event.Name, event.Format, event.PointsRule, event.PickCount, event.BasePoints,
		event.Status, nullTime(event.StartsAt),
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return dbError(ErrMsgFailedToInsertEvent, err)
	}

	batch := &pgx.Batch{}
	for i := range event.Matches {
		m := &event.Matches[i]
		m.EventID = event.ID
		batch.Queue(`
			INSERT INTO matches (event_id, position, wrestler_a, wrestler_b, favorite, odds_ratio,
				american_odds, favorite_points, underdog_points, side_a_odds, side_b_odds)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING match_id`,
			m.EventID, m.Position, m.WrestlerA, m.WrestlerB, m.Favorite, m.OddsRatio,
			m.AmericanOdds, m.FavoritePoints, m.UnderdogPoints, m.SideAOdds, m.SideBOdds,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&m.ID)
		})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return dbError(ErrMsgFailedToInsertMatch, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// GetEvent returns the event with its matches ordered by card position
func (r *ContestRepository) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE event_id = $1`, eventID)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, eventID)
		}
		return nil, dbError(ErrMsgFailedToQueryEvent, err)
	}

	matches, err := r.ListMatches(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.Matches = matches
	return &event, nil
}

// ListEvents returns the newest events, optionally filtered by status
func (r *ContestRepository) ListEvents(ctx context.Context, status domain.EventStatus, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY created_at DESC
		LIMIT $2`, string(status), limit)
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryEvent, err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryEvent, err)
	}
	return events, nil
}

// SetEventStatus overwrites the event status
func (r *ContestRepository) SetEventStatus(ctx context.Context, eventID uuid.UUID, status domain.EventStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE events SET status = $2 WHERE event_id = $1`, eventID, status)
	if err != nil {
		return dbError(ErrMsgFailedToUpdateStatus, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, eventID)
	}
	return nil
}

// GetMatch returns a single match
func (r *ContestRepository) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE match_id = $1`, matchID)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, matchID)
		}
		return nil, dbError(ErrMsgFailedToQueryMatches, err)
	}
	return &m, nil
}

// ListMatches returns an event's matches ordered by position
func (r *ContestRepository) ListMatches(ctx context.Context, eventID uuid.UUID) ([]domain.Match, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE event_id = $1 ORDER BY position`, eventID)
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryMatches, err)
	}

	matches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Match, error) {
		return scanMatch(row)
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryMatches, err)
	}
	return matches, nil
}

// ReplacePicks deletes the user's existing picks for the event and inserts the new set.
// It fails with domain.ErrEventLocked once the event has left the open status.
func (r *ContestRepository) ReplacePicks(ctx context.Context, eventID uuid.UUID, userID string, picks []domain.Pick) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	// the row lock orders this entry against SetEventStatus on the same event
	var status domain.EventStatus
	err = tx.QueryRow(ctx, `SELECT status FROM events WHERE event_id = $1 FOR UPDATE`, eventID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrEventNotFound, eventID)
		}
		return dbError(ErrMsgFailedToQueryEvent, err)
	}
	if status != domain.EventStatusOpen {
		return fmt.Errorf("%w: %s", domain.ErrEventLocked, status)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM picks WHERE event_id = $1 AND user_id = $2`, eventID, userID); err != nil {
		return dbError(ErrMsgFailedToDeletePicks, err)
	}

	batch := &pgx.Batch{}
	for i := range picks {
		p := &picks[i]
		p.EventID = eventID
		p.UserID = userID
		batch.Queue(`
			INSERT INTO picks (event_id, match_id, user_id, selected_side, american_odds, is_double_down)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING pick_id, created_at`,
			p.EventID, p.MatchID, p.UserID, p.SelectedSide, p.AmericanOdds, p.IsDoubleDown,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&p.ID, &p.CreatedAt)
		})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return dbError(ErrMsgFailedToInsertPicks, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// ListPicksForMatch returns every pick made on a match
func (r *ContestRepository) ListPicksForMatch(ctx context.Context, matchID uuid.UUID) ([]domain.Pick, error) {
	return r.queryPicks(ctx, `SELECT `+pickColumns+` FROM picks WHERE match_id = $1 ORDER BY created_at`, matchID)
}

// ListPicksForUser returns a user's picks for an event
func (r *ContestRepository) ListPicksForUser(ctx context.Context, eventID uuid.UUID, userID string) ([]domain.Pick, error) {
	return r.queryPicks(ctx, `
		SELECT `+pickColumns+` FROM picks p
		WHERE p.event_id = $1 AND p.user_id = $2
		ORDER BY (SELECT position FROM matches m WHERE m.match_id = p.match_id)`, eventID, userID)
}

func (r *ContestRepository) queryPicks(ctx context.Context, sql string, args ...any) ([]domain.Pick, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryPicks, err)
	}

	picks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Pick, error) {
		var p domain.Pick
		err := row.Scan(&p.ID, &p.EventID, &p.MatchID, &p.UserID, &p.SelectedSide, &p.AmericanOdds,
			&p.IsDoubleDown, &p.PointsEarned, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryPicks, err)
	}
	return picks, nil
}

// RecordMatchResult stores the result and each pick's points in one transaction
func (r *ContestRepository) RecordMatchResult(ctx context.Context, match domain.Match, pickPoints map[uuid.UUID]float64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, `UPDATE matches SET winner = $2, finish_type = $3 WHERE match_id = $1`,
		match.ID, match.Winner, match.FinishType)
	if err != nil {
		return dbError(ErrMsgFailedToUpdateResult, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMatchNotFound, match.ID)
	}

	if len(pickPoints) > 0 {
		batch := &pgx.Batch{}
		for pickID, points := range pickPoints {
			batch.Queue(`UPDATE picks SET points_earned = $2 WHERE pick_id = $1`, pickID, points)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return dbError(ErrMsgFailedToUpdatePoints, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// GetLeaderboard ranks users by total points; tied users share a rank
func (r *ContestRepository) GetLeaderboard(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT RANK() OVER (ORDER BY SUM(points_earned) DESC) AS rank,
		       user_id,
		       SUM(points_earned) AS total_points,
		       COUNT(*) AS picks_made,
		       COUNT(*) FILTER (WHERE points_earned > 0) AS picks_won
		FROM picks
		WHERE event_id = $1
		GROUP BY user_id
		ORDER BY total_points DESC, user_id
		LIMIT $2`, eventID, limit)
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryStanding, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.Rank, &e.UserID, &e.TotalPoints, &e.PicksMade, &e.PicksWon)
		return e, err
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryStanding, err)
	}
	return entries, nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	var startsAt *time.Time
	err := row.Scan(&e.ID, &e.Name, &e.Format, &e.PointsRule, &e.PickCount, &e.BasePoints,
		&e.Status, &startsAt, &e.CreatedAt)
	if startsAt != nil {
		e.StartsAt = *startsAt
	}
	return e, err
}

func scanMatch(row pgx.Row) (domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.EventID, &m.Position, &m.WrestlerA, &m.WrestlerB, &m.Favorite,
		&m.OddsRatio, &m.AmericanOdds, &m.FavoritePoints, &m.UnderdogPoints, &m.SideAOdds,
		&m.SideBOdds, &m.Winner, &m.FinishType)
	return m, err
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
