package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soberPathAPI/internal/trophy"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TrophyService struct {
	db *pgxpool.Pool
}

func NewTrophyService(db *pgxpool.Pool) *TrophyService {
	return &TrophyService{db: db}
}

// GetTrophies returns every trophy record the user has earned, across all
// streaks, oldest first.
func (s *TrophyService) GetTrophies(ctx context.Context, clerkID string) ([]*trophy.Record, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT id, user_id, streak_id, type, earned_at, shown_at
	FROM trophies
	WHERE user_id = $1
	ORDER BY earned_at ASC
	`

	return s.queryRecords(ctx, query, userID)
}

// GetPendingTrophies returns records the user has not acknowledged yet.
func (s *TrophyService) GetPendingTrophies(ctx context.Context, clerkID string) ([]*trophy.Record, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT id, user_id, streak_id, type, earned_at, shown_at
	FROM trophies
	WHERE user_id = $1 AND shown_at IS NULL
	ORDER BY earned_at ASC
	`

	return s.queryRecords(ctx, query, userID)
}

func (s *TrophyService) queryRecords(ctx context.Context, query string, args ...any) ([]*trophy.Record, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trophies: %w", err)
	}
	defer rows.Close()

	var records []*trophy.Record
	for rows.Next() {
		rec := &trophy.Record{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.StreakID, &rec.Type, &rec.EarnedAt, &rec.ShownAt); err != nil {
			return nil, fmt.Errorf("failed to scan trophy: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// MarkTrophiesShown stamps shown_at on the given records. Already-shown rows
// are left untouched, so repeated acknowledgements are no-ops. Satisfies
// trophy.Store for the sequencer and award worker.
func (s *TrophyService) MarkTrophiesShown(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := s.db.Exec(ctx, `
		UPDATE trophies
		SET shown_at = NOW()
		WHERE id = ANY($1) AND shown_at IS NULL
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to mark trophies shown: %w", err)
	}

	return nil
}

// MarkTrophiesShownForUser is the authenticated variant: it only touches
// rows owned by the caller.
func (s *TrophyService) MarkTrophiesShownForUser(ctx context.Context, clerkID string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		UPDATE trophies
		SET shown_at = NOW()
		WHERE user_id = $1 AND id = ANY($2) AND shown_at IS NULL
	`, userID, ids)
	if err != nil {
		return fmt.Errorf("failed to mark trophies shown: %w", err)
	}

	return nil
}

// EarnedSetForStreak returns the trophy types already recorded for one
// streak. A type is earned at most once per streak.
func (s *TrophyService) EarnedSetForStreak(ctx context.Context, streakID uuid.UUID) (map[trophy.TrophyType]bool, error) {
	rows, err := s.db.Query(ctx, `SELECT type FROM trophies WHERE streak_id = $1`, streakID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch streak trophies: %w", err)
	}
	defer rows.Close()

	set := make(map[trophy.TrophyType]bool)
	for rows.Next() {
		var t trophy.TrophyType
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan trophy type: %w", err)
		}
		set[t] = true
	}

	return set, nil
}

// AwardTrophy inserts a record for a newly reached milestone. The
// (streak_id, type) unique constraint makes concurrent sweeps idempotent;
// created is false when the row already existed.
func (s *TrophyService) AwardTrophy(ctx context.Context, userID, streakID uuid.UUID, t trophy.TrophyType) (*trophy.Record, bool, error) {
	query := `
	INSERT INTO trophies (user_id, streak_id, type, earned_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (streak_id, type) DO NOTHING
	RETURNING id, user_id, streak_id, type, earned_at, shown_at
	`

	rec := &trophy.Record{}
	err := s.db.QueryRow(ctx, query, userID, streakID, t).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.StreakID,
		&rec.Type,
		&rec.EarnedAt,
		&rec.ShownAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to award trophy: %w", err)
	}

	return rec, true, nil
}

// GetProgression derives the full milestone display state: permanent
// unlocks from persisted records, live reached/progress from the active
// streak's elapsed hours. The two tracks stay separate on purpose.
func (s *TrophyService) GetProgression(ctx context.Context, clerkID string, now time.Time) (*trophy.ProgressionResponse, error) {
	records, err := s.GetTrophies(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	hours, active, err := s.currentHours(ctx, clerkID, now)
	if err != nil {
		return nil, err
	}

	earned := trophy.EarnedSet(records)
	resp := &trophy.ProgressionResponse{
		CurrentHours:    hours,
		IsStreakActive:  active,
		States:          trophy.Evaluate(hours, earned, active),
		PathFillPercent: trophy.PathFillPercentage(hours, active),
	}

	if next, ok := trophy.NextTrophy(hours); ok {
		resp.Next = &next
	}

	return resp, nil
}

// GetPath resolves the trophy-path render state.
func (s *TrophyService) GetPath(ctx context.Context, clerkID string, now time.Time) (*trophy.PathResponse, error) {
	records, err := s.GetTrophies(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	hours, active, err := s.currentHours(ctx, clerkID, now)
	if err != nil {
		return nil, err
	}

	earned := trophy.EarnedSet(records)
	return &trophy.PathResponse{
		FillPercent: trophy.PathFillPercentage(hours, active),
		Milestones:  trophy.PathMilestones(hours, earned, active),
	}, nil
}

func (s *TrophyService) currentHours(ctx context.Context, clerkID string, now time.Time) (float64, bool, error) {
	var startedAt time.Time
	err := s.db.QueryRow(ctx, `
		SELECT s.started_at
		FROM streaks s
		JOIN users u ON u.id = s.user_id
		WHERE u.clerk_id = $1 AND s.is_active = true
	`, clerkID).Scan(&startedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get active streak: %w", err)
	}

	hours := now.Sub(startedAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return hours, true, nil
}
