package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soberPathAPI/internal/streak"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StreakService struct {
	db *pgxpool.Pool
}

func NewStreakService(db *pgxpool.Pool) *StreakService {
	return &StreakService{db: db}
}

// GetCurrentStreak returns the user's active streak, or nil when there is
// none. A missing streak is a normal state, not an error: the caller's
// display floors to zero.
func (s *StreakService) GetCurrentStreak(ctx context.Context, clerkID string) (*streak.Streak, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT id, user_id, started_at, ended_at, is_active, created_at
	FROM streaks
	WHERE user_id = $1 AND is_active = true
	`

	st := &streak.Streak{}
	err = s.db.QueryRow(ctx, query, userID).Scan(
		&st.ID,
		&st.UserID,
		&st.StartedAt,
		&st.EndedAt,
		&st.IsActive,
		&st.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	return st, nil
}

// GetOverview assembles the live duration projection for the current streak.
// Pending trophies are attached by the handler.
func (s *StreakService) GetOverview(ctx context.Context, clerkID string, now time.Time) (*streak.OverviewResponse, error) {
	st, err := s.GetCurrentStreak(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	resp := &streak.OverviewResponse{Streak: st}
	if st == nil || !st.IsActive {
		resp.DisplayUnits = streak.DisplayUnits(resp.Breakdown)
		return resp, nil
	}

	hours := now.Sub(st.StartedAt).Hours()
	if hours < 0 {
		hours = 0
	}

	resp.DurationHours = hours
	resp.Breakdown = streak.ComputeBreakdown(st.StartedAt, now)
	resp.DisplayUnits = streak.DisplayUnits(resp.Breakdown)
	return resp, nil
}

// StartStreak ends any active streak and opens a new one. At most one
// active streak exists per user.
func (s *StreakService) StartStreak(ctx context.Context, clerkID string, startedAt time.Time) (*streak.Streak, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		UPDATE streaks
		SET is_active = false, ended_at = NOW()
		WHERE user_id = $1 AND is_active = true
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to end previous streak: %w", err)
	}

	query := `
	INSERT INTO streaks (id, user_id, started_at, is_active, created_at)
	VALUES ($1, $2, $3, true, NOW())
	RETURNING id, user_id, started_at, ended_at, is_active, created_at
	`

	st := &streak.Streak{}
	err = s.db.QueryRow(ctx, query, uuid.New(), userID, startedAt).Scan(
		&st.ID,
		&st.UserID,
		&st.StartedAt,
		&st.EndedAt,
		&st.IsActive,
		&st.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start streak: %w", err)
	}

	return st, nil
}

// ResetStreak ends the active streak without opening a new one.
func (s *StreakService) ResetStreak(ctx context.Context, clerkID string) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	result, err := s.db.Exec(ctx, `
		UPDATE streaks
		SET is_active = false, ended_at = NOW()
		WHERE user_id = $1 AND is_active = true
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to reset streak: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no active streak to reset")
	}

	return nil
}

// ActiveStreaks lists every active streak across users, for the award sweep.
func (s *StreakService) ActiveStreaks(ctx context.Context) ([]*streak.Streak, error) {
	query := `
	SELECT id, user_id, started_at, ended_at, is_active, created_at
	FROM streaks
	WHERE is_active = true
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active streaks: %w", err)
	}
	defer rows.Close()

	var streaks []*streak.Streak
	for rows.Next() {
		st := &streak.Streak{}
		if err := rows.Scan(&st.ID, &st.UserID, &st.StartedAt, &st.EndedAt, &st.IsActive, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan streak: %w", err)
		}
		streaks = append(streaks, st)
	}

	return streaks, nil
}
