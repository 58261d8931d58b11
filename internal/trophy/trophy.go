package trophy

import (
	"time"

	"github.com/google/uuid"
)

type TrophyType string

const (
	Trophy24Hours TrophyType = "24h"
	Trophy3Days   TrophyType = "3d"
	Trophy7Days   TrophyType = "7d"
	Trophy14Days  TrophyType = "14d"
	Trophy21Days  TrophyType = "21d"
	Trophy30Days  TrophyType = "30d"
	Trophy60Days  TrophyType = "60d"
	Trophy90Days  TrophyType = "90d"
)

// Definition is one row of the static milestone table. FillPercent and the
// path coordinates are configuration tied to the trophy-path artwork, not
// derived values.
type Definition struct {
	Type           TrophyType `json:"type"`
	HoursThreshold int        `json:"hours_threshold"`
	FillPercent    float64    `json:"fill_percent"`
	PathX          float64    `json:"path_x"`
	PathY          float64    `json:"path_y"`
}

// Record is a persisted award. ShownAt nil means the user has not
// acknowledged it yet. One record per (streak, type): re-earning after a
// reset creates a new record on the new streak.
type Record struct {
	ID       int64      `json:"id" db:"id"`
	UserID   uuid.UUID  `json:"user_id" db:"user_id"`
	StreakID uuid.UUID  `json:"streak_id" db:"streak_id"`
	Type     TrophyType `json:"type" db:"type"`
	EarnedAt time.Time  `json:"earned_at" db:"earned_at"`
	ShownAt  *time.Time `json:"shown_at,omitempty" db:"shown_at"`
}

func (r *Record) Pending() bool {
	return r.ShownAt == nil
}

// ProgressionState is the derived per-milestone display state. IsEarned
// follows the persisted records and is permanent for a streak's lifetime;
// IsCurrentlyReached follows live hours only. The two can disagree while the
// award write is in flight, and both are surfaced.
type ProgressionState struct {
	Definition
	IsEarned              bool    `json:"is_earned"`
	IsCurrentlyReached    bool    `json:"is_currently_reached"`
	ProgressToNextPercent float64 `json:"progress_to_next_percent"`
}

// Next names the first milestone still ahead of the current elapsed hours.
type Next struct {
	Type           TrophyType `json:"type"`
	HoursRemaining float64    `json:"hours_remaining"`
}

// PathMilestone is one marker on the trophy path: its fixed position plus
// the dual earned/reached state.
type PathMilestone struct {
	Definition
	Unlocked bool `json:"unlocked"`
	Reached  bool `json:"reached"`
}
