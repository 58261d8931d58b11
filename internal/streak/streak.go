package streak

import (
	"time"

	"github.com/google/uuid"
)

type Streak struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	StartedAt time.Time  `json:"started_at" db:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// DurationBreakdown is the per-second projection of an active streak.
// It is derived on every tick and never persisted.
type DurationBreakdown struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type UnitKind string

const (
	UnitYears   UnitKind = "years"
	UnitMonths  UnitKind = "months"
	UnitDays    UnitKind = "days"
	UnitHours   UnitKind = "hours"
	UnitMinutes UnitKind = "minutes"
	UnitSeconds UnitKind = "seconds"
)

// DisplayUnit is one circular gauge's worth of the breakdown,
// ordered largest unit first in the list returned by DisplayUnits.
type DisplayUnit struct {
	Value    int      `json:"value"`
	Label    string   `json:"label"`
	MaxValue int      `json:"max_value"`
	Progress float64  `json:"progress"`
	Kind     UnitKind `json:"unit_kind"`
}
