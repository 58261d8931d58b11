package calendar

import "time"

type SessionStatus string

const (
	StatusPlanned   SessionStatus = "planned"
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

// DayData is one drink-session record. A row is created when a session is
// planned, mutated as drinks and water get logged, and finalized on
// completion. Days without a row are abstained (past) or simply empty
// (future).
type DayData struct {
	Date           time.Time     `json:"date" db:"date"`
	Status         SessionStatus `json:"status" db:"status"`
	TotalDrinks    int           `json:"total_drinks" db:"total_drinks"`
	MaxDrinkCount  int           `json:"max_drink_count" db:"max_drink_count"`
	TotalWaterCups int           `json:"total_water_cups" db:"total_water_cups"`
	Budget         float64       `json:"budget" db:"budget"`
	DrinkType      string        `json:"drink_type" db:"drink_type"`
}

type DayVisualState string

const (
	DayDisabledBeforeAccount DayVisualState = "disabled_before_account"
	DayFuture                DayVisualState = "future"
	DayAbstained             DayVisualState = "abstained"
	DayCompleted             DayVisualState = "completed"
	DaySession               DayVisualState = "session"
)

// DayView is one calendar cell. Completed days carry their session stats;
// planned/active days only show the session indicator.
type DayView struct {
	Date           time.Time      `json:"date"`
	State          DayVisualState `json:"state"`
	IsToday        bool           `json:"is_today"`
	TotalDrinks    int            `json:"total_drinks,omitempty"`
	MaxDrinkCount  int            `json:"max_drink_count,omitempty"`
	TotalWaterCups int            `json:"total_water_cups,omitempty"`
}

type MonthResponse struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Days  []*DayView `json:"days"`
}
