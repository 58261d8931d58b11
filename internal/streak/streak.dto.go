package streak

import "soberPathAPI/internal/trophy"

// OverviewResponse is the GET /streak payload: the active streak (nil when
// none), its live duration projection, and any unacknowledged trophies.
// With no active streak every derived field is zeroed rather than omitted.
type OverviewResponse struct {
	Streak          *Streak           `json:"streak"`
	DurationHours   float64           `json:"duration_hours"`
	Breakdown       DurationBreakdown `json:"breakdown"`
	DisplayUnits    []DisplayUnit     `json:"display_units"`
	PendingTrophies []*trophy.Record  `json:"pending_trophies"`
}
