package trophy

// ProgressionResponse is the GET /trophies payload.
type ProgressionResponse struct {
	CurrentHours    float64            `json:"current_hours"`
	IsStreakActive  bool               `json:"is_streak_active"`
	States          []ProgressionState `json:"states"`
	Next            *Next              `json:"next,omitempty"`
	PathFillPercent float64            `json:"path_fill_percent"`
}

// PathResponse is the GET /trophies/path payload.
type PathResponse struct {
	FillPercent float64         `json:"fill_percent"`
	Milestones  []PathMilestone `json:"milestones"`
}

// MarkShownRequest is the PUT /trophies/shown body.
type MarkShownRequest struct {
	IDs []int64 `json:"ids"`
}
