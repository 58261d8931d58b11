package trophy

// definitions is the milestone table, ascending by threshold. Fill percents
// and coordinates match the spacing of the path artwork; the fill jumps
// discretely from one milestone's value to the next rather than
// interpolating between them.
var definitions = []Definition{
	{Type: Trophy24Hours, HoursThreshold: 24, FillPercent: 9, PathX: 50, PathY: 96},
	{Type: Trophy3Days, HoursThreshold: 72, FillPercent: 22, PathX: 22, PathY: 84},
	{Type: Trophy7Days, HoursThreshold: 168, FillPercent: 35, PathX: 70, PathY: 71},
	{Type: Trophy14Days, HoursThreshold: 336, FillPercent: 48, PathX: 30, PathY: 58},
	{Type: Trophy21Days, HoursThreshold: 504, FillPercent: 61, PathX: 74, PathY: 45},
	{Type: Trophy30Days, HoursThreshold: 720, FillPercent: 74, PathX: 26, PathY: 32},
	{Type: Trophy60Days, HoursThreshold: 1440, FillPercent: 87, PathX: 66, PathY: 18},
	{Type: Trophy90Days, HoursThreshold: 2160, FillPercent: 100, PathX: 50, PathY: 4},
}

// Definitions returns a copy of the milestone table.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

func definitionIndex(t TrophyType) int {
	for i, d := range definitions {
		if d.Type == t {
			return i
		}
	}
	return -1
}

// NextTrophy returns the first milestone whose threshold is strictly above
// the current hours, or ok=false once the last one is reached.
func NextTrophy(currentHours float64) (Next, bool) {
	for _, d := range definitions {
		if float64(d.HoursThreshold) > currentHours {
			return Next{Type: d.Type, HoursRemaining: float64(d.HoursThreshold) - currentHours}, true
		}
	}
	return Next{}, false
}

// LastReachedIndex returns the index of the last milestone at or below the
// current hours, -1 when none is reached yet. Exactly hitting a threshold
// counts as reached.
func LastReachedIndex(currentHours float64) int {
	last := -1
	for i, d := range definitions {
		if currentHours >= float64(d.HoursThreshold) {
			last = i
		}
	}
	return last
}

// PathFillPercentage maps elapsed hours onto the path artwork. Before the
// first milestone the fill creeps toward half of that milestone's fill
// percent so the path animates from day one; after that it sits on the
// last-reached milestone's fixed value until the next one lands.
func PathFillPercentage(currentHours float64, isStreakActive bool) float64 {
	if !isStreakActive || currentHours <= 0 {
		return 0
	}

	last := LastReachedIndex(currentHours)
	if last == len(definitions)-1 {
		return 100
	}
	if last < 0 {
		first := definitions[0]
		return currentHours / float64(first.HoursThreshold) * (first.FillPercent / 2)
	}
	return definitions[last].FillPercent
}

// IsEarned reports whether a persisted award exists for the type. The
// permanent unlocked visual follows this, never the live hours, so a reset
// streak keeps its old trophies lit.
func IsEarned(t TrophyType, earned map[TrophyType]bool) bool {
	return earned[t]
}

// EarnedSet collapses records into the set IsEarned checks against.
func EarnedSet(records []*Record) map[TrophyType]bool {
	set := make(map[TrophyType]bool, len(records))
	for _, r := range records {
		set[r.Type] = true
	}
	return set
}

// NewlyReached lists milestone types the live hours have passed but no
// record covers yet. The award sweep turns these into rows.
func NewlyReached(currentHours float64, earned map[TrophyType]bool) []TrophyType {
	var out []TrophyType
	for _, d := range definitions {
		if currentHours >= float64(d.HoursThreshold) && !earned[d.Type] {
			out = append(out, d.Type)
		}
	}
	return out
}

// Evaluate derives the full per-milestone display state from live hours plus
// the persisted award set.
func Evaluate(currentHours float64, earned map[TrophyType]bool, isStreakActive bool) []ProgressionState {
	states := make([]ProgressionState, 0, len(definitions))
	for _, d := range definitions {
		progress := 0.0
		if isStreakActive && currentHours > 0 {
			progress = currentHours / float64(d.HoursThreshold) * 100
			if progress > 100 {
				progress = 100
			}
		}
		states = append(states, ProgressionState{
			Definition:            d,
			IsEarned:              IsEarned(d.Type, earned),
			IsCurrentlyReached:    isStreakActive && currentHours >= float64(d.HoursThreshold),
			ProgressToNextPercent: progress,
		})
	}
	return states
}

// PathMilestones resolves every marker on the path with its dual
// unlocked/reached state.
func PathMilestones(currentHours float64, earned map[TrophyType]bool, isStreakActive bool) []PathMilestone {
	out := make([]PathMilestone, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, PathMilestone{
			Definition: d,
			Unlocked:   IsEarned(d.Type, earned),
			Reached:    isStreakActive && currentHours >= float64(d.HoursThreshold),
		})
	}
	return out
}
