package trophy

import (
	"math"
	"testing"
)

func TestNextTrophy(t *testing.T) {
	cases := []struct {
		name      string
		hours     float64
		wantType  TrophyType
		wantLeft  float64
		wantFound bool
	}{
		{"fresh streak", 0, Trophy24Hours, 24, true},
		{"just past first", 25, Trophy3Days, 47, true},
		{"exactly at a threshold", 72, Trophy7Days, 96, true},
		{"almost done", 2159.5, Trophy90Days, 0.5, true},
		{"fully progressed", 2160, "", 0, false},
		{"beyond the table", 5000, "", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextTrophy(tc.hours)
			if ok != tc.wantFound {
				t.Fatalf("expected found=%t, got %t", tc.wantFound, ok)
			}
			if !ok {
				return
			}
			if next.Type != tc.wantType || next.HoursRemaining != tc.wantLeft {
				t.Fatalf("expected %s/%.1f remaining, got %s/%.1f", tc.wantType, tc.wantLeft, next.Type, next.HoursRemaining)
			}
		})
	}
}

func TestLastReachedIndex(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, -1},
		{23.9, -1},
		{24, 0},
		{71.9, 0},
		{72, 1},
		{720, 5},
		{2159, 6},
		{2160, 7},
		{9999, 7},
	}

	for _, tc := range cases {
		if got := LastReachedIndex(tc.hours); got != tc.want {
			t.Errorf("LastReachedIndex(%.1f): expected %d, got %d", tc.hours, tc.want, got)
		}
	}
}

func TestLastReachedIndexMonotone(t *testing.T) {
	prev := -1
	for h := 0.0; h <= 2500; h += 7.3 {
		got := LastReachedIndex(h)
		if got < prev {
			t.Fatalf("index decreased from %d to %d at %.1f hours", prev, got, h)
		}
		prev = got
	}
}

func TestPathFillPercentage(t *testing.T) {
	cases := []struct {
		name   string
		hours  float64
		active bool
		want   float64
	}{
		{"no active streak", 500, false, 0},
		{"zero hours", 0, true, 0},
		{"halfway to first milestone", 12, true, 2.25},
		{"first milestone reached", 24, true, 9},
		{"between milestones holds last fill", 100, true, 22},
		{"still holding before next", 300, true, 35},
		{"last milestone", 2160, true, 100},
		{"past the end", 5000, true, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PathFillPercentage(tc.hours, tc.active)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %.2f, got %.2f", tc.want, got)
			}
		})
	}
}

func TestIsEarnedIndependentOfHours(t *testing.T) {
	earned := map[TrophyType]bool{Trophy24Hours: true, Trophy3Days: true}

	// A reset streak reports zero live hours; the persisted unlocks stay.
	states := Evaluate(0, earned, false)

	for _, st := range states {
		wantEarned := st.Type == Trophy24Hours || st.Type == Trophy3Days
		if st.IsEarned != wantEarned {
			t.Errorf("%s: expected IsEarned=%t, got %t", st.Type, wantEarned, st.IsEarned)
		}
		if st.IsCurrentlyReached {
			t.Errorf("%s: reached must be false with no active streak", st.Type)
		}
		if st.ProgressToNextPercent != 0 {
			t.Errorf("%s: progress must be zero with no active streak", st.Type)
		}
	}
}

func TestEvaluateDualTrack(t *testing.T) {
	// 25 live hours but the award write has not landed yet: reached without
	// earned, both visible.
	states := Evaluate(25, map[TrophyType]bool{}, true)

	first := states[0]
	if first.Type != Trophy24Hours {
		t.Fatalf("expected table ordered ascending, got %s first", first.Type)
	}
	if first.IsEarned {
		t.Error("no record written, IsEarned must be false")
	}
	if !first.IsCurrentlyReached {
		t.Error("25 hours past a 24 hour threshold must read as reached")
	}
	if first.ProgressToNextPercent != 100 {
		t.Errorf("expected capped progress 100, got %.2f", first.ProgressToNextPercent)
	}

	second := states[1]
	wantProgress := 25.0 / 72.0 * 100
	if math.Abs(second.ProgressToNextPercent-wantProgress) > 1e-9 {
		t.Errorf("expected progress %.2f toward 3d, got %.2f", wantProgress, second.ProgressToNextPercent)
	}
}

func TestNewlyReached(t *testing.T) {
	earned := map[TrophyType]bool{Trophy24Hours: true}

	newly := NewlyReached(200, earned)
	want := []TrophyType{Trophy3Days, Trophy7Days}
	if len(newly) != len(want) {
		t.Fatalf("expected %v, got %v", want, newly)
	}
	for i := range want {
		if newly[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, newly)
		}
	}

	if got := NewlyReached(10, map[TrophyType]bool{}); got != nil {
		t.Fatalf("expected nothing newly reached at 10 hours, got %v", got)
	}
}

func TestPathMilestones(t *testing.T) {
	earned := map[TrophyType]bool{Trophy7Days: true}

	milestones := PathMilestones(30, earned, true)
	if len(milestones) != len(definitions) {
		t.Fatalf("expected %d milestones, got %d", len(definitions), len(milestones))
	}

	for _, m := range milestones {
		if m.Unlocked != (m.Type == Trophy7Days) {
			t.Errorf("%s: unexpected unlocked=%t", m.Type, m.Unlocked)
		}
		if m.Reached != (m.Type == Trophy24Hours) {
			t.Errorf("%s: unexpected reached=%t at 30 hours", m.Type, m.Reached)
		}
	}
}
