package streak

import (
	"testing"
	"time"
)

func TestComputeBreakdown(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		now   time.Time
		want  DurationBreakdown
	}{
		{
			name:  "25 hours in",
			start: now.Add(-25 * time.Hour),
			now:   now,
			want:  DurationBreakdown{Days: 1, Hours: 1},
		},
		{
			name:  "same instant",
			start: now,
			now:   now,
			want:  DurationBreakdown{},
		},
		{
			name:  "clock skew floors to zero",
			start: now.Add(90 * time.Second),
			now:   now,
			want:  DurationBreakdown{},
		},
		{
			name:  "minutes and seconds",
			start: now.Add(-(3*time.Minute + 42*time.Second)),
			now:   now,
			want:  DurationBreakdown{Minutes: 3, Seconds: 42},
		},
		{
			name:  "two months and change",
			start: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			now:   time.Date(2025, 3, 20, 10, 30, 0, 0, time.UTC),
			want:  DurationBreakdown{Months: 2, Days: 4, Hours: 10, Minutes: 30},
		},
		{
			// One elapsed year spanning Feb 29 2024: the 365-day remainder
			// rule leaves the leap day in the days field.
			name:  "exactly one leap year",
			start: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			now:   time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
			want:  DurationBreakdown{Years: 1, Days: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBreakdown(tc.start, tc.now)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestComputeBreakdownNeverNegative(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	starts := []time.Time{
		now.Add(-time.Second),
		now.Add(-27 * time.Hour),
		now.AddDate(0, -7, -3),
		now.AddDate(-3, -1, 0),
		now.Add(48 * time.Hour), // skewed ahead of now
	}

	for _, start := range starts {
		b := ComputeBreakdown(start, now)
		for _, v := range []int{b.Years, b.Months, b.Days, b.Hours, b.Minutes, b.Seconds} {
			if v < 0 {
				t.Fatalf("negative field in breakdown %+v for start %s", b, start)
			}
		}
	}
}

func TestSafeBreakdown(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	var reported error
	got := SafeBreakdown(nil, now, func(err error) { reported = err })
	if got != (DurationBreakdown{}) {
		t.Fatalf("expected zeroed breakdown, got %+v", got)
	}
	if reported == nil {
		t.Fatal("expected the error callback to fire for a nil start")
	}

	start := now.Add(-time.Hour)
	got = SafeBreakdown(&start, now, nil)
	if got.Hours != 1 {
		t.Fatalf("expected 1 hour, got %+v", got)
	}
}

func TestDisplayUnits(t *testing.T) {
	cases := []struct {
		name      string
		breakdown DurationBreakdown
		wantKinds []UnitKind
	}{
		{
			name:      "fresh streak still shows four gauges",
			breakdown: DurationBreakdown{},
			wantKinds: []UnitKind{UnitDays, UnitHours, UnitMinutes, UnitSeconds},
		},
		{
			name:      "months appear once non-zero",
			breakdown: DurationBreakdown{Months: 2, Days: 4},
			wantKinds: []UnitKind{UnitMonths, UnitDays, UnitHours, UnitMinutes, UnitSeconds},
		},
		{
			name:      "years drag months in even at zero",
			breakdown: DurationBreakdown{Years: 1, Days: 1},
			wantKinds: []UnitKind{UnitYears, UnitMonths, UnitDays, UnitHours, UnitMinutes, UnitSeconds},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			units := DisplayUnits(tc.breakdown)
			if len(units) != len(tc.wantKinds) {
				t.Fatalf("expected %d units, got %d", len(tc.wantKinds), len(units))
			}
			for i, kind := range tc.wantKinds {
				if units[i].Kind != kind {
					t.Fatalf("unit %d: expected kind %s, got %s", i, kind, units[i].Kind)
				}
			}
		})
	}
}

func TestDisplayUnitsOutermostIsFull(t *testing.T) {
	units := DisplayUnits(DurationBreakdown{Years: 2, Months: 0, Days: 10})
	if units[0].Kind != UnitYears || units[0].Progress != 100 {
		t.Fatalf("expected years gauge forced to 100, got %+v", units[0])
	}
	if units[1].Kind != UnitMonths || units[1].Progress != 0 {
		t.Fatalf("expected zero months gauge at 0 progress, got %+v", units[1])
	}

	units = DisplayUnits(DurationBreakdown{Months: 3})
	if units[0].Kind != UnitMonths || units[0].Progress != 100 {
		t.Fatalf("expected months gauge forced to 100 when years absent, got %+v", units[0])
	}
}

func TestFormatUnitValue(t *testing.T) {
	cases := map[int]string{
		0:  "0",
		5:  "05",
		42: "42",
	}

	for v, want := range cases {
		if got := FormatUnitValue(v); got != want {
			t.Errorf("FormatUnitValue(%d): expected %q, got %q", v, want, got)
		}
	}
}
