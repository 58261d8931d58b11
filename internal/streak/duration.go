package streak

import (
	"fmt"
	"time"
)

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// ComputeBreakdown converts a streak start and a "now" into the displayed
// duration. Whole years and months are counted by stepping a cursor date
// forward through the calendar; everything below the month level comes from
// the elapsed milliseconds. If now is before start (client clock briefly
// ahead of the server write) every field floors to zero instead of going
// negative.
//
// Remaining days are totalDays - (years*365 + months*30). That drifts by a
// few days on multi-year streaks. The rounding is part of the shipped
// display behavior, so it stays.
func ComputeBreakdown(start, now time.Time) DurationBreakdown {
	if now.Before(start) {
		return DurationBreakdown{}
	}

	years := 0
	cursor := start
	for {
		next := cursor.AddDate(1, 0, 0)
		if next.After(now) {
			break
		}
		cursor = next
		years++
	}

	months := 0
	for {
		next := cursor.AddDate(0, 1, 0)
		if next.After(now) {
			break
		}
		cursor = next
		months++
	}

	elapsedMs := now.Sub(start).Milliseconds()
	totalDays := int(elapsedMs / millisPerDay)

	days := totalDays - (years*365 + months*30)
	if days < 0 {
		days = 0
	}

	return DurationBreakdown{
		Years:   years,
		Months:  months,
		Days:    days,
		Hours:   int(elapsedMs/millisPerHour) % 24,
		Minutes: int(elapsedMs/millisPerMinute) % 60,
		Seconds: int(elapsedMs/millisPerSecond) % 60,
	}
}

// SafeBreakdown wraps ComputeBreakdown for callers holding a nullable start.
// A missing or zero start means "no active streak" and yields a zeroed
// breakdown; onErr, when non-nil, is told why. The progression UI degrades
// to zeros rather than erroring.
func SafeBreakdown(start *time.Time, now time.Time, onErr func(error)) DurationBreakdown {
	if start == nil || start.IsZero() {
		if onErr != nil {
			onErr(fmt.Errorf("streak start timestamp missing"))
		}
		return DurationBreakdown{}
	}
	return ComputeBreakdown(*start, now)
}

// DisplayUnits projects a breakdown into the gauge row. Days, hours, minutes
// and seconds are always present; months appear once non-zero and years drag
// months in with them so positions stay stable. The outermost long-scale
// unit reads as full: it accumulates, it does not cycle.
func DisplayUnits(b DurationBreakdown) []DisplayUnit {
	units := make([]DisplayUnit, 0, 6)

	if b.Years > 0 {
		units = append(units,
			DisplayUnit{Value: b.Years, Label: "Years", MaxValue: b.Years, Progress: 100, Kind: UnitYears},
			DisplayUnit{Value: b.Months, Label: "Months", MaxValue: 12, Progress: unitProgress(b.Months, 12), Kind: UnitMonths},
		)
	} else if b.Months > 0 {
		units = append(units,
			DisplayUnit{Value: b.Months, Label: "Months", MaxValue: 12, Progress: 100, Kind: UnitMonths},
		)
	}

	units = append(units,
		DisplayUnit{Value: b.Days, Label: "Days", MaxValue: 30, Progress: unitProgress(b.Days, 30), Kind: UnitDays},
		DisplayUnit{Value: b.Hours, Label: "Hours", MaxValue: 24, Progress: unitProgress(b.Hours, 24), Kind: UnitHours},
		DisplayUnit{Value: b.Minutes, Label: "Minutes", MaxValue: 60, Progress: unitProgress(b.Minutes, 60), Kind: UnitMinutes},
		DisplayUnit{Value: b.Seconds, Label: "Seconds", MaxValue: 60, Progress: unitProgress(b.Seconds, 60), Kind: UnitSeconds},
	)

	return units
}

func unitProgress(value, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(value) / float64(max) * 100
}

// FormatUnitValue renders a gauge value. Zero stays a bare "0" so a fresh
// streak does not open on a wall of "00"; everything else is two digits.
func FormatUnitValue(v int) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%02d", v)
}
