package calendar

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDay(t *testing.T) {
	accountCreatedAt := day(2024, time.January, 10)
	today := day(2024, time.January, 20)

	sessions := map[string]*DayData{
		DateKey(day(2024, time.January, 5)):  {Status: StatusCompleted, TotalDrinks: 3},
		DateKey(day(2024, time.January, 12)): {Status: StatusCompleted, TotalDrinks: 2, MaxDrinkCount: 4, TotalWaterCups: 3},
		DateKey(day(2024, time.January, 15)): {Status: StatusPlanned},
		DateKey(day(2024, time.January, 20)): {Status: StatusActive},
		DateKey(day(2024, time.January, 25)): {Status: StatusPlanned},
	}

	cases := []struct {
		name string
		day  time.Time
		want DayVisualState
	}{
		{"before account wins over session data", day(2024, time.January, 5), DayDisabledBeforeAccount},
		{"no record in the future", day(2024, time.January, 28), DayFuture},
		{"no record in the past", day(2024, time.January, 14), DayAbstained},
		{"no record today", day(2024, time.January, 18), DayAbstained},
		{"completed session", day(2024, time.January, 12), DayCompleted},
		{"planned session", day(2024, time.January, 15), DaySession},
		{"active session today", day(2024, time.January, 20), DaySession},
		{"planned session in the future", day(2024, time.January, 25), DaySession},
		{"account creation day itself", day(2024, time.January, 10), DayAbstained},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyDay(tc.day, sessions, accountCreatedAt, today)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyDayIsPure(t *testing.T) {
	accountCreatedAt := day(2024, time.January, 10)
	today := day(2024, time.January, 20)
	sessions := map[string]*DayData{
		DateKey(day(2024, time.January, 12)): {Status: StatusCompleted},
	}

	for d := day(2024, time.January, 1); !d.After(day(2024, time.January, 31)); d = d.AddDate(0, 0, 1) {
		first := ClassifyDay(d, sessions, accountCreatedAt, today)
		second := ClassifyDay(d, sessions, accountCreatedAt, today)
		if first != second {
			t.Fatalf("classification of %s changed between calls: %s then %s", d, first, second)
		}
	}
}

func TestClassifyDayUsesUTCDates(t *testing.T) {
	// Account created late in the UTC day; a local-time comparison of
	// instants would disable the whole creation day.
	accountCreatedAt := time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC)
	today := day(2024, time.January, 20)

	morning := time.Date(2024, time.January, 10, 1, 0, 0, 0, time.UTC)
	if got := ClassifyDay(morning, nil, accountCreatedAt, today); got != DayAbstained {
		t.Fatalf("expected the creation date itself to stay enabled, got %s", got)
	}

	// An instant that is still Jan 9 in a western timezone but Jan 10 in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	lateNight := time.Date(2024, time.January, 9, 22, 0, 0, 0, loc)
	if got := ClassifyDay(lateNight, nil, accountCreatedAt, today); got != DayAbstained {
		t.Fatalf("expected UTC date comparison to keep %s enabled, got %s", lateNight, got)
	}
}
