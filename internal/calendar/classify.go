package calendar

import "time"

// DateKey normalizes an instant to its UTC calendar date. All day
// comparisons go through this so a session logged near midnight does not
// flip cells across a timezone boundary.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func utcDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ClassifyDay resolves exactly one visual state per calendar day. Pure
// function of its inputs: same day, sessions, account date and today always
// classify the same, so results are safe to memoize.
func ClassifyDay(day time.Time, sessionsByDay map[string]*DayData, accountCreatedAt, today time.Time) DayVisualState {
	d := utcDate(day)

	if d.Before(utcDate(accountCreatedAt)) {
		return DayDisabledBeforeAccount
	}

	data, ok := sessionsByDay[DateKey(day)]
	if !ok {
		if d.After(utcDate(today)) {
			return DayFuture
		}
		return DayAbstained
	}

	if data.Status == StatusCompleted {
		return DayCompleted
	}
	return DaySession
}
