package services

import (
	"context"
	"fmt"
	"time"

	"soberPathAPI/internal/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CalendarService struct {
	db *pgxpool.Pool
}

func NewCalendarService(db *pgxpool.Pool) *CalendarService {
	return &CalendarService{db: db}
}

// GetCalendar classifies every day of the month. Session rows are read-only
// input here; days before the account existed are disabled, days after
// today render empty, recorded days carry their session state.
func (s *CalendarService) GetCalendar(ctx context.Context, clerkID string, year int, month int) (*calendar.MonthResponse, error) {
	var userID uuid.UUID
	var accountCreatedAt time.Time
	err := s.db.QueryRow(ctx, `SELECT id, created_at FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID, &accountCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	query := `
	SELECT date, status, total_drinks, max_drink_count, total_water_cups, budget, drink_type
	FROM drink_sessions
	WHERE user_id = $1
		AND date >= $2
		AND date <= $3
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer rows.Close()

	sessionsByDay := make(map[string]*calendar.DayData)
	for rows.Next() {
		data := &calendar.DayData{}
		if err := rows.Scan(&data.Date, &data.Status, &data.TotalDrinks, &data.MaxDrinkCount, &data.TotalWaterCups, &data.Budget, &data.DrinkType); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessionsByDay[calendar.DateKey(data.Date)] = data
	}

	today := time.Now().UTC()
	todayKey := calendar.DateKey(today)

	var days []*calendar.DayView
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		view := &calendar.DayView{
			Date:    d,
			State:   calendar.ClassifyDay(d, sessionsByDay, accountCreatedAt, today),
			IsToday: calendar.DateKey(d) == todayKey,
		}
		if view.State == calendar.DayCompleted {
			data := sessionsByDay[calendar.DateKey(d)]
			view.TotalDrinks = data.TotalDrinks
			view.MaxDrinkCount = data.MaxDrinkCount
			view.TotalWaterCups = data.TotalWaterCups
		}
		days = append(days, view)
	}

	return &calendar.MonthResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}
