package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"soberPathAPI/internal/notification"
	"soberPathAPI/internal/streak"
	"soberPathAPI/internal/trophy"
	"soberPathAPI/middleware"
	"soberPathAPI/services"
)

// AwardWorker sweeps active streaks and turns newly passed thresholds into
// trophy rows. When one sweep lands several trophies at once (a user who
// kept a streak going through a server outage), the sequencer surfaces only
// the highest milestone: the rest are marked shown silently and no push is
// sent for them.
type AwardWorker struct {
	streaks       *services.StreakService
	trophies      *services.TrophyService
	notifications *services.NotificationService
	push          notification.PushProvider
	ticker        *streak.Ticker
}

// StartAwardWorker begins sweeping at the given interval. push may be nil;
// awards are still written, only the notification is skipped.
func StartAwardWorker(
	streaks *services.StreakService,
	trophies *services.TrophyService,
	notifications *services.NotificationService,
	push notification.PushProvider,
	interval time.Duration,
) *AwardWorker {
	w := &AwardWorker{
		streaks:       streaks,
		trophies:      trophies,
		notifications: notifications,
		push:          push,
	}
	w.ticker = streak.NewTicker(interval, w.sweep)
	log.Printf("Trophy award worker started, sweep interval %s", interval)
	return w
}

// Stop halts the sweep loop. No sweep runs after Stop returns.
func (w *AwardWorker) Stop() {
	w.ticker.Stop()
	log.Println("Trophy award worker stopped")
}

func (w *AwardWorker) sweep(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	active, err := w.streaks.ActiveStreaks(ctx)
	if err != nil {
		log.Printf("Award sweep: failed to fetch active streaks: %v", err)
		return
	}

	for _, st := range active {
		if err := w.sweepStreak(ctx, st, now); err != nil {
			log.Printf("Award sweep: streak %s: %v", st.ID, err)
		}
	}
}

func (w *AwardWorker) sweepStreak(ctx context.Context, st *streak.Streak, now time.Time) error {
	hours := now.Sub(st.StartedAt).Hours()
	if hours <= 0 {
		return nil
	}

	earned, err := w.trophies.EarnedSetForStreak(ctx, st.ID)
	if err != nil {
		return err
	}

	newly := trophy.NewlyReached(hours, earned)
	if len(newly) == 0 {
		return nil
	}

	var awarded []*trophy.Record
	for _, t := range newly {
		rec, created, err := w.trophies.AwardTrophy(ctx, st.UserID, st.ID, t)
		if err != nil {
			log.Printf("Award sweep: failed to award %s on streak %s: %v", t, st.ID, err)
			continue
		}
		if created {
			middleware.RecordTrophyAward(string(t))
			awarded = append(awarded, rec)
		}
	}

	if len(awarded) == 0 {
		return nil
	}

	seq := trophy.NewSequencer(w.trophies)
	show := seq.Receive(awarded)
	if show != nil {
		w.notifyAward(ctx, st, show)
	}

	return nil
}

func (w *AwardWorker) notifyAward(ctx context.Context, st *streak.Streak, rec *trophy.Record) {
	if w.push == nil {
		return
	}

	tokens, err := w.notifications.TokensForUser(ctx, st.UserID)
	if err != nil {
		log.Printf("Award sweep: failed to fetch tokens for user %s: %v", st.UserID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	title := "Milestone reached!"
	body := fmt.Sprintf("Your %s trophy is waiting for you.", rec.Type)
	data := map[string]any{
		"trophy_id":   rec.ID,
		"trophy_type": rec.Type,
	}

	if err := w.push.SendPush(ctx, tokens, title, body, data); err != nil {
		log.Printf("Award sweep: push failed for user %s: %v", st.UserID, err)
	}
}
