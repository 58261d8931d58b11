package streak

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerStops(t *testing.T) {
	var ticks int64

	ticker := NewTicker(10*time.Millisecond, func(now time.Time) {
		atomic.AddInt64(&ticks, 1)
	})

	time.Sleep(60 * time.Millisecond)
	ticker.Stop()

	seen := atomic.LoadInt64(&ticks)
	if seen == 0 {
		t.Fatal("expected at least one tick before stop")
	}

	// Once Stop has returned the callback must never fire again.
	time.Sleep(40 * time.Millisecond)
	if got := atomic.LoadInt64(&ticks); got != seen {
		t.Fatalf("ticker fired after stop: %d ticks before, %d after", seen, got)
	}
}

func TestTickerStopTwice(t *testing.T) {
	ticker := NewTicker(time.Hour, func(now time.Time) {})
	ticker.Stop()
	ticker.Stop()
}
