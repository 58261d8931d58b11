package streak

import (
	"sync"
	"time"
)

// Ticker drives periodic recomputes (the live timer runs it at 1 Hz, the
// award sweep at a minute). It is an explicit resource: NewTicker starts the
// loop, Stop releases it, and once Stop returns the callback will never fire
// again.
type Ticker struct {
	onTick   func(now time.Time)
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

func NewTicker(interval time.Duration, onTick func(now time.Time)) *Ticker {
	t := &Ticker{
		onTick:   onTick,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	go t.loop(interval)
	return t
}

func (t *Ticker) loop(interval time.Duration) {
	defer close(t.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			t.onTick(now)
		case <-t.stopChan:
			return
		}
	}
}

// Stop cancels the ticker and waits for any in-flight tick to finish.
// Safe to call more than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	<-t.done
}
