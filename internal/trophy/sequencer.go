package trophy

import (
	"context"
	"log"
	"sync"
	"time"
)

// Store is the persistence edge the sequencer acknowledges through. Marking
// an already-shown trophy again is a no-op at the data layer.
type Store interface {
	MarkTrophiesShown(ctx context.Context, ids []int64) error
}

type SequencerState string

const (
	StateIdle       SequencerState = "idle"
	StatePresenting SequencerState = "presenting"
)

// Sequencer decides which pending trophy gets surfaced when several pile up
// at once (a user back after days offline can clear three thresholds in one
// fetch). Only the highest milestone is presented; the rest are acknowledged
// silently in one batched write so the user is not walked through a modal
// per trophy. The store call is fire-and-forget: the state transition never
// waits on it, and a failed write is logged, not retried.
type Sequencer struct {
	mu      sync.Mutex
	store   Store
	state   SequencerState
	current *Record
}

func NewSequencer(store Store) *Sequencer {
	return &Sequencer{store: store, state: StateIdle}
}

func (s *Sequencer) State() SequencerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Presenting returns the record currently being shown, nil when idle.
func (s *Sequencer) Presenting() *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Receive feeds a freshly fetched pending set. When idle and the set is
// non-empty it transitions to presenting, returning the trophy to show; all
// other pending trophies are marked shown in a single batch. While already
// presenting, new sets are ignored until Dismiss.
func (s *Sequencer) Receive(pending []*Record) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePresenting || len(pending) == 0 {
		return nil
	}

	show := pending[0]
	for _, r := range pending[1:] {
		if definitionIndex(r.Type) > definitionIndex(show.Type) {
			show = r
		}
	}

	var silent []int64
	for _, r := range pending {
		if r.ID != show.ID {
			silent = append(silent, r.ID)
		}
	}

	s.state = StatePresenting
	s.current = show

	if len(silent) > 0 {
		go s.markShown(silent)
	}

	return show
}

// Dismiss acknowledges the presented trophy and returns to idle. The modal
// closes optimistically; the write happens behind it.
func (s *Sequencer) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePresenting {
		return
	}

	id := s.current.ID
	s.state = StateIdle
	s.current = nil

	go s.markShown([]int64{id})
}

func (s *Sequencer) markShown(ids []int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.store.MarkTrophiesShown(ctx, ids); err != nil {
		log.Printf("Sequencer: failed to mark %d trophies as shown: %v", len(ids), err)
	}
}
