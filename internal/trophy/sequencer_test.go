package trophy

import (
	"context"
	"testing"
	"time"
)

type fakeStore struct {
	calls chan []int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{calls: make(chan []int64, 4)}
}

func (f *fakeStore) MarkTrophiesShown(ctx context.Context, ids []int64) error {
	f.calls <- ids
	return nil
}

func (f *fakeStore) waitForCall(t *testing.T) []int64 {
	t.Helper()
	select {
	case ids := <-f.calls:
		return ids
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a mark-shown call")
		return nil
	}
}

func (f *fakeStore) expectNoCall(t *testing.T) {
	t.Helper()
	select {
	case ids := <-f.calls:
		t.Fatalf("unexpected mark-shown call with ids %v", ids)
	case <-time.After(50 * time.Millisecond):
	}
}

func pendingRecord(id int64, typ TrophyType) *Record {
	return &Record{ID: id, Type: typ}
}

func TestSequencerPresentsHighestAndSilencesRest(t *testing.T) {
	store := newFakeStore()
	seq := NewSequencer(store)

	pending := []*Record{
		pendingRecord(1, Trophy24Hours),
		pendingRecord(2, Trophy3Days),
		pendingRecord(3, Trophy7Days),
	}

	show := seq.Receive(pending)
	if show == nil || show.Type != Trophy7Days {
		t.Fatalf("expected the 7d trophy to be presented, got %+v", show)
	}
	if seq.State() != StatePresenting {
		t.Fatalf("expected presenting state, got %s", seq.State())
	}

	silenced := store.waitForCall(t)
	got := map[int64]bool{}
	for _, id := range silenced {
		got[id] = true
	}
	if len(silenced) != 2 || !got[1] || !got[2] {
		t.Fatalf("expected ids 1 and 2 silenced in one batch, got %v", silenced)
	}

	seq.Dismiss()
	if seq.State() != StateIdle {
		t.Fatalf("expected idle after dismiss, got %s", seq.State())
	}

	acked := store.waitForCall(t)
	if len(acked) != 1 || acked[0] != 3 {
		t.Fatalf("expected only id 3 acknowledged on dismiss, got %v", acked)
	}
}

func TestSequencerSingletonWaitsForDismiss(t *testing.T) {
	store := newFakeStore()
	seq := NewSequencer(store)

	show := seq.Receive([]*Record{pendingRecord(7, Trophy24Hours)})
	if show == nil || show.ID != 7 {
		t.Fatalf("expected the lone pending trophy presented, got %+v", show)
	}

	// Nothing is acknowledged until the user dismisses.
	store.expectNoCall(t)

	seq.Dismiss()
	acked := store.waitForCall(t)
	if len(acked) != 1 || acked[0] != 7 {
		t.Fatalf("expected id 7 acknowledged, got %v", acked)
	}
}

func TestSequencerIgnoresWhilePresenting(t *testing.T) {
	store := newFakeStore()
	seq := NewSequencer(store)

	if show := seq.Receive([]*Record{pendingRecord(1, Trophy24Hours)}); show == nil {
		t.Fatal("expected first receive to present")
	}

	if show := seq.Receive([]*Record{pendingRecord(2, Trophy3Days)}); show != nil {
		t.Fatalf("expected receive while presenting to be ignored, got %+v", show)
	}

	if cur := seq.Presenting(); cur == nil || cur.ID != 1 {
		t.Fatalf("expected record 1 still presented, got %+v", cur)
	}
}

func TestSequencerEmptySet(t *testing.T) {
	store := newFakeStore()
	seq := NewSequencer(store)

	if show := seq.Receive(nil); show != nil {
		t.Fatalf("expected nil for an empty pending set, got %+v", show)
	}
	if seq.State() != StateIdle {
		t.Fatalf("expected idle, got %s", seq.State())
	}

	// Dismiss while idle is a no-op.
	seq.Dismiss()
	store.expectNoCall(t)
}
