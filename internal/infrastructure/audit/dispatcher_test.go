package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

type stubEventStore struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *stubEventStore) Insert(_ context.Context, event *domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

func (s *stubEventStore) ListRecent(_ context.Context, _ int64) ([]domain.AuthEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuthEvent(nil), s.events...), nil
}

func (s *stubEventStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcherPersistsRecordedEvents(t *testing.T) {
	store := &stubEventStore{}
	d := NewDispatcher(2, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Record(domain.AuthEvent{
			Kind:      domain.AuthEventLoginFailure,
			Email:     "someone@example.com",
			Timestamp: time.Now(),
		})
	}

	deadline := time.Now().Add(2 * time.Second)
	for store.count() < 5 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 5 events persisted, got %d", store.count())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDispatcherShardIsStablePerPrincipal(t *testing.T) {
	d := NewDispatcher(4, &stubEventStore{}, zerolog.Nop())

	byAccount := domain.AuthEvent{Kind: domain.AuthEventForbidden, AccountID: "64b0c1d2e3f4a5b6c7d8e9f0"}
	if a, b := d.shardIndex(byAccount), d.shardIndex(byAccount); a != b {
		t.Fatalf("shard index not stable: %d vs %d", a, b)
	}

	byEmail := domain.AuthEvent{Kind: domain.AuthEventLoginFailure, Email: "user@example.com"}
	if a, b := d.shardIndex(byEmail), d.shardIndex(byEmail); a != b {
		t.Fatalf("email shard index not stable: %d vs %d", a, b)
	}
}

func TestDispatcherRecordDoesNotBlockWhenWorkersStopped(t *testing.T) {
	d := NewDispatcher(1, &stubEventStore{}, zerolog.Nop())
	// No Start: the single worker channel will fill up and further Records
	// must be dropped rather than block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(domain.AuthEvent{Kind: domain.AuthEventLoginFailure, Email: "a@b.c"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full worker queue")
	}
}
