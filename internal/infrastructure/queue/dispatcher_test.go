package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *recordingAuditService) Record(_ context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingAuditService) snapshot() []domain.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuthEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{Username: "alice", Action: domain.AuditRegister, At: time.Now()})
	d.Enqueue(domain.AuthEvent{Username: "bob", Action: domain.AuditLoginFailure, At: time.Now()})

	waitFor(t, func() bool { return len(svc.snapshot()) == 2 })
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	sequence := []domain.AuditAction{
		domain.AuditRegister,
		domain.AuditLoginFailure,
		domain.AuditLoginSuccess,
		domain.AuditUserUpdated,
	}
	for _, action := range sequence {
		d.Enqueue(domain.AuthEvent{Username: "alice", Action: action, At: time.Now()})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == len(sequence) })

	got := svc.snapshot()
	for i, action := range sequence {
		if got[i].Action != action {
			t.Fatalf("position %d: expected %s, got %s", i, action, got[i].Action)
		}
	}
}

func TestDispatcher_SameUserSameShard(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditService{}, zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
