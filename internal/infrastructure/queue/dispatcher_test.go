package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.OrderEventInput
}

func (s *recordingService) Record(_ context.Context, event ports.OrderEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingService) snapshot() []ports.OrderEventInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.OrderEventInput, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_RecordsAllEvents(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(3, svc, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 20; i++ {
		d.Enqueue(ports.OrderEventInput{
			OrderID: "order-" + string(rune('a'+i%5)),
			Status:  domain.OrderPending,
		})
	}
	d.Stop()

	if got := len(svc.snapshot()); got != 20 {
		t.Fatalf("expected 20 recorded events, got %d", got)
	}
}

func TestDispatcher_SameOrderStaysOrdered(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(context.Background())

	statuses := []domain.OrderStatus{
		domain.OrderPending,
		domain.OrderShipped,
		domain.OrderDelivered,
	}
	for _, status := range statuses {
		d.Enqueue(ports.OrderEventInput{OrderID: "order-1", Status: status})
	}
	d.Stop()

	var got []domain.OrderStatus
	for _, e := range svc.snapshot() {
		if e.OrderID == "order-1" {
			got = append(got, e.Status)
		}
	}
	if len(got) != len(statuses) {
		t.Fatalf("expected %d events, got %d", len(statuses), len(got))
	}
	for i := range statuses {
		if got[i] != statuses[i] {
			t.Fatalf("event %d out of order: got %s, want %s", i, got[i], statuses[i])
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(1, svc, zerolog.Nop())

	// Enqueue before any worker runs: Stop must still drain the channel.
	for i := 0; i < 10; i++ {
		d.Enqueue(ports.OrderEventInput{OrderID: "order-x", Status: domain.OrderPending})
	}
	d.Start(context.Background())

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Stop did not return")
	}

	if got := len(svc.snapshot()); got != 10 {
		t.Fatalf("expected 10 recorded events, got %d", got)
	}
}
