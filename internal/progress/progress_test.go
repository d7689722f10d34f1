package progress

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryTracker_RecordsInOrder(t *testing.T) {
	tr := NewMemoryTracker()
	tr.Publish(Event{Stage: "generation", QuestionID: "a", Status: StatusStarted, At: time.Now()})
	tr.Publish(Event{Stage: "generation", QuestionID: "a", Status: StatusCompleted, At: time.Now()})
	tr.Publish(Event{Stage: "generation", QuestionID: "b", Status: StatusFailed, Detail: "bad options", At: time.Now()})

	events := tr.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Status != StatusStarted || events[1].Status != StatusCompleted {
		t.Fatal("events out of order")
	}
	if tr.Count(StatusFailed) != 1 {
		t.Fatalf("expected 1 failed event, got %d", tr.Count(StatusFailed))
	}
}

func TestMemoryTracker_ConcurrentPublish(t *testing.T) {
	tr := NewMemoryTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Publish(Event{Stage: "generation", Status: StatusCompleted})
		}()
	}
	wg.Wait()

	if got := len(tr.Events()); got != 50 {
		t.Fatalf("expected 50 events, got %d", got)
	}
}

func TestMulti_FansOut(t *testing.T) {
	a := NewMemoryTracker()
	b := NewMemoryTracker()
	m := Multi(a, b)

	m.Publish(Event{Stage: "planning", Status: StatusStarted})

	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Fatal("expected event delivered to both trackers")
	}
}

func TestNop_Discards(t *testing.T) {
	// Must not panic.
	Nop().Publish(Event{Stage: "generation", Status: StatusFailed})
}

func TestLogTracker_NilLogger(t *testing.T) {
	tr := NewLogTracker(nil)
	tr.Publish(Event{Stage: "generation", Status: StatusCompleted})
	tr.Publish(Event{Stage: "generation", Status: StatusFailed, Detail: "x"})
}
