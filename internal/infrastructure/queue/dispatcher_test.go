package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/batarcade/arcade-api/internal/core/ports"
)

type recordingActivityService struct {
	mu        sync.Mutex
	processed []ports.ScoreActivityInput
	done      chan struct{}
	want      int
}

func newRecordingActivityService(want int) *recordingActivityService {
	return &recordingActivityService{done: make(chan struct{}), want: want}
}

func (s *recordingActivityService) Process(_ context.Context, in ports.ScoreActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, in)
	if len(s.processed) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := newRecordingActivityService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, score := range []int64{500, 700, 900} {
		d.Enqueue(ports.ScoreActivityInput{UserID: 1, GameID: "asdd", Score: score, Timestamp: time.Now().UTC()})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events to be processed")
	}

	// Same (user, game) pair always lands on the same worker, so order holds.
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, want := range []int64{500, 700, 900} {
		if svc.processed[i].Score != want {
			t.Fatalf("event %d: expected score %d, got %d", i, want, svc.processed[i].Score)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingActivityService(0), zerolog.Nop())

	a := d.shardIndex(1, "asdd")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(1, "asdd"); got != a {
			t.Fatalf("shard index not deterministic: %d vs %d", a, got)
		}
	}
	if a < 0 || a >= 4 {
		t.Fatalf("shard index out of range: %d", a)
	}
}
