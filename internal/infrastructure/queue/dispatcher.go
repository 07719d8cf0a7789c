package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/batarcade/arcade-api/internal/api/metrics"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes accepted score submissions to a fixed set of workers
// using consistent hashing on the (user, game) pair, guaranteeing per-pair
// ordering of the activity trail.
type Dispatcher struct {
	workers []chan ports.ScoreActivityInput
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ScoreActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ScoreActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its (user, game)
// pair. The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.ScoreActivityInput) {
	i := d.shardIndex(in.UserID, in.GameID)
	d.workers[i] <- in
	metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a (user, game) pair deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID int64, gameID string) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%d:%s", userID, gameID)
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ScoreActivityInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, in); err != nil {
				d.log.Error().Err(err).
					Int64("user_id", in.UserID).
					Str("game_id", in.GameID).
					Int("worker_id", id).
					Msg("activity processing failed")
			}
		}
	}
}
