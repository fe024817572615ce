package audit

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/api/metrics"
	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher records auth events asynchronously through a fixed set of
// workers, sharded by account (falling back to email for pre-identity
// events) so events for one principal are persisted in order. Recording is
// best-effort: when a worker channel is full the event is dropped and
// logged, never blocking the request that produced it.
type Dispatcher struct {
	workers []chan domain.AuthEvent
	store   ports.AuthEventRepository
	log     zerolog.Logger
}

var _ ports.AuthEventRecorder = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.AuthEventRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record hands an event to the worker responsible for its principal.
// Non-blocking: if the worker's buffer is full the event is dropped.
func (d *Dispatcher) Record(event domain.AuthEvent) {
	i := d.shardIndex(event)
	select {
	case d.workers[i] <- event:
		metrics.AuthEventQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		d.log.Warn().
			Str("kind", event.Kind).
			Int("worker_id", i).
			Msg("auth event dropped, worker queue full")
	}
}

// shardIndex maps an event deterministically to a worker index.
func (d *Dispatcher) shardIndex(event domain.AuthEvent) int {
	key := event.AccountID
	if key == "" {
		key = event.Email
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuthEventQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.store.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("kind", event.Kind).
					Int("worker_id", id).
					Msg("auth event insert failed")
			}
		}
	}
}
