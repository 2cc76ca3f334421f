package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/skillforge/catalog-api/internal/api/metrics"
	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using
// consistent hashing on the entity ID, guaranteeing per-entity write
// ordering in the audit trail.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit entry on the worker responsible for its entity.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(entry domain.AuditEntry) {
	d.workers[d.shardIndex(entry.EntityID)] <- entry
}

// shardIndex maps an entity ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.InsertEntry(ctx, &entry); err != nil {
				metrics.AuditEntriesTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("entity_id", entry.EntityID).
					Str("action", string(entry.Action)).
					Int("worker_id", id).
					Msg("audit write failed")
				continue
			}
			metrics.AuditEntriesTotal.WithLabelValues("ok").Inc()
		}
	}
}
