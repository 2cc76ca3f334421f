package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingAuditRepo) InsertEntry(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *recordingAuditRepo) byEntity(entityID string) []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditEntry
	for _, e := range r.entries {
		if e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out
}

func (r *recordingAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
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
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(domain.AuditEntry{
			Action:    domain.AuditBadgeCreated,
			EntityID:  "bdg_00000001",
			ActorID:   "admin1",
			Timestamp: time.Now().UTC(),
		})
	}

	waitFor(t, func() bool { return repo.count() == 10 })
}

func TestDispatcher_PerEntityOrdering(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	const perEntity = 20
	for i := 0; i < perEntity; i++ {
		for _, entity := range []string{"bdg_a", "bdg_b", "bdg_c"} {
			d.Record(domain.AuditEntry{
				Action:    domain.AuditBadgeCreated,
				EntityID:  entity,
				Timestamp: base.Add(time.Duration(i) * time.Second),
			})
		}
	}

	waitFor(t, func() bool { return repo.count() == 3*perEntity })

	for _, entity := range []string{"bdg_a", "bdg_b", "bdg_c"} {
		entries := repo.byEntity(entity)
		if len(entries) != perEntity {
			t.Fatalf("%s: expected %d entries, got %d", entity, perEntity, len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
				t.Fatalf("%s: entries out of order at position %d", entity, i)
			}
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StableSharding(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditRepo{}, zerolog.Nop())
	for _, id := range []string{"bdg_00000001", "usr_0001", ""} {
		first := d.shardIndex(id)
		for i := 0; i < 5; i++ {
			if d.shardIndex(id) != first {
				t.Fatalf("shard for %q not stable", id)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shard for %q out of range: %d", id, first)
		}
	}
}
