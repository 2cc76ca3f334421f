package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

const collectionCatalogEvents = "catalog_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{col: db.Collection(collectionCatalogEvents)}
}

// InsertEntry appends one entry to the catalog_events audit collection.
func (r *AuditRepository) InsertEntry(ctx context.Context, entry *domain.AuditEntry) error {
	doc := bson.M{
		"action":      string(entry.Action),
		"entity_id":   entry.EntityID,
		"actor_id":    entry.ActorID,
		"timestamp":   entry.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
