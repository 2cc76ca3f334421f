package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

const collectionBadges = "badges"

type BadgeRepository struct {
	col   *mongo.Collection
	users *mongo.Collection
}

func NewBadgeRepository(db *mongo.Database) *BadgeRepository {
	return &BadgeRepository{
		col:   db.Collection(collectionBadges),
		users: db.Collection(collectionUsers),
	}
}

// Insert persists a new badge document. The created_by reference is
// verified against the users collection first; Mongo has no foreign keys,
// so the write-time invariant lives here.
func (r *BadgeRepository) Insert(ctx context.Context, b *domain.Badge) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.users.CountDocuments(ctx, creatorFilter(b.CreatedBy))
	if err != nil {
		return fmt.Errorf("verify creator: %w", err)
	}
	if n == 0 {
		return domain.ErrUnknownCreator
	}

	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert badge: %w", err)
	}
	return nil
}

// List returns one page of badges matching filter and the total match
// count computed before pagination. The sort always carries an _id
// tie-break so identical queries page deterministically.
func (r *BadgeRepository) List(ctx context.Context, f ports.ListBadgesFilter) ([]*domain.Badge, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = string(f.Category)
	}
	if f.Level != "" {
		filter["level"] = string(f.Level)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		filter["status"] = bson.M{"$in": statuses}
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count badges: %w", err)
	}

	dir := -1
	if f.SortAsc {
		dir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: f.SortField, Value: dir}, {Key: "_id", Value: 1}}).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find badges: %w", err)
	}
	defer cursor.Close(ctx)

	var badges []*domain.Badge
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, 0, fmt.Errorf("decode badges: %w", err)
	}
	return badges, total, nil
}

// creatorFilter matches a user document by hex ObjectID or plain string ID,
// so seeded fixtures and driver-generated IDs both resolve.
func creatorFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

// EnsureIndexes creates the indexes backing the list query paths.
func (r *BadgeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "level", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("ensure badge indexes: %w", err)
	}
	return nil
}
