package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepairRepository keeps one mark per target whose counter needs a recount.
type CounterRepairRepository struct {
	collection *mongo.Collection
}

func NewCounterRepairRepository(db *mongo.Database) *CounterRepairRepository {
	return &CounterRepairRepository{collection: db.Collection(CounterRepairsCollection)}
}

var _ contract.ICounterRepairRepository = (*CounterRepairRepository)(nil)

func (r *CounterRepairRepository) Mark(ctx context.Context, kind entity.TargetKind, targetID string) error {
	filter := bson.M{"_id": entity.CounterRepairID(kind, targetID)}
	update := bson.M{
		"$set": bson.M{"target_kind": kind, "target_id": targetID, "marked_at": time.Now().UTC()},
		"$inc": bson.M{"version": 1},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		// two upserts raced on the same _id; the second one now finds the document
		_, err = r.collection.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to mark %s %s for recount: %w", kind, targetID, err)
	}
	return nil
}

func (r *CounterRepairRepository) ListPending(ctx context.Context, limit int64) ([]entity.CounterRepair, error) {
	opts := options.Find().SetSort(bson.D{{Key: "marked_at", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list counter repairs: %w", err)
	}
	defer cursor.Close(ctx)

	repairs := []entity.CounterRepair{}
	if err := cursor.All(ctx, &repairs); err != nil {
		return nil, fmt.Errorf("failed to decode counter repairs: %w", err)
	}
	return repairs, nil
}

func (r *CounterRepairRepository) Clear(ctx context.Context, repair entity.CounterRepair) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": repair.ID, "version": repair.Version})
	if err != nil {
		return false, fmt.Errorf("failed to clear counter repair %s: %w", repair.ID, err)
	}
	return res.DeletedCount == 1, nil
}
