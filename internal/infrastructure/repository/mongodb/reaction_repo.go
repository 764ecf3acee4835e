package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReactionRepository stores likes and subscriptions in one collection with a
// unique index on (actor_id, target_id, target_kind).
type ReactionRepository struct {
	collection *mongo.Collection
}

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection(ReactionsCollection),
	}
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

func keyFilter(key entity.ReactionKey) bson.M {
	return bson.M{
		"actor_id":    key.ActorID,
		"target_id":   key.TargetID,
		"target_kind": key.TargetKind,
	}
}

// Insert stores the reaction; a duplicate key means it already exists.
func (r *ReactionRepository) Insert(ctx context.Context, reaction *entity.Reaction) (bool, error) {
	_, err := r.collection.InsertOne(ctx, reaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert reaction: %w", err)
	}
	return true, nil
}

// DeleteByKey hard deletes the reaction and reports whether one was removed.
func (r *ReactionRepository) DeleteByKey(ctx context.Context, key entity.ReactionKey) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return false, fmt.Errorf("failed to delete reaction: %w", err)
	}
	return res.DeletedCount == 1, nil
}

func (r *ReactionRepository) Exists(ctx context.Context, key entity.ReactionKey) (bool, error) {
	err := r.collection.FindOne(ctx, keyFilter(key), options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return true, nil
}

func (r *ReactionRepository) CountByTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"target_id": targetID, "target_kind": kind})
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}

func (r *ReactionRepository) CountByActor(ctx context.Context, actorID string, kind entity.TargetKind) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"actor_id": actorID, "target_kind": kind})
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}

func (r *ReactionRepository) ListByActor(ctx context.Context, actorID string, kind entity.TargetKind, page contract.Pagination) ([]entity.Reaction, error) {
	return r.find(ctx, bson.M{"actor_id": actorID, "target_kind": kind}, page)
}

func (r *ReactionRepository) ListByTarget(ctx context.Context, kind entity.TargetKind, targetID string, page contract.Pagination) ([]entity.Reaction, error) {
	return r.find(ctx, bson.M{"target_id": targetID, "target_kind": kind}, page)
}

func (r *ReactionRepository) find(ctx context.Context, filter bson.M, page contract.Pagination) ([]entity.Reaction, error) {
	cursor, err := r.collection.Find(ctx, filter, pageOptions(page, newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reactions: %w", err)
	}
	defer cursor.Close(ctx)

	reactions := []entity.Reaction{}
	if err := cursor.All(ctx, &reactions); err != nil {
		return nil, fmt.Errorf("failed to decode reactions: %w", err)
	}
	return reactions, nil
}

// DeleteByTarget removes every reaction pointing at any of targetIDs.
func (r *ReactionRepository) DeleteByTarget(ctx context.Context, kind entity.TargetKind, targetIDs ...string) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"target_kind": kind, "target_id": bson.M{"$in": targetIDs}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reactions: %w", err)
	}
	return res.DeletedCount, nil
}
