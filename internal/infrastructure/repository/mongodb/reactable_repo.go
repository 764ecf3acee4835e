package mongodb

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReactableRepository maintains the denormalized reaction counters on the
// collections a reaction can point at.
type ReactableRepository struct {
	collections map[entity.TargetKind]*mongo.Collection
}

func NewReactableRepository(db *mongo.Database) *ReactableRepository {
	return &ReactableRepository{
		collections: map[entity.TargetKind]*mongo.Collection{
			entity.TargetKindVideo:   db.Collection(VideosCollection),
			entity.TargetKindComment: db.Collection(CommentsCollection),
			entity.TargetKindTweet:   db.Collection(TweetsCollection),
			entity.TargetKindChannel: db.Collection(UsersCollection),
		},
	}
}

var _ contract.IReactableRepository = (*ReactableRepository)(nil)

func (r *ReactableRepository) collection(kind entity.TargetKind) (*mongo.Collection, error) {
	c, ok := r.collections[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidArgument, kind)
	}
	return c, nil
}

func (r *ReactableRepository) Exists(ctx context.Context, kind entity.TargetKind, targetID string) (bool, error) {
	c, err := r.collection(kind)
	if err != nil {
		return false, err
	}
	n, err := c.CountDocuments(ctx, bson.M{"_id": targetID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", kind, err)
	}
	return n > 0, nil
}

// IncrementCounter applies delta with $inc. A decrement only matches while the
// counter can absorb it, so a counter at zero stays at zero.
func (r *ReactableRepository) IncrementCounter(ctx context.Context, kind entity.TargetKind, targetID string, delta int64) error {
	c, err := r.collection(kind)
	if err != nil {
		return err
	}
	field := kind.CounterField()
	filter := bson.M{"_id": targetID}
	if delta < 0 {
		filter[field] = bson.M{"$gte": -delta}
	}
	if _, err := c.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: delta}}); err != nil {
		return fmt.Errorf("failed to update %s %s: %w", kind, field, err)
	}
	return nil
}

func (r *ReactableRepository) SetCounter(ctx context.Context, kind entity.TargetKind, targetID string, value int64) error {
	c, err := r.collection(kind)
	if err != nil {
		return err
	}
	field := kind.CounterField()
	res, err := c.UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to set %s %s: %w", kind, field, err)
	}
	if res.MatchedCount == 0 {
		return notFound(string(kind), targetID)
	}
	return nil
}
