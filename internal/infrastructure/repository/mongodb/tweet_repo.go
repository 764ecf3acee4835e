package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TweetRepository struct {
	collection *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{collection: db.Collection(TweetsCollection)}
}

var _ contract.ITweetRepository = (*TweetRepository)(nil)

func (r *TweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	if _, err := r.collection.InsertOne(ctx, tweet); err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error) {
	var tweet entity.Tweet
	err := r.collection.FindOne(ctx, bson.M{"_id": tweetID}).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound("tweet", tweetID)
		}
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}
	return &tweet, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string, page contract.Pagination) ([]entity.Tweet, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, pageOptions(page, newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to get tweets: %w", err)
	}
	defer cursor.Close(ctx)

	tweets := []entity.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweets: %w", err)
	}
	return tweets, nil
}

func (r *TweetRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count tweets: %w", err)
	}
	return count, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, tweetID, content string) (*entity.Tweet, error) {
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var tweet entity.Tweet
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": tweetID}, update, opts).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound("tweet", tweetID)
		}
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}
	return &tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, tweetID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": tweetID})
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound("tweet", tweetID)
	}
	return nil
}
