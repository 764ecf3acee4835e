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

var recentlyWatched = bson.D{{Key: "watched_at", Value: -1}, {Key: "_id", Value: -1}}

type WatchHistoryRepository struct {
	collection *mongo.Collection
}

func NewWatchHistoryRepository(db *mongo.Database) *WatchHistoryRepository {
	return &WatchHistoryRepository{collection: db.Collection(WatchHistoryCollection)}
}

var _ contract.IWatchHistoryRepository = (*WatchHistoryRepository)(nil)

func (r *WatchHistoryRepository) Record(ctx context.Context, userID, videoID string) error {
	filter := bson.M{"_id": entity.WatchEntryID(userID, videoID)}
	update := bson.M{"$set": bson.M{"user_id": userID, "video_id": videoID, "watched_at": time.Now().UTC()}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		_, err = r.collection.UpdateOne(ctx, filter, update)
	}
	if err != nil {
		return fmt.Errorf("failed to record watch history: %w", err)
	}
	return nil
}

func (r *WatchHistoryRepository) ListByUser(ctx context.Context, userID string, page contract.Pagination) ([]entity.WatchEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, pageOptions(page, recentlyWatched))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve watch history: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []entity.WatchEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode watch history: %w", err)
	}
	return entries, nil
}

func (r *WatchHistoryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count watch history: %w", err)
	}
	return count, nil
}

func (r *WatchHistoryRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"video_id": videoID}); err != nil {
		return fmt.Errorf("failed to delete watch history: %w", err)
	}
	return nil
}
