package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// reaction index is what makes a reaction toggle race-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		ReactionsCollection: {
			{
				Keys:    bson.D{{Key: "actor_id", Value: 1}, {Key: "target_id", Value: 1}, {Key: "target_kind", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_reaction"),
			},
			{Keys: bson.D{{Key: "target_kind", Value: 1}, {Key: "target_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "target_kind", Value: 1}, {Key: "actor_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		VideosCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "video_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		TweetsCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		PlaylistsCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "video_ids", Value: 1}}},
		},
		PublicationsCollection: {
			{Keys: bson.D{{Key: "state", Value: 1}, {Key: "updated_at", Value: 1}}},
		},
		CounterRepairsCollection: {
			{Keys: bson.D{{Key: "marked_at", Value: 1}}},
		},
		WatchHistoryCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "watched_at", Value: -1}}},
			{Keys: bson.D{{Key: "video_id", Value: 1}}},
		},
	}
	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}
