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

// PublicationRepository persists the video publication log.
type PublicationRepository struct {
	collection *mongo.Collection
}

func NewPublicationRepository(db *mongo.Database) *PublicationRepository {
	return &PublicationRepository{collection: db.Collection(PublicationsCollection)}
}

var _ contract.IPublicationRepository = (*PublicationRepository)(nil)

func (r *PublicationRepository) Create(ctx context.Context, publication *entity.Publication) error {
	if _, err := r.collection.InsertOne(ctx, publication); err != nil {
		return fmt.Errorf("failed to record publication: %w", err)
	}
	return nil
}

func (r *PublicationRepository) Update(ctx context.Context, publicationID string, update contract.PublicationUpdate) error {
	set := bson.M{"state": update.State, "updated_at": time.Now().UTC()}
	if update.VideoAssetID != "" {
		set["video_asset_id"] = update.VideoAssetID
	}
	if update.ThumbnailAssetID != "" {
		set["thumbnail_asset_id"] = update.ThumbnailAssetID
	}
	if update.VideoID != "" {
		set["video_id"] = update.VideoID
	}
	if update.LastError != "" {
		set["last_error"] = update.LastError
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": publicationID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update publication: %w", err)
	}
	if res.MatchedCount == 0 {
		return notFound("publication", publicationID)
	}
	return nil
}

func (r *PublicationRepository) ListStale(ctx context.Context, cutoff time.Time, limit int64) ([]entity.Publication, error) {
	filter := bson.M{
		"state":      bson.M{"$nin": []entity.PublicationState{entity.PublicationCommitted, entity.PublicationCompensated}},
		"updated_at": bson.M{"$lt": cutoff},
	}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale publications: %w", err)
	}
	defer cursor.Close(ctx)

	publications := []entity.Publication{}
	if err := cursor.All(ctx, &publications); err != nil {
		return nil, fmt.Errorf("failed to decode publications: %w", err)
	}
	return publications, nil
}
