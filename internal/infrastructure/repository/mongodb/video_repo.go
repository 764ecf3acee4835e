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

// VideoRepository represents the MongoDB implementation of IVideoRepository.
type VideoRepository struct {
	collection *mongo.Collection
}

// NewVideoRepository creates and returns a new VideoRepository instance.
func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{
		collection: db.Collection(VideosCollection),
	}
}

var _ contract.IVideoRepository = (*VideoRepository)(nil)

// Create inserts a new video document into the database.
func (r *VideoRepository) Create(ctx context.Context, video *entity.Video) error {
	if _, err := r.collection.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a single video by its unique ID.
func (r *VideoRepository) GetByID(ctx context.Context, videoID string) (*entity.Video, error) {
	var video entity.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": videoID}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound("video", videoID)
		}
		return nil, fmt.Errorf("failed to retrieve video: %w", err)
	}
	return &video, nil
}

func (r *VideoRepository) GetByIDs(ctx context.Context, videoIDs []string) ([]entity.Video, error) {
	videos := []entity.Video{}
	if len(videoIDs) == 0 {
		return videos, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": videoIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve videos: %w", err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

func buildVideoFilter(f contract.VideoFilter) bson.M {
	filter := bson.M{}
	if f.OwnerID != nil {
		filter["owner_id"] = *f.OwnerID
	}
	if f.PublishedOnly {
		filter["is_published"] = true
	}
	return filter
}

func buildVideoSort(f contract.VideoFilter) bson.D {
	order := -1
	if f.SortOrder == "asc" {
		order = 1
	}
	key := f.SortBy
	if key == "" {
		key = "created_at"
	}
	return bson.D{{Key: key, Value: order}, {Key: "_id", Value: order}}
}

// List retrieves a page of videos with filtering and sorting options.
func (r *VideoRepository) List(ctx context.Context, f contract.VideoFilter) ([]entity.Video, error) {
	cursor, err := r.collection.Find(ctx, buildVideoFilter(f), pageOptions(f.Pagination, buildVideoSort(f)))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve videos: %w", err)
	}
	defer cursor.Close(ctx)

	videos := []entity.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

func (r *VideoRepository) Count(ctx context.Context, f contract.VideoFilter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, buildVideoFilter(f))
	if err != nil {
		return 0, fmt.Errorf("failed to get total video count: %w", err)
	}
	return count, nil
}

// Update sets the provided fields and returns the updated video.
func (r *VideoRepository) Update(ctx context.Context, videoID string, update entity.VideoUpdate) (*entity.Video, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ThumbnailURL != nil {
		set["thumbnail_url"] = *update.ThumbnailURL
	}
	if update.ThumbnailID != nil {
		set["thumbnail_asset_id"] = *update.ThumbnailID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video entity.Video
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": videoID}, bson.M{"$set": set}, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound("video", videoID)
		}
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return &video, nil
}

func (r *VideoRepository) SetPublished(ctx context.Context, videoID string, published bool) error {
	update := bson.M{"$set": bson.M{"is_published": published, "updated_at": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": videoID}, update)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return notFound("video", videoID)
	}
	return nil
}

// IncrementViews increments the view count for a specific video.
func (r *VideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	if res.MatchedCount == 0 {
		return notFound("video", videoID)
	}
	return nil
}

// Delete removes the video document.
func (r *VideoRepository) Delete(ctx context.Context, videoID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": videoID})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound("video", videoID)
	}
	return nil
}
