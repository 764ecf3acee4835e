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

type PlaylistRepository struct {
	collection *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{collection: db.Collection(PlaylistsCollection)}
}

var _ contract.IPlaylistRepository = (*PlaylistRepository)(nil)

func (r *PlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	if _, err := r.collection.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": playlistID}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound("playlist", playlistID)
		}
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string, page contract.Pagination) ([]entity.Playlist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, pageOptions(page, newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to get playlists: %w", err)
	}
	defer cursor.Close(ctx)

	playlists := []entity.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}

func (r *PlaylistRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count playlists: %w", err)
	}
	return count, nil
}

func (r *PlaylistRepository) modify(ctx context.Context, playlistID string, update bson.M) (*entity.Playlist, error) {
	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
		update["$set"] = set
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist entity.Playlist
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, update, opts).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound("playlist", playlistID)
		}
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, playlistID string, name, description *string) (*entity.Playlist, error) {
	set := bson.M{}
	if name != nil {
		set["name"] = *name
	}
	if description != nil {
		set["description"] = *description
	}
	return r.modify(ctx, playlistID, bson.M{"$set": set})
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	return r.modify(ctx, playlistID, bson.M{"$addToSet": bson.M{"video_ids": videoID}})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	return r.modify(ctx, playlistID, bson.M{"$pull": bson.M{"video_ids": videoID}})
}

func (r *PlaylistRepository) RemoveVideoEverywhere(ctx context.Context, videoID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"video_ids": videoID},
		bson.M{"$pull": bson.M{"video_ids": videoID}, "$set": bson.M{"updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlists: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, playlistID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": playlistID})
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound("playlist", playlistID)
	}
	return nil
}
