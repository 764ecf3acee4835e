package contract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

type IPlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string, page Pagination) ([]entity.Playlist, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	Update(ctx context.Context, playlistID string, name, description *string) (*entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error)
	// RemoveVideoEverywhere drops videoID from every playlist that holds it.
	RemoveVideoEverywhere(ctx context.Context, videoID string) error
	Delete(ctx context.Context, playlistID string) error
}
