package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// SortOrder defines sorting direction for list queries
type SortOrder string

const (
	SortOrderASC  SortOrder = "asc"
	SortOrderDESC SortOrder = "desc"
)

type PublishVideoInput struct {
	Title       string
	Description string
	Video       *contract.MediaFile
	Thumbnail   *contract.MediaFile
}

type UpdateVideoInput struct {
	Title       *string
	Description *string
	Thumbnail   *contract.MediaFile
}

type VideoQuery struct {
	OwnerID   string
	SortBy    string
	SortOrder SortOrder
	contract.Pagination
}

type IVideoUseCase interface {
	Publish(ctx context.Context, ownerID string, in PublishVideoInput) (*entity.Video, error)
	// GetVideo counts a view; viewerID is empty for anonymous viewers.
	GetVideo(ctx context.Context, videoID, viewerID string) (*entity.Video, error)
	ListVideos(ctx context.Context, query VideoQuery) (*Page[entity.Video], error)
	UpdateVideo(ctx context.Context, videoID, actorID string, in UpdateVideoInput) (*entity.Video, error)
	DeleteVideo(ctx context.Context, videoID, actorID string) error
	TogglePublish(ctx context.Context, videoID, actorID string) (*entity.Video, error)
	// WatchHistory pages the videos userID opened, most recent first.
	WatchHistory(ctx context.Context, userID string, page contract.Pagination) (*Page[entity.Video], error)
	// LikedVideos pages the videos userID liked, most recent like first.
	LikedVideos(ctx context.Context, userID string, page contract.Pagination) (*Page[entity.Video], error)
}

type IDashboardUseCase interface {
	ChannelVideos(ctx context.Context, channelID string, page contract.Pagination) (*Page[entity.Video], error)
}
