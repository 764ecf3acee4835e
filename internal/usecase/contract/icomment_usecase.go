package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

type ICommentUseCase interface {
	AddComment(ctx context.Context, videoID, actorID, content string) (*entity.Comment, error)
	ListVideoComments(ctx context.Context, videoID string, page contract.Pagination) (*Page[entity.Comment], error)
	UpdateComment(ctx context.Context, commentID, actorID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID, actorID string) error
}

type ITweetUseCase interface {
	CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error)
	ListUserTweets(ctx context.Context, username string, page contract.Pagination) (*Page[entity.Tweet], error)
	UpdateTweet(ctx context.Context, tweetID, actorID, content string) (*entity.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, actorID string) error
}

type IPlaylistUseCase interface {
	CreatePlaylist(ctx context.Context, actorID, name, description string) (*entity.Playlist, error)
	ListUserPlaylists(ctx context.Context, userID string, page contract.Pagination) (*Page[entity.Playlist], error)
	GetPlaylist(ctx context.Context, playlistID string) (*entity.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID, actorID string, name, description *string) (*entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, actorID string) error
}
