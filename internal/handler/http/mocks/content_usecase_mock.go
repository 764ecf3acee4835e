package mocks

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of ICommentUseCase
type MockCommentUsecase struct {
	ShouldFailAdd    bool
	ShouldFailUpdate bool

	MockComment entity.Comment
	MockPage    usecasecontract.Page[entity.Comment]

	LastVideoID string
	LastContent string
	LastPage    contract.Pagination
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{
		MockComment: entity.Comment{ID: "mock-comment-id", VideoID: "mock-video-id", OwnerID: "mock-user-id", Content: "nice"},
		MockPage:    usecasecontract.Page[entity.Comment]{Items: []entity.Comment{}, Page: 1, Limit: 10},
	}
}

func (m *MockCommentUsecase) AddComment(ctx context.Context, videoID, actorID, content string) (*entity.Comment, error) {
	m.LastVideoID, m.LastContent = videoID, content
	if m.ShouldFailAdd {
		return nil, fmt.Errorf("%w: video %s not found", domain.ErrNotFound, videoID)
	}
	comment := m.MockComment
	comment.Content = content
	return &comment, nil
}

func (m *MockCommentUsecase) ListVideoComments(ctx context.Context, videoID string, page contract.Pagination) (*usecasecontract.Page[entity.Comment], error) {
	m.LastVideoID, m.LastPage = videoID, page
	return &m.MockPage, nil
}

func (m *MockCommentUsecase) UpdateComment(ctx context.Context, commentID, actorID, content string) (*entity.Comment, error) {
	m.LastContent = content
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: not the owner", domain.ErrForbidden)
	}
	comment := m.MockComment
	comment.Content = content
	return &comment, nil
}

func (m *MockCommentUsecase) DeleteComment(ctx context.Context, commentID, actorID string) error {
	return nil
}

// MockTweetUsecase is a mock implementation of ITweetUseCase
type MockTweetUsecase struct {
	ShouldFailCreate bool

	MockTweet entity.Tweet
	MockPage  usecasecontract.Page[entity.Tweet]

	LastUsername string
	LastContent  string
}

var _ usecasecontract.ITweetUseCase = (*MockTweetUsecase)(nil)

func NewMockTweetUsecase() *MockTweetUsecase {
	return &MockTweetUsecase{
		MockTweet: entity.Tweet{ID: "mock-tweet-id", OwnerID: "mock-user-id", Content: "hello"},
		MockPage:  usecasecontract.Page[entity.Tweet]{Items: []entity.Tweet{}, Page: 1, Limit: 10},
	}
}

func (m *MockTweetUsecase) CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	m.LastContent = content
	if m.ShouldFailCreate {
		return nil, fmt.Errorf("%w: content is too long", domain.ErrInvalidArgument)
	}
	tweet := m.MockTweet
	tweet.Content = content
	return &tweet, nil
}

func (m *MockTweetUsecase) ListUserTweets(ctx context.Context, username string, page contract.Pagination) (*usecasecontract.Page[entity.Tweet], error) {
	m.LastUsername = username
	return &m.MockPage, nil
}

func (m *MockTweetUsecase) UpdateTweet(ctx context.Context, tweetID, actorID, content string) (*entity.Tweet, error) {
	m.LastContent = content
	return &m.MockTweet, nil
}

func (m *MockTweetUsecase) DeleteTweet(ctx context.Context, tweetID, actorID string) error {
	return nil
}

// MockPlaylistUsecase is a mock implementation of IPlaylistUseCase
type MockPlaylistUsecase struct {
	ShouldFailAddVideo bool

	MockPlaylist entity.Playlist
	MockPage     usecasecontract.Page[entity.Playlist]

	LastUserID      string
	LastPlaylistID  string
	LastVideoID     string
	LastName        *string
	LastDescription *string
}

var _ usecasecontract.IPlaylistUseCase = (*MockPlaylistUsecase)(nil)

func NewMockPlaylistUsecase() *MockPlaylistUsecase {
	return &MockPlaylistUsecase{
		MockPlaylist: entity.Playlist{ID: "mock-playlist-id", OwnerID: "mock-user-id", Name: "favourites", VideoIDs: []string{}},
		MockPage:     usecasecontract.Page[entity.Playlist]{Items: []entity.Playlist{}, Page: 1, Limit: 10},
	}
}

func (m *MockPlaylistUsecase) CreatePlaylist(ctx context.Context, actorID, name, description string) (*entity.Playlist, error) {
	playlist := m.MockPlaylist
	playlist.Name = name
	playlist.Description = description
	return &playlist, nil
}

func (m *MockPlaylistUsecase) ListUserPlaylists(ctx context.Context, userID string, page contract.Pagination) (*usecasecontract.Page[entity.Playlist], error) {
	m.LastUserID = userID
	return &m.MockPage, nil
}

func (m *MockPlaylistUsecase) GetPlaylist(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	m.LastPlaylistID = playlistID
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) UpdatePlaylist(ctx context.Context, playlistID, actorID string, name, description *string) (*entity.Playlist, error) {
	m.LastPlaylistID, m.LastName, m.LastDescription = playlistID, name, description
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.Playlist, error) {
	m.LastPlaylistID, m.LastVideoID = playlistID, videoID
	if m.ShouldFailAddVideo {
		return nil, fmt.Errorf("%w: video %s not found", domain.ErrNotFound, videoID)
	}
	playlist := m.MockPlaylist
	playlist.VideoIDs = append(playlist.VideoIDs, videoID)
	return &playlist, nil
}

func (m *MockPlaylistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.Playlist, error) {
	m.LastPlaylistID, m.LastVideoID = playlistID, videoID
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) DeletePlaylist(ctx context.Context, playlistID, actorID string) error {
	return nil
}
