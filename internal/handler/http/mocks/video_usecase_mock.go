package mocks

import (
	"context"
	"fmt"
	"io"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// MockVideoUsecase is a mock implementation of IVideoUseCase and IDashboardUseCase
type MockVideoUsecase struct {
	ShouldFailPublish bool
	ShouldFailGet     bool
	ShouldFailUpdate  bool
	ShouldFailDelete  bool

	MockVideo entity.Video
	MockPage  usecasecontract.Page[entity.Video]

	LastOwnerID      string
	LastVideoID      string
	LastQuery        usecasecontract.VideoQuery
	LastUpdate       usecasecontract.UpdateVideoInput
	LastTitle        string
	LastVideoBody    []byte
	LastThumbnailLen int64
	LastChannelID    string
	LastViewerID     string
	LastLibrary      string
	LastPage         contract.Pagination
}

var (
	_ usecasecontract.IVideoUseCase     = (*MockVideoUsecase)(nil)
	_ usecasecontract.IDashboardUseCase = (*MockVideoUsecase)(nil)
)

func NewMockVideoUsecase() *MockVideoUsecase {
	return &MockVideoUsecase{
		MockVideo: entity.Video{ID: "mock-video-id", OwnerID: "mock-user-id", Title: "mock video"},
		MockPage:  usecasecontract.Page[entity.Video]{Items: []entity.Video{}, Page: 1, Limit: 10},
	}
}

func (m *MockVideoUsecase) Publish(ctx context.Context, ownerID string, in usecasecontract.PublishVideoInput) (*entity.Video, error) {
	m.LastOwnerID = ownerID
	m.LastTitle = in.Title
	if in.Video != nil {
		m.LastVideoBody, _ = io.ReadAll(in.Video.Body)
	}
	if in.Thumbnail != nil {
		m.LastThumbnailLen = in.Thumbnail.Size
	}
	if m.ShouldFailPublish {
		return nil, fmt.Errorf("%w: thumbnail upload failed", domain.ErrUpstream)
	}
	video := m.MockVideo
	video.Title = in.Title
	return &video, nil
}

func (m *MockVideoUsecase) GetVideo(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	m.LastVideoID = videoID
	m.LastViewerID = viewerID
	if m.ShouldFailGet {
		return nil, fmt.Errorf("%w: video %s not found", domain.ErrNotFound, videoID)
	}
	return &m.MockVideo, nil
}

func (m *MockVideoUsecase) ListVideos(ctx context.Context, query usecasecontract.VideoQuery) (*usecasecontract.Page[entity.Video], error) {
	m.LastQuery = query
	return &m.MockPage, nil
}

func (m *MockVideoUsecase) UpdateVideo(ctx context.Context, videoID, actorID string, in usecasecontract.UpdateVideoInput) (*entity.Video, error) {
	m.LastVideoID = videoID
	m.LastUpdate = in
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: not the owner", domain.ErrForbidden)
	}
	return &m.MockVideo, nil
}

func (m *MockVideoUsecase) DeleteVideo(ctx context.Context, videoID, actorID string) error {
	m.LastVideoID = videoID
	if m.ShouldFailDelete {
		return fmt.Errorf("%w: not the owner", domain.ErrForbidden)
	}
	return nil
}

func (m *MockVideoUsecase) TogglePublish(ctx context.Context, videoID, actorID string) (*entity.Video, error) {
	m.LastVideoID = videoID
	video := m.MockVideo
	video.IsPublished = !video.IsPublished
	return &video, nil
}

func (m *MockVideoUsecase) ChannelVideos(ctx context.Context, channelID string, page contract.Pagination) (*usecasecontract.Page[entity.Video], error) {
	m.LastChannelID = channelID
	return &m.MockPage, nil
}

func (m *MockVideoUsecase) WatchHistory(ctx context.Context, userID string, page contract.Pagination) (*usecasecontract.Page[entity.Video], error) {
	m.LastOwnerID, m.LastLibrary, m.LastPage = userID, "history", page
	return &m.MockPage, nil
}

func (m *MockVideoUsecase) LikedVideos(ctx context.Context, userID string, page contract.Pagination) (*usecasecontract.Page[entity.Video], error) {
	m.LastOwnerID, m.LastLibrary, m.LastPage = userID, "liked", page
	return &m.MockPage, nil
}
