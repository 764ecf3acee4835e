package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type playlistUseCase struct {
	playlistRepo contract.IPlaylistRepository
	videoRepo    contract.IVideoRepository
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	config       usecasecontract.IConfigProvider
}

func NewPlaylistUseCase(
	playlistRepo contract.IPlaylistRepository,
	videoRepo contract.IVideoRepository,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
) usecasecontract.IPlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		uuidgen:      uuidgen,
		validator:    validator,
		config:       config,
	}
}

func (uc *playlistUseCase) CreatePlaylist(ctx context.Context, actorID, name, description string) (*entity.Playlist, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", domain.ErrInvalidArgument)
	}
	now := time.Now().UTC()
	playlist := &entity.Playlist{
		ID:          uc.uuidgen.NewUUID(),
		OwnerID:     actorID,
		Name:        name,
		Description: strings.TrimSpace(description),
		VideoIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, storeErr("create playlist", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) ListUserPlaylists(ctx context.Context, userID string, page contract.Pagination) (*usecasecontract.Page[entity.Playlist], error) {
	if err := uc.validator.ValidateID(userID); err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidArgument)
	}
	page, err := checkPage(page, uc.config.GetMaxPageSize())
	if err != nil {
		return nil, err
	}
	result, err := fetchPage(ctx, page,
		func(ctx context.Context) ([]entity.Playlist, error) { return uc.playlistRepo.ListByOwner(ctx, userID, page) },
		func(ctx context.Context) (int64, error) { return uc.playlistRepo.CountByOwner(ctx, userID) },
	)
	if err != nil {
		return nil, storeErr("list playlists", err)
	}
	return result, nil
}

func (uc *playlistUseCase) GetPlaylist(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	if err := uc.validator.ValidateID(playlistID); err != nil {
		return nil, fmt.Errorf("%w: invalid playlist id", domain.ErrInvalidArgument)
	}
	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, storeErr("get playlist", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) UpdatePlaylist(ctx context.Context, playlistID, actorID string, name, description *string) (*entity.Playlist, error) {
	if err := uc.checkOwner(ctx, playlistID, actorID); err != nil {
		return nil, err
	}
	if name == nil && description == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidArgument)
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: playlist name cannot be empty", domain.ErrInvalidArgument)
		}
		name = &trimmed
	}
	updated, err := uc.playlistRepo.Update(ctx, playlistID, name, description)
	if err != nil {
		return nil, storeErr("update playlist", err)
	}
	return updated, nil
}

func (uc *playlistUseCase) AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.Playlist, error) {
	if err := uc.checkOwner(ctx, playlistID, actorID); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateID(videoID); err != nil {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, storeErr("get video", err)
	}
	updated, err := uc.playlistRepo.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, storeErr("add video to playlist", err)
	}
	return updated, nil
}

func (uc *playlistUseCase) RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*entity.Playlist, error) {
	if err := uc.checkOwner(ctx, playlistID, actorID); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateID(videoID); err != nil {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	updated, err := uc.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, storeErr("remove video from playlist", err)
	}
	return updated, nil
}

func (uc *playlistUseCase) DeletePlaylist(ctx context.Context, playlistID, actorID string) error {
	if err := uc.checkOwner(ctx, playlistID, actorID); err != nil {
		return err
	}
	if err := uc.playlistRepo.Delete(ctx, playlistID); err != nil {
		return storeErr("delete playlist", err)
	}
	return nil
}

func (uc *playlistUseCase) checkOwner(ctx context.Context, playlistID, actorID string) error {
	if actorID == "" {
		return domain.ErrUnauthorized
	}
	playlist, err := uc.GetPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != actorID {
		return fmt.Errorf("%w: only the owner can change this playlist", domain.ErrForbidden)
	}
	return nil
}
