package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
)

// IUserUseCase defines the interface for user and channel operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, fullName, password string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetChannel(ctx context.Context, username string) (*entity.User, error)

	// Account operations act on the caller's own profile.
	UpdateAccountDetails(ctx context.Context, userID string, fullName, email *string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID string, file contract.MediaFile) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID string, file contract.MediaFile) (*entity.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
