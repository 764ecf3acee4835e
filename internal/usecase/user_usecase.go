package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	media         contract.IMediaHost
	config        usecasecontract.IConfigProvider
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	media contract.IMediaHost,
	config usecasecontract.IConfigProvider,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		media:         media,
		config:        config,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, username, email, fullName, password string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrInvalidArgument)
	}
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format: %v", domain.ErrInvalidArgument, err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: weak password: %v", domain.ErrInvalidArgument, err)
	}

	// Check if user with same username or email already exists
	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user with email %s already exists", domain.ErrConflict, email)
	} else if !errors.Is(err, domain.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, storeErr("check existing user", err)
	}
	if _, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: user with username %s already exists", domain.ErrConflict, username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, storeErr("check existing user", err)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to process password", domain.ErrUpstream)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, storeErr("register user", err)
	}
	return user, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if err := uc.validator.ValidateID(userID); err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidArgument)
	}
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return user, nil
}

// GetChannel returns the channel profile of username, including its
// subscriber count.
func (uc *UserUsecase) GetChannel(ctx context.Context, username string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidArgument)
	}
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, storeErr("get channel", err)
	}
	return user, nil
}

// UpdateAccountDetails changes the full name and/or email of userID.
func (uc *UserUsecase) UpdateAccountDetails(ctx context.Context, userID string, fullName, email *string) (*entity.User, error) {
	if fullName == nil && email == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidArgument)
	}
	update := entity.UserUpdate{}
	if fullName != nil {
		name := strings.TrimSpace(*fullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", domain.ErrInvalidArgument)
		}
		update.FullName = &name
	}
	if email != nil {
		addr := strings.ToLower(strings.TrimSpace(*email))
		if err := uc.validator.ValidateEmail(addr); err != nil {
			return nil, fmt.Errorf("%w: invalid email format: %v", domain.ErrInvalidArgument, err)
		}
		if existing, err := uc.userRepo.GetUserByEmail(ctx, addr); err == nil && existing.ID != userID {
			return nil, fmt.Errorf("%w: user with email %s already exists", domain.ErrConflict, addr)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, storeErr("check existing user", err)
		}
		update.Email = &addr
	}
	user, err := uc.userRepo.UpdateUser(ctx, userID, update)
	if err != nil {
		return nil, storeErr("update account", err)
	}
	return user, nil
}

// UpdateAvatar uploads file and makes it the avatar of userID. The previous
// avatar asset is deleted once the profile points at the new one.
func (uc *UserUsecase) UpdateAvatar(ctx context.Context, userID string, file contract.MediaFile) (*entity.User, error) {
	return uc.replaceImage(ctx, userID, file, "avatar",
		func(u *entity.User) string { return u.AvatarAssetID },
		func(asset *contract.UploadedAsset) entity.UserUpdate {
			return entity.UserUpdate{AvatarURL: &asset.URL, AvatarAssetID: &asset.AssetID}
		})
}

// UpdateCoverImage is UpdateAvatar for the channel cover image.
func (uc *UserUsecase) UpdateCoverImage(ctx context.Context, userID string, file contract.MediaFile) (*entity.User, error) {
	return uc.replaceImage(ctx, userID, file, "cover image",
		func(u *entity.User) string { return u.CoverAssetID },
		func(asset *contract.UploadedAsset) entity.UserUpdate {
			return entity.UserUpdate{CoverImageURL: &asset.URL, CoverAssetID: &asset.AssetID}
		})
}

func (uc *UserUsecase) replaceImage(
	ctx context.Context,
	userID string,
	file contract.MediaFile,
	what string,
	current func(*entity.User) string,
	update func(*contract.UploadedAsset) entity.UserUpdate,
) (*entity.User, error) {
	if file.Body == nil || file.Size == 0 {
		return nil, fmt.Errorf("%w: %s file is required", domain.ErrInvalidArgument, what)
	}
	if limit := uc.config.GetMaxUploadBytes(); limit > 0 && file.Size > limit {
		return nil, fmt.Errorf("%w: %s exceeds the %d byte upload limit", domain.ErrInvalidArgument, file.Name, limit)
	}
	before, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}

	asset, err := uc.media.Upload(ctx, file, contract.MediaKindImage)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upload %s: %w", domain.ErrUpstream, what, err)
	}
	user, err := uc.userRepo.UpdateUser(ctx, userID, update(asset))
	if err != nil {
		uc.deleteImage(ctx, asset.AssetID)
		return nil, storeErr("update "+what, err)
	}
	uc.deleteImage(ctx, current(before))
	return user, nil
}

func (uc *UserUsecase) deleteImage(ctx context.Context, assetID string) {
	if assetID == "" {
		return
	}
	if err := uc.media.Delete(context.WithoutCancel(ctx), assetID, contract.MediaKindImage); err != nil {
		uc.logger.Warnf("failed to delete image asset %s: %v", assetID, err)
	}
}

// ChangePassword replaces the password of userID after checking the old one.
func (uc *UserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return storeErr("get user", err)
	}
	if err := uc.hasher.ComparePasswordHash(oldPassword, user.PasswordHash); err != nil {
		return fmt.Errorf("%w: old password is incorrect", domain.ErrInvalidArgument)
	}
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%w: weak password: %v", domain.ErrInvalidArgument, err)
	}
	hashed, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return fmt.Errorf("%w: failed to process password", domain.ErrUpstream)
	}
	if _, err := uc.userRepo.UpdateUser(ctx, userID, entity.UserUpdate{PasswordHash: &hashed}); err != nil {
		return storeErr("change password", err)
	}
	return nil
}
