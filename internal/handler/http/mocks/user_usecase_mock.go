package mocks

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser bool
	ShouldFailGetByID    bool
	ShouldFailGetChannel bool
	ShouldFailUpdate     bool
	ShouldFailPassword   bool

	// Return values
	MockUser entity.User

	// Recorded arguments
	LastUserID      string
	LastFullName    *string
	LastEmail       *string
	LastImageName   string
	LastImageBody   []byte
	LastNewPassword string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testuser",
			Email:     "test@example.com",
			FullName:  "Test User",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, fullName, password string) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, fmt.Errorf("%w: username or email already taken", domain.ErrConflict)
	}
	user := m.MockUser
	user.Username = username
	user.Email = email
	user.FullName = fullName
	return &user, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	m.LastUserID = userID
	if m.ShouldFailGetByID {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetChannel(ctx context.Context, username string) (*entity.User, error) {
	if m.ShouldFailGetChannel {
		return nil, fmt.Errorf("%w: channel not found", domain.ErrNotFound)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateAccountDetails(ctx context.Context, userID string, fullName, email *string) (*entity.User, error) {
	m.LastUserID, m.LastFullName, m.LastEmail = userID, fullName, email
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: user with email already exists", domain.ErrConflict)
	}
	user := m.MockUser
	if fullName != nil {
		user.FullName = *fullName
	}
	if email != nil {
		user.Email = *email
	}
	return &user, nil
}

func (m *MockUserUsecase) image(userID string, file contract.MediaFile) (*entity.User, error) {
	m.LastUserID, m.LastImageName = userID, file.Name
	m.LastImageBody, _ = io.ReadAll(file.Body)
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("%w: failed to upload image", domain.ErrUpstream)
	}
	url := "https://media.test/image/" + file.Name
	user := m.MockUser
	user.AvatarURL = &url
	return &user, nil
}

func (m *MockUserUsecase) UpdateAvatar(ctx context.Context, userID string, file contract.MediaFile) (*entity.User, error) {
	return m.image(userID, file)
}

func (m *MockUserUsecase) UpdateCoverImage(ctx context.Context, userID string, file contract.MediaFile) (*entity.User, error) {
	return m.image(userID, file)
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	m.LastUserID, m.LastNewPassword = userID, newPassword
	if m.ShouldFailPassword {
		return fmt.Errorf("%w: old password is incorrect", domain.ErrInvalidArgument)
	}
	return nil
}
