package dto

import (
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// UserResponse is the public view of a user's channel.
type UserResponse struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	FullName        string  `json:"full_name"`
	AvatarURL       *string `json:"avatar_url"`
	CoverImageURL   *string `json:"cover_image_url"`
	SubscriberCount int64   `json:"subscriber_count"`
	CreatedAt       string  `json:"created_at"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		FullName:        user.FullName,
		AvatarURL:       user.AvatarURL,
		CoverImageURL:   user.CoverImageURL,
		SubscriberCount: user.SubscriberCount,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}

// AccountResponse is what a user sees of their own account.
type AccountResponse struct {
	UserResponse
	Email string `json:"email"`
}

func ToAccountResponse(user entity.User) AccountResponse {
	return AccountResponse{UserResponse: ToUserResponse(user), Email: user.Email}
}

// ToUserPage converts a page of users, keeping its paging fields.
func ToUserPage(page *usecasecontract.Page[entity.User]) usecasecontract.Page[UserResponse] {
	items := make([]UserResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToUserResponse(page.Items[i])
	}
	return usecasecontract.Page[UserResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

// ToggleResponse reports the membership after a toggle.
type ToggleResponse struct {
	State entity.ToggleState `json:"state"`
}

// ReactionStatusResponse reports whether the caller reacted to a target.
type ReactionStatusResponse struct {
	Reacted bool `json:"reacted"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
