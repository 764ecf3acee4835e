package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	GetChannel(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateAccount(*gin.Context)
	UpdateAvatar(*gin.Context)
	UpdateCoverImage(*gin.Context)
	ChangePassword(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase    usecasecontract.IUserUseCase
	maxUploadBytes int64
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, maxUploadBytes int64) *UserHandler {
	return &UserHandler{
		userUsecase:    userUsecase,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.FullName, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// GetChannel handles retrieving a channel by username
func (h *UserHandler) GetChannel(c *gin.Context) {
	user, err := h.userUsecase.GetChannel(c.Request.Context(), c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAccountResponse(*user))
}

// UpdateAccount changes the caller's full name and/or email.
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.UpdateAccountDetails(c.Request.Context(), userID, req.FullName, req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAccountResponse(*user))
}

// UpdateAvatar replaces the caller's avatar with the "avatar" form file.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", h.userUsecase.UpdateAvatar)
}

// UpdateCoverImage replaces the caller's cover with the "coverImage" form file.
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", h.userUsecase.UpdateCoverImage)
}

func (h *UserHandler) replaceImage(c *gin.Context, field string, update func(context.Context, string, contract.MediaFile) (*entity.User, error)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if !parseMultipart(c, 1, h.maxUploadBytes) {
		return
	}
	file, closeFile, ok := formMedia(c, field, true)
	if !ok {
		return
	}
	defer closeFile()

	user, err := update(c.Request.Context(), userID, *file)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAccountResponse(*user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Password changed successfully")
}
