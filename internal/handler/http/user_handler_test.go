package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	handler "github.com/mikiasgoitom/VidTube/internal/handler/http"
	dto "github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/VidTube/internal/handler/http/mocks"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

// asUser stands in for the auth middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func jsonRequest(t *testing.T, method, path string, payload interface{}) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setupRouter(h handler.UserHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.CreateUser)
	r.GET("/c/:username", h.GetChannel)
	r.GET("/me", asUser("mock-user-id"), h.GetCurrentUser)
	r.GET("/anonymous/me", h.GetCurrentUser)
	r.PATCH("/me", asUser("mock-user-id"), h.UpdateAccount)
	r.PATCH("/me/avatar", asUser("mock-user-id"), h.UpdateAvatar)
	r.PATCH("/me/cover-image", asUser("mock-user-id"), h.UpdateCoverImage)
	r.POST("/me/password", asUser("mock-user-id"), h.ChangePassword)
	return r
}

func TestCreateUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    faker.Email(),
		FullName: faker.Name(),
		Password: "Password123!",
	}

	w := serve(r, jsonRequest(t, http.MethodPost, "/register", payload))

	assert.Equal(t, http.StatusCreated, w.Code)
	var got dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "testuser", got.Username)
	assert.Equal(t, payload.FullName, got.FullName)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), payload.Email)
}

func TestCreateUser_ValidationFail(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), 1<<20))
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    "not-an-email",
	}

	w := serve(r, jsonRequest(t, http.MethodPost, "/register", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Email' failed on the 'email' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'FullName' failed on the 'required' tag")
}

func TestCreateUser_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailCreateUser = true
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    faker.Email(),
		FullName: "Test User",
		Password: "Password123!",
	}

	w := serve(r, jsonRequest(t, http.MethodPost, "/register", payload))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestGetChannel(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), 1<<20))
	w := serve(r, jsonRequest(t, http.MethodGet, "/c/testuser", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
	assert.Contains(t, w.Body.String(), `"created_at":"2024-01-02T03:04:05Z"`)
	assert.NotContains(t, w.Body.String(), "test@example.com")
}

func TestGetChannel_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailGetChannel = true
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))
	w := serve(r, jsonRequest(t, http.MethodGet, "/c/"+uuid.New().String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "channel not found")
}

func TestGetCurrentUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))

	w := serve(r, jsonRequest(t, http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock-user-id", mockUsecase.LastUserID)
	assert.Contains(t, w.Body.String(), `"email":"test@example.com"`, "the owner sees their own email")

	w = serve(r, jsonRequest(t, http.MethodGet, "/anonymous/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateUser_WeakPassword(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), 1<<20))
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    faker.Email(),
		FullName: "Test User",
		Password: "password",
	}

	w := serve(r, jsonRequest(t, http.MethodPost, "/register", payload))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'containsuppercase' tag")
}

func TestUpdateAccount(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))

	w := serve(r, jsonRequest(t, http.MethodPatch, "/me", map[string]string{"full_name": "Renamed"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, mockUsecase.LastFullName)
	assert.Equal(t, "Renamed", *mockUsecase.LastFullName)
	assert.Nil(t, mockUsecase.LastEmail)
	var got dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Renamed", got.FullName)

	w = serve(r, jsonRequest(t, http.MethodPatch, "/me", map[string]string{"email": "nope"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockUsecase.ShouldFailUpdate = true
	w = serve(r, jsonRequest(t, http.MethodPatch, "/me", map[string]string{"email": faker.Email()}))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateAvatarAndCover(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))

	w := serve(r, multipartRequest(t, http.MethodPatch, "/me/avatar", nil, formPart{"avatar", "me.png", []byte("png")}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "me.png", mockUsecase.LastImageName)
	assert.Equal(t, []byte("png"), mockUsecase.LastImageBody)
	assert.Contains(t, w.Body.String(), "https://media.test/image/me.png")

	w = serve(r, multipartRequest(t, http.MethodPatch, "/me/cover-image", nil, formPart{"coverImage", "cover.jpg", []byte("jpg")}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cover.jpg", mockUsecase.LastImageName)

	w = serve(r, multipartRequest(t, http.MethodPatch, "/me/avatar", nil, formPart{"coverImage", "wrong.jpg", []byte("jpg")}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "avatar file is required")

	mockUsecase.ShouldFailUpdate = true
	w = serve(r, multipartRequest(t, http.MethodPatch, "/me/avatar", nil, formPart{"avatar", "me.png", []byte("png")}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateAvatar_TooLarge(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), 8))
	huge := bytes.Repeat([]byte("x"), 33<<20)
	w := serve(r, multipartRequest(t, http.MethodPatch, "/me/avatar", nil, formPart{"avatar", "huge.png", huge}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestChangePassword(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase, 1<<20))

	w := serve(r, jsonRequest(t, http.MethodPost, "/me/password", dto.ChangePasswordRequest{OldPassword: "Old1Password", NewPassword: "N3wPassword"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "N3wPassword", mockUsecase.LastNewPassword)

	w = serve(r, jsonRequest(t, http.MethodPost, "/me/password", dto.ChangePasswordRequest{OldPassword: "Old1Password", NewPassword: "weakpass"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'containsuppercase' tag")

	mockUsecase.ShouldFailPassword = true
	w = serve(r, jsonRequest(t, http.MethodPost, "/me/password", dto.ChangePasswordRequest{OldPassword: "Wr0ngPassword", NewPassword: "N3wPassword"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "old password is incorrect")
}
