package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	handler "github.com/mikiasgoitom/VidTube/internal/handler/http"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/VidTube/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentHandler(t *testing.T) {
	m := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(m, 50)
	r := gin.New()
	r.GET("/videos/:videoId/comments", h.GetVideoComments)
	authed := r.Group("/", asUser("mock-user-id"))
	authed.POST("/videos/:videoId/comments", h.CreateComment)
	authed.PATCH("/comments/:commentId", h.UpdateComment)
	authed.DELETE("/comments/:commentId", h.DeleteComment)

	content := faker.Sentence()
	w := serve(r, jsonRequest(t, http.MethodPost, "/videos/v1/comments", dto.ContentRequest{Content: content}))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "v1", m.LastVideoID)
	assert.Equal(t, content, m.LastContent)

	w = serve(r, jsonRequest(t, http.MethodPost, "/videos/v1/comments", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, jsonRequest(t, http.MethodGet, "/videos/v1/comments?page=2&limit=10", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contract.Pagination{Page: 2, Limit: 10}, m.LastPage)

	m.ShouldFailUpdate = true
	w = serve(r, jsonRequest(t, http.MethodPatch, "/comments/c1", dto.ContentRequest{Content: "edit"}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, jsonRequest(t, http.MethodDelete, "/comments/c1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	m.ShouldFailAdd = true
	w = serve(r, jsonRequest(t, http.MethodPost, "/videos/missing/comments", dto.ContentRequest{Content: "hi"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTweetHandler(t *testing.T) {
	m := mocks.NewMockTweetUsecase()
	h := handler.NewTweetHandler(m, 50)
	r := gin.New()
	r.GET("/users/:user/tweets", h.GetUserTweets)
	authed := r.Group("/", asUser("mock-user-id"))
	authed.POST("/tweets", h.CreateTweet)
	authed.PATCH("/tweets/:tweetId", h.UpdateTweet)
	authed.DELETE("/tweets/:tweetId", h.DeleteTweet)

	w := serve(r, jsonRequest(t, http.MethodPost, "/tweets", dto.ContentRequest{Content: "hello world"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "hello world")

	w = serve(r, jsonRequest(t, http.MethodGet, "/users/alice/tweets", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", m.LastUsername)

	w = serve(r, jsonRequest(t, http.MethodPatch, "/tweets/t1", dto.ContentRequest{Content: "edited"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "edited", m.LastContent)

	w = serve(r, jsonRequest(t, http.MethodDelete, "/tweets/t1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	m.ShouldFailCreate = true
	w = serve(r, jsonRequest(t, http.MethodPost, "/tweets", dto.ContentRequest{Content: strings.Repeat("a", 10)}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaylistHandler(t *testing.T) {
	m := mocks.NewMockPlaylistUsecase()
	h := handler.NewPlaylistHandler(m, 50)
	r := gin.New()
	r.GET("/users/:user/playlists", h.GetUserPlaylists)
	r.GET("/playlists/:playlistId", h.GetPlaylist)
	authed := r.Group("/", asUser("mock-user-id"))
	authed.POST("/playlists", h.CreatePlaylist)
	authed.PATCH("/playlists/:playlistId", h.UpdatePlaylist)
	authed.DELETE("/playlists/:playlistId", h.DeletePlaylist)
	authed.POST("/playlists/:playlistId/videos/:videoId", h.AddVideo)
	authed.DELETE("/playlists/:playlistId/videos/:videoId", h.RemoveVideo)

	w := serve(r, jsonRequest(t, http.MethodPost, "/playlists", dto.CreatePlaylistRequest{Name: "Road trip"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Road trip")

	w = serve(r, jsonRequest(t, http.MethodPost, "/playlists", dto.CreatePlaylistRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, jsonRequest(t, http.MethodGet, "/users/u1/playlists", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", m.LastUserID)

	w = serve(r, jsonRequest(t, http.MethodGet, "/playlists/p1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(t, http.MethodPatch, "/playlists/p1", map[string]string{"description": "new"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, m.LastName)
	require.NotNil(t, m.LastDescription)
	assert.Equal(t, "new", *m.LastDescription)

	w = serve(r, jsonRequest(t, http.MethodPost, "/playlists/p1/videos/v9", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"video_ids":["v9"]`)

	w = serve(r, jsonRequest(t, http.MethodDelete, "/playlists/p1/videos/v9", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "v9", m.LastVideoID)

	w = serve(r, jsonRequest(t, http.MethodDelete, "/playlists/p1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	m.ShouldFailAddVideo = true
	w = serve(r, jsonRequest(t, http.MethodPost, "/playlists/p1/videos/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
