package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type PlaylistHandler struct {
	playlistUC  usecasecontract.IPlaylistUseCase
	maxPageSize int
}

func NewPlaylistHandler(playlistUC usecasecontract.IPlaylistUseCase, maxPageSize int) *PlaylistHandler {
	return &PlaylistHandler{playlistUC: playlistUC, maxPageSize: maxPageSize}
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePlaylistRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	playlist, err := h.playlistUC.CreatePlaylist(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, playlist)
}

func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.playlistUC.ListUserPlaylists(c.Request.Context(), c.Param("user"), page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUC.GetPlaylist(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePlaylistRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	playlist, err := h.playlistUC.UpdatePlaylist(c.Request.Context(), c.Param("playlistId"), userID, req.Name, req.Description)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlist, err := h.playlistUC.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlist, err := h.playlistUC.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.playlistUC.DeletePlaylist(c.Request.Context(), c.Param("playlistId"), userID); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Playlist deleted successfully")
}
