package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before spilling to temporary files.
const multipartMemory = 32 << 20

type VideoHandler struct {
	videoUC        usecasecontract.IVideoUseCase
	dashboardUC    usecasecontract.IDashboardUseCase
	maxPageSize    int
	maxUploadBytes int64
}

func NewVideoHandler(videoUC usecasecontract.IVideoUseCase, dashboardUC usecasecontract.IDashboardUseCase, maxPageSize int, maxUploadBytes int64) *VideoHandler {
	return &VideoHandler{
		videoUC:        videoUC,
		dashboardUC:    dashboardUC,
		maxPageSize:    maxPageSize,
		maxUploadBytes: maxUploadBytes,
	}
}

// PublishVideo accepts a multipart upload with video, thumbnail, title and description.
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if !h.parseMultipart(c, 2) {
		return
	}
	video, closeVideo, ok := formMedia(c, "video", true)
	if !ok {
		return
	}
	defer closeVideo()
	thumbnail, closeThumb, ok := formMedia(c, "thumbnail", true)
	if !ok {
		return
	}
	defer closeThumb()

	created, err := h.videoUC.Publish(c.Request.Context(), userID, usecasecontract.PublishVideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Video:       video,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// GetVideo serves public reads; a signed-in viewer has the video added to
// their watch history.
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUC.GetVideo(c.Request.Context(), c.Param("videoId"), c.GetString(middleware.UserIDKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

// ListVideos pages published videos, optionally of one owner.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.videoUC.ListVideos(c.Request.Context(), usecasecontract.VideoQuery{
		OwnerID:    c.Query("userId"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  usecasecontract.SortOrder(c.Query("sortType")),
		Pagination: page,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// UpdateVideo changes title, description or thumbnail. Absent form fields are left as they are.
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if !h.parseMultipart(c, 1) {
		return
	}
	in := usecasecontract.UpdateVideoInput{}
	if title, ok := c.GetPostForm("title"); ok {
		in.Title = &title
	}
	if description, ok := c.GetPostForm("description"); ok {
		in.Description = &description
	}
	thumbnail, closeThumb, ok := formMedia(c, "thumbnail", false)
	if !ok {
		return
	}
	defer closeThumb()
	in.Thumbnail = thumbnail

	video, err := h.videoUC.UpdateVideo(c.Request.Context(), c.Param("videoId"), userID, in)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.videoUC.DeleteVideo(c.Request.Context(), c.Param("videoId"), userID); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	video, err := h.videoUC.TogglePublish(c.Request.Context(), c.Param("videoId"), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

// ChannelVideos pages every video of a channel, published or not.
func (h *VideoHandler) ChannelVideos(c *gin.Context) {
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.dashboardUC.ChannelVideos(c.Request.Context(), c.Param("channelId"), page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// WatchHistory pages the videos the caller opened, most recent first.
func (h *VideoHandler) WatchHistory(c *gin.Context) {
	h.userVideos(c, h.videoUC.WatchHistory)
}

// LikedVideos pages the videos the caller liked.
func (h *VideoHandler) LikedVideos(c *gin.Context) {
	h.userVideos(c, h.videoUC.LikedVideos)
}

func (h *VideoHandler) userVideos(c *gin.Context, list func(context.Context, string, contract.Pagination) (*usecasecontract.Page[entity.Video], error)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := list(c.Request.Context(), userID, page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

func (h *VideoHandler) parseMultipart(c *gin.Context, files int64) bool {
	return parseMultipart(c, files, h.maxUploadBytes)
}

// parseMultipart caps the body at files uploads of maxUpload bytes plus form
// overhead and parses it.
func parseMultipart(c *gin.Context, files, maxUpload int64) bool {
	if maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, files*maxUpload+multipartMemory)
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ErrorHandler(c, http.StatusRequestEntityTooLarge, "Upload exceeds the size limit")
			return false
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return true
		}
		ErrorHandler(c, http.StatusBadRequest, "Invalid multipart form")
		return false
	}
	return true
}

// formMedia opens the uploaded file in field. A missing optional file yields a
// nil file and a no-op closer.
func formMedia(c *gin.Context, field string, required bool) (*contract.MediaFile, func(), bool) {
	noop := func() {}
	header, err := c.FormFile(field)
	if err != nil {
		missing := errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
		if missing && !required {
			return nil, noop, true
		}
		ErrorHandler(c, http.StatusBadRequest, fmt.Sprintf("%s file is required", field))
		return nil, noop, false
	}
	file, err := header.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, fmt.Sprintf("cannot read %s file", field))
		return nil, noop, false
	}
	return mediaFile(header, file), func() { _ = file.Close() }, true
}

func mediaFile(header *multipart.FileHeader, file io.ReadSeeker) *contract.MediaFile {
	return &contract.MediaFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
}
