package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type CommentHandler struct {
	commentUC   usecasecontract.ICommentUseCase
	maxPageSize int
}

func NewCommentHandler(commentUC usecasecontract.ICommentUseCase, maxPageSize int) *CommentHandler {
	return &CommentHandler{
		commentUC:   commentUC,
		maxPageSize: maxPageSize,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.commentUC.AddComment(c.Request.Context(), c.Param("videoId"), userID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}

// GetVideoComments pages a video's comments, newest first.
func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.commentUC.ListVideoComments(c.Request.Context(), c.Param("videoId"), page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.commentUC.UpdateComment(c.Request.Context(), c.Param("commentId"), userID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.commentUC.DeleteComment(c.Request.Context(), c.Param("commentId"), userID); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}
