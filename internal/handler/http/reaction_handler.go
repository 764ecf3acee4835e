package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type ReactionHandler struct {
	reactionUC  usecasecontract.IReactionUseCase
	maxPageSize int
}

func NewReactionHandler(reactionUC usecasecontract.IReactionUseCase, maxPageSize int) *ReactionHandler {
	return &ReactionHandler{reactionUC: reactionUC, maxPageSize: maxPageSize}
}

// Toggle likes or unlikes a video, comment or tweet, or subscribes to a channel.
func (h *ReactionHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, ok := targetKind(c, c.Param("targetKind"))
	if !ok {
		return
	}
	state, err := h.reactionUC.Toggle(c.Request.Context(), userID, c.Param("targetId"), kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{State: state})
}

// Status reports whether the caller has reacted to the target.
func (h *ReactionHandler) Status(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, ok := targetKind(c, c.Param("targetKind"))
	if !ok {
		return
	}
	reacted, err := h.reactionUC.HasReacted(c.Request.Context(), userID, c.Param("targetId"), kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ReactionStatusResponse{Reacted: reacted})
}

// ListMine pages the caller's reactions of ?kind= (video by default).
func (h *ReactionHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, ok := targetKind(c, c.DefaultQuery("kind", string(entity.TargetKindVideo)))
	if !ok {
		return
	}
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.reactionUC.ListMine(c.Request.Context(), userID, kind, page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

func targetKind(c *gin.Context, raw string) (entity.TargetKind, bool) {
	kind, ok := entity.ParseTargetKind(raw)
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Unknown target kind")
		return "", false
	}
	return kind, true
}
