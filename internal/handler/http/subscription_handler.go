package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type SubscriptionHandler struct {
	subscriptionUC usecasecontract.ISubscriptionUseCase
	maxPageSize    int
}

func NewSubscriptionHandler(subscriptionUC usecasecontract.ISubscriptionUseCase, maxPageSize int) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: subscriptionUC, maxPageSize: maxPageSize}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	state, err := h.subscriptionUC.Toggle(c.Request.Context(), userID, c.Param("channelId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{State: state})
}

func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.subscriptionUC.ListSubscribers(c.Request.Context(), c.Param("channelId"), page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserPage(result))
}

// ListSubscribedChannels pages the channels the caller subscribes to.
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.subscriptionUC.ListSubscribedChannels(c.Request.Context(), userID, page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserPage(result))
}
