package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type TweetHandler struct {
	tweetUC     usecasecontract.ITweetUseCase
	maxPageSize int
}

func NewTweetHandler(tweetUC usecasecontract.ITweetUseCase, maxPageSize int) *TweetHandler {
	return &TweetHandler{tweetUC: tweetUC, maxPageSize: maxPageSize}
}

func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tweet, err := h.tweetUC.CreateTweet(c.Request.Context(), userID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, tweet)
}

func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	page, ok := pagination(c, h.maxPageSize)
	if !ok {
		return
	}
	result, err := h.tweetUC.ListUserTweets(c.Request.Context(), c.Param("user"), page)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tweet, err := h.tweetUC.UpdateTweet(c.Request.Context(), c.Param("tweetId"), userID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tweet)
}

func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.tweetUC.DeleteTweet(c.Request.Context(), c.Param("tweetId"), userID); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Tweet deleted successfully")
}
