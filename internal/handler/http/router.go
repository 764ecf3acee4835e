package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// RouterOptions carries the transport settings.
type RouterOptions struct {
	AllowedOrigins     []string
	RateLimitPerSecond float64
	RequestTimeout     time.Duration
	MaxPageSize        int
	MaxUploadBytes     int64
}

// UseCases groups the application services the routes call.
type UseCases struct {
	Users         usecasecontract.IUserUseCase
	Reactions     usecasecontract.IReactionUseCase
	Subscriptions usecasecontract.ISubscriptionUseCase
	Videos        usecasecontract.IVideoUseCase
	Dashboard     usecasecontract.IDashboardUseCase
	Comments      usecasecontract.ICommentUseCase
	Tweets        usecasecontract.ITweetUseCase
	Playlists     usecasecontract.IPlaylistUseCase
}

type Router struct {
	userHandler         *UserHandler
	reactionHandler     *ReactionHandler
	subscriptionHandler *SubscriptionHandler
	videoHandler        *VideoHandler
	commentHandler      *CommentHandler
	tweetHandler        *TweetHandler
	playlistHandler     *PlaylistHandler
	verifier            middleware.TokenVerifier
	log                 *logrus.Entry
	opts                RouterOptions
}

func NewRouter(uc UseCases, verifier middleware.TokenVerifier, log *logrus.Entry, opts RouterOptions) *Router {
	return &Router{
		userHandler:         NewUserHandler(uc.Users, opts.MaxUploadBytes),
		reactionHandler:     NewReactionHandler(uc.Reactions, opts.MaxPageSize),
		subscriptionHandler: NewSubscriptionHandler(uc.Subscriptions, opts.MaxPageSize),
		videoHandler:        NewVideoHandler(uc.Videos, uc.Dashboard, opts.MaxPageSize, opts.MaxUploadBytes),
		commentHandler:      NewCommentHandler(uc.Comments, opts.MaxPageSize),
		tweetHandler:        NewTweetHandler(uc.Tweets, opts.MaxPageSize),
		playlistHandler:     NewPlaylistHandler(uc.Playlists, opts.MaxPageSize),
		verifier:            verifier,
		log:                 log,
		opts:                opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(r.log))
	corsConfig := cors.Config{
		AllowOrigins:     r.opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))
	if r.opts.RateLimitPerSecond > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(r.opts.RateLimitPerSecond)))
	}
	router.Use(middleware.SetRequestContextWithTimeout(r.opts.RequestTimeout))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthcheck", func(c *gin.Context) {
		SuccessHandler(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.GET("/healthcheck", func(c *gin.Context) {
		SuccessHandler(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	users := v1.Group("/users")
	{
		users.POST("/register", r.userHandler.CreateUser)
		users.GET("/c/:username", r.userHandler.GetChannel)
		users.GET("/:user/tweets", r.tweetHandler.GetUserTweets)
		users.GET("/:user/playlists", r.playlistHandler.GetUserPlaylists)
	}
	v1.GET("/videos", r.videoHandler.ListVideos)
	v1.GET("/videos/:videoId", middleware.OptionalAuth(r.verifier), r.videoHandler.GetVideo)
	v1.GET("/videos/:videoId/comments", r.commentHandler.GetVideoComments)
	v1.GET("/playlists/:playlistId", r.playlistHandler.GetPlaylist)
	v1.GET("/channels/:channelId/subscribers", r.subscriptionHandler.ListSubscribers)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.verifier))
	{
		protected.GET("/users/me", r.userHandler.GetCurrentUser)
		protected.PATCH("/users/me", r.userHandler.UpdateAccount)
		protected.PATCH("/users/me/avatar", r.userHandler.UpdateAvatar)
		protected.PATCH("/users/me/cover-image", r.userHandler.UpdateCoverImage)
		protected.POST("/users/me/password", r.userHandler.ChangePassword)
		protected.GET("/users/me/history", r.videoHandler.WatchHistory)
		protected.GET("/likes/videos", r.videoHandler.LikedVideos)

		// Reaction routes
		protected.POST("/reactions/toggle/:targetKind/:targetId", r.reactionHandler.Toggle)
		protected.GET("/reactions/status/:targetKind/:targetId", r.reactionHandler.Status)
		protected.GET("/reactions/mine", r.reactionHandler.ListMine)

		// Subscription routes
		protected.POST("/subscriptions/toggle/:channelId", r.subscriptionHandler.Toggle)
		protected.GET("/subscriptions/channels", r.subscriptionHandler.ListSubscribedChannels)

		// Video routes
		protected.POST("/media/videos", r.videoHandler.PublishVideo)
		protected.PATCH("/videos/:videoId", r.videoHandler.UpdateVideo)
		protected.DELETE("/videos/:videoId", r.videoHandler.DeleteVideo)
		protected.PATCH("/videos/:videoId/publish", r.videoHandler.TogglePublish)
		protected.GET("/dashboard/channels/:channelId/videos", r.videoHandler.ChannelVideos)

		// Comment routes
		protected.POST("/videos/:videoId/comments", r.commentHandler.CreateComment)
		protected.PATCH("/comments/:commentId", r.commentHandler.UpdateComment)
		protected.DELETE("/comments/:commentId", r.commentHandler.DeleteComment)

		// Tweet routes
		protected.POST("/tweets", r.tweetHandler.CreateTweet)
		protected.PATCH("/tweets/:tweetId", r.tweetHandler.UpdateTweet)
		protected.DELETE("/tweets/:tweetId", r.tweetHandler.DeleteTweet)

		// Playlist routes
		protected.POST("/playlists", r.playlistHandler.CreatePlaylist)
		protected.PATCH("/playlists/:playlistId", r.playlistHandler.UpdatePlaylist)
		protected.DELETE("/playlists/:playlistId", r.playlistHandler.DeletePlaylist)
		protected.POST("/playlists/:playlistId/videos/:videoId", r.playlistHandler.AddVideo)
		protected.DELETE("/playlists/:playlistId/videos/:videoId", r.playlistHandler.RemoveVideo)
	}
}
