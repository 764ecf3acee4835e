package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/VidTube/internal/handler/http"
	redisclient "github.com/mikiasgoitom/VidTube/internal/infrastructure/cache"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/config"
	database "github.com/mikiasgoitom/VidTube/internal/infrastructure/database"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/logger"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/mediahost"
	passwordservice "github.com/mikiasgoitom/VidTube/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/store"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/validator"
	"github.com/mikiasgoitom/VidTube/internal/usecase"
	"github.com/mikiasgoitom/VidTube/internal/workers"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	appConfig := config.NewConfig()
	appLogger := logger.NewLogger(appConfig.LogLevel, appConfig.LogFormat)

	if appConfig.MongoURI == "" {
		appLogger.Fatalf("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(appConfig.MongoDBName)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(mongodb.UsersCollection))
	reactionRepo := mongodb.NewReactionRepository(db)
	reactableRepo := mongodb.NewReactableRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)
	publicationRepo := mongodb.NewPublicationRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	tweetRepo := mongodb.NewTweetRepository(db)
	playlistRepo := mongodb.NewPlaylistRepository(db)
	historyRepo := mongodb.NewWatchHistoryRepository(db)
	transactor := mongodb.NewTransactor(mongoClient.Client, appConfig.MongoTransactions)

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	mediaHost, err := newMediaHost(ctx, appConfig, uuidGenerator)
	if err != nil {
		appLogger.Fatalf("Failed to initialize media host: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, appLogger, appValidator, uuidGenerator, mediaHost, appConfig)
	reactionUsecase := usecase.NewReactionUsecase(reactionRepo, reactableRepo, transactor, uuidGenerator, appValidator, appConfig, appLogger)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(reactionUsecase, reactionRepo, userRepo, appValidator, appConfig)
	videoUsecase := usecase.NewVideoUsecase(videoRepo, publicationRepo, reactionRepo, commentRepo, playlistRepo, mediaHost, transactor, uuidGenerator, appValidator, appConfig, appLogger)
	videoUsecase.SetWatchHistory(historyRepo)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, videoRepo, reactionRepo, uuidGenerator, appValidator, appConfig, appLogger)
	tweetUsecase := usecase.NewTweetUseCase(tweetRepo, userRepo, reactionRepo, uuidGenerator, appValidator, appConfig, appLogger)
	playlistUsecase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, uuidGenerator, appValidator, appConfig)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("Video cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			videoCache := store.NewVideoCacheStore(rdb, appConfig.VideoCacheTTL)
			videoUsecase.SetVideoCache(videoCache)
			reactionUsecase.SetVideoCache(videoCache)
		}
	}

	// Background reconciliation: counters only drift when writes are not transactional.
	var repairLog contract.ICounterRepairRepository
	if !transactor.Enabled() {
		repairLog = mongodb.NewCounterRepairRepository(db)
		reactionUsecase.SetRepairLog(repairLog)
	}
	reconciler := workers.NewReconciler(reactionUsecase, repairLog, videoUsecase, appLogger, appConfig.ReconcileInterval)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		reconciler.Start(ctx)
	}()

	// Setup API routes
	if appConfig.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	handlerHttp.NewRouter(handlerHttp.UseCases{
		Users:         userUsecase,
		Reactions:     reactionUsecase,
		Subscriptions: subscriptionUsecase,
		Videos:        videoUsecase,
		Dashboard:     videoUsecase,
		Comments:      commentUsecase,
		Tweets:        tweetUsecase,
		Playlists:     playlistUsecase,
	}, jwtManager, appLogger.Entry(), handlerHttp.RouterOptions{
		AllowedOrigins:     appConfig.AllowedOrigins,
		RateLimitPerSecond: appConfig.RateLimitPerSecond,
		RequestTimeout:     appConfig.ContextTimeout,
		MaxPageSize:        appConfig.MaxPageSize,
		MaxUploadBytes:     appConfig.MaxUploadBytes,
	}).SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Server forced to shutdown: %v", err)
	}
	<-workerDone
	appLogger.Infof("Server exited")
}

func newMediaHost(ctx context.Context, cfg *config.Config, ids contract.IUUIDGenerator) (contract.IMediaHost, error) {
	switch cfg.MediaHostProvider {
	case "s3":
		host, err := mediahost.NewS3Host(ctx, mediahost.S3Options{
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		}, ids)
		if err != nil {
			return nil, err
		}
		return host, nil
	case "cloudinary", "":
		host, err := mediahost.NewCloudinaryHost(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			return nil, err
		}
		return host, nil
	default:
		return nil, fmt.Errorf("unknown MEDIA_HOST_PROVIDER %q", cfg.MediaHostProvider)
	}
}
