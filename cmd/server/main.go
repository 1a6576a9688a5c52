package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Sukomal07/videohub/internal/config"
	"github.com/Sukomal07/videohub/internal/db"
	"github.com/Sukomal07/videohub/internal/handler"
	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/internal/repository"
	"github.com/Sukomal07/videohub/internal/router"
	"github.com/Sukomal07/videohub/internal/service"
	"github.com/Sukomal07/videohub/pkg/token"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "videohub")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	assets, err := service.NewAssetService(cfg)
	if err != nil {
		log.Fatalf("failed to create asset store client: %v", err)
	}
	if err := assets.EnsureBucket(ctx); err != nil {
		log.Fatalf("failed to prepare asset bucket: %v", err)
	}

	handler.InitMetrics(pool)

	accessTokens := token.NewManager(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	refreshTokens := token.NewManager(cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)

	userRepo := repository.NewUserRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)
	tweetRepo := repository.NewTweetRepo(pool)
	playlistRepo := repository.NewPlaylistRepo(pool)
	subscriptionRepo := repository.NewSubscriptionRepo(pool)
	reactionRepo := repository.NewReactionRepo(pool)

	historySvc := service.NewHistoryService(userRepo, videoRepo)
	aggregateSvc := service.NewAggregateService(
		userRepo, videoRepo, commentRepo, tweetRepo, playlistRepo,
		subscriptionRepo, reactionRepo, cache, historySvc)
	userSvc := service.NewUserService(userRepo, assets, accessTokens, refreshTokens, cache)
	videoSvc := service.NewVideoService(videoRepo, assets)
	commentSvc := service.NewCommentService(commentRepo, videoRepo)
	tweetSvc := service.NewTweetService(tweetRepo)
	playlistSvc := service.NewPlaylistService(playlistRepo, videoRepo)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, userRepo, cache)
	reactionSvc := service.NewReactionService(reactionRepo)
	searchSvc := service.NewSearchService(userRepo, videoRepo)

	h := &router.Handlers{
		User:         handler.NewUserHandler(userSvc),
		Video:        handler.NewVideoHandler(videoSvc, aggregateSvc),
		Comment:      handler.NewCommentHandler(commentSvc),
		Tweet:        handler.NewTweetHandler(tweetSvc),
		Playlist:     handler.NewPlaylistHandler(playlistSvc, aggregateSvc),
		Channel:      handler.NewChannelHandler(aggregateSvc),
		Subscription: handler.NewSubscriptionHandler(subscriptionSvc),
		Reaction:     handler.NewReactionHandler(reactionSvc),
		Search:       handler.NewSearchHandler(searchSvc),
		History:      handler.NewHistoryHandler(historySvc),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "VideoHub API",
		ServerHeader: "VideoHub",
		BodyLimit:    256 * 1024 * 1024, // video uploads
	})

	router.Setup(app, h, accessTokens, cfg.CORSOrigins)

	log.Printf("VideoHub backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
