package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Sukomal07/videohub/internal/handler"
	"github.com/Sukomal07/videohub/internal/middleware"
	"github.com/Sukomal07/videohub/pkg/token"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Tweet        *handler.TweetHandler
	Playlist     *handler.PlaylistHandler
	Channel      *handler.ChannelHandler
	Subscription *handler.SubscriptionHandler
	Reaction     *handler.ReactionHandler
	Search       *handler.SearchHandler
	History      *handler.HistoryHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, accessVerifier *token.Manager, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	auth := middleware.RequireAuth(accessVerifier)
	optionalAuth := middleware.OptionalAuth(accessVerifier)

	authLimit := middleware.NewAuthRateLimiter().Handler()
	uploadLimit := middleware.NewUploadRateLimiter().Handler()
	toggleLimit := middleware.NewToggleRateLimiter().Handler()
	searchLimit := middleware.NewSearchRateLimiter().Handler()
	apiLimit := middleware.NewAPIRateLimiter().Handler()

	// Health and metrics (outside the API group, no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api/v1", apiLimit)

	// Account and session
	users := api.Group("/users")
	users.Post("/register", h.User.Register, authLimit)
	users.Post("/login", h.User.Login, authLimit)
	users.Post("/refresh-token", h.User.Refresh, authLimit)
	users.Post("/logout", h.User.Logout, auth)
	users.Get("/me", h.User.Me, auth)
	users.Patch("/me", h.User.UpdateProfile, auth)
	users.Delete("/me", h.User.DeleteAccount, auth)
	users.Post("/change-password", h.User.ChangePassword, auth)
	users.Patch("/avatar", h.User.UpdateAvatar, auth, uploadLimit)
	users.Patch("/cover-image", h.User.UpdateCover, auth, uploadLimit)
	users.Get("/history", h.History.List, auth)
	users.Delete("/history", h.History.Clear, auth)

	// Videos and comments
	api.Get("/videos", h.Video.Feed)
	api.Post("/videos", h.Video.Upload, auth, uploadLimit)
	api.Get("/videos/:videoId", h.Video.GetByID, optionalAuth)
	api.Patch("/videos/:videoId", h.Video.Update, auth)
	api.Delete("/videos/:videoId", h.Video.Delete, auth)
	api.Patch("/videos/:videoId/toggle-publish", h.Video.TogglePublish, auth)
	api.Get("/videos/:videoId/comments", h.Comment.List)
	api.Post("/videos/:videoId/comments", h.Comment.Create, auth)
	api.Patch("/comments/:commentId", h.Comment.Update, auth)
	api.Delete("/comments/:commentId", h.Comment.Delete, auth)

	// Tweets
	api.Get("/tweets", h.Tweet.Mine, auth)
	api.Post("/tweets", h.Tweet.Create, auth)
	api.Patch("/tweets/:tweetId", h.Tweet.Update, auth)
	api.Delete("/tweets/:tweetId", h.Tweet.Delete, auth)

	// Playlists
	api.Post("/playlists", h.Playlist.Create, auth)
	api.Get("/playlists/:playlistId", h.Playlist.GetByID)
	api.Patch("/playlists/:playlistId", h.Playlist.Update, auth)
	api.Delete("/playlists/:playlistId", h.Playlist.Delete, auth)
	api.Post("/playlists/:playlistId/videos/:videoId", h.Playlist.AddVideo, auth)
	api.Delete("/playlists/:playlistId/videos/:videoId", h.Playlist.RemoveVideo, auth)

	// Reactions and subscriptions
	api.Post("/reactions/:targetKind/:targetId", h.Reaction.Toggle, auth, toggleLimit)
	api.Post("/subscriptions/:channelId/toggle", h.Subscription.Toggle, auth, toggleLimit)

	// Channel pages
	api.Get("/channels/stats", h.Channel.Stats, auth)
	api.Get("/channels/:username", h.Channel.Profile, optionalAuth)
	api.Get("/channels/:username/videos", h.Channel.Videos)
	api.Get("/channels/:username/playlists", h.Channel.Playlists)
	api.Get("/channels/:username/tweets", h.Channel.Tweets)
	api.Get("/channels/:username/followings", h.Channel.Followings)

	// Search
	api.Get("/search", h.Search.Search, searchLimit)
}
