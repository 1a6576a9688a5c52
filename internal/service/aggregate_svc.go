package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
)

// AggregateService renders the derived, joined views: channel pages,
// channel stats, video detail, playlist detail, followings, and the
// public feed. It never stores counts; every number is recomputed from
// the relations on each request.
type AggregateService struct {
	users     *repository.UserRepo
	videos    *repository.VideoRepo
	comments  *repository.CommentRepo
	tweets    *repository.TweetRepo
	playlists *repository.PlaylistRepo
	subs      *repository.SubscriptionRepo
	reactions *repository.ReactionRepo
	cache     *CacheService
	history   *HistoryService
}

func NewAggregateService(
	users *repository.UserRepo,
	videos *repository.VideoRepo,
	comments *repository.CommentRepo,
	tweets *repository.TweetRepo,
	playlists *repository.PlaylistRepo,
	subs *repository.SubscriptionRepo,
	reactions *repository.ReactionRepo,
	cache *CacheService,
	history *HistoryService,
) *AggregateService {
	return &AggregateService{
		users:     users,
		videos:    videos,
		comments:  comments,
		tweets:    tweets,
		playlists: playlists,
		subs:      subs,
		reactions: reactions,
		cache:     cache,
		history:   history,
	}
}

// ChannelProfile resolves a channel page by username: public fields plus
// subscriber counts and, for a known viewer, whether they subscribe.
// The anonymous projection is served cache-aside; viewer-specific results
// are always recomputed.
func (s *AggregateService) ChannelProfile(ctx context.Context, username, viewerID string) (*model.ChannelProfile, error) {
	if viewerID == "" && s.cache != nil {
		cached, err := s.cache.GetChannel(ctx, username)
		if err != nil {
			log.Printf("cache: channel get error: %v", err)
		} else if cached != nil {
			var profile model.ChannelProfile
			if err := json.Unmarshal(cached, &profile); err == nil {
				return &profile, nil
			}
		}
	}

	channel, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subs.CountForChannel(ctx, channel.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := s.subs.CountForSubscriber(ctx, channel.ID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != "" {
		isSubscribed, err = s.subs.Exists(ctx, viewerID, channel.ID)
		if err != nil {
			return nil, err
		}
	}

	profile := &model.ChannelProfile{
		ID:                channel.ID,
		Username:          channel.Username,
		FullName:          channel.FullName,
		AvatarURL:         channel.AvatarURL,
		CoverURL:          channel.CoverURL,
		SubscriberCount:   subscribers,
		ChannelSubscribed: subscribedTo,
		IsSubscribed:      isSubscribed,
	}

	if viewerID == "" && s.cache != nil {
		if err := s.cache.SetChannel(ctx, username, profile); err != nil {
			log.Printf("cache: channel set error: %v", err)
		}
	}

	return profile, nil
}

// ChannelStats aggregates the owner's dashboard numbers. Like and dislike
// totals count reactions the owner has given across all targets, not
// reactions received on the owner's content.
func (s *AggregateService) ChannelStats(ctx context.Context, ownerID string) (*model.ChannelStats, error) {
	videoCount, totalViews, err := s.videos.OwnerTotals(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subs.CountForChannel(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	likes, err := s.reactions.CountByActor(ctx, ownerID, model.ReactionLike)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.reactions.CountByActor(ctx, ownerID, model.ReactionDislike)
	if err != nil {
		return nil, err
	}

	return &model.ChannelStats{
		TotalVideoViews:  totalViews,
		TotalSubscribers: subscribers,
		TotalVideos:      videoCount,
		TotalLikes:       likes,
		TotalDislikes:    dislikes,
	}, nil
}

// VideoDetail joins a video with its comments and reactions. A successful
// fetch counts as a view: the view counter is incremented, and when the
// viewer is known the video moves to the front of their watch history.
// Not idempotent by design.
func (s *AggregateService) VideoDetail(ctx context.Context, videoID, viewerID string) (*model.VideoDetail, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	likes, err := s.reactions.ListActors(ctx, model.TargetVideo, videoID, model.ReactionLike)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.reactions.ListActors(ctx, model.TargetVideo, videoID, model.ReactionDislike)
	if err != nil {
		return nil, err
	}

	if err := s.videos.IncrementViews(ctx, videoID); err != nil {
		return nil, err
	}
	video.Views++

	if viewerID != "" {
		if err := s.history.Record(ctx, viewerID, videoID); err != nil {
			return nil, err
		}
	}

	return &model.VideoDetail{
		Video:        *video,
		Comments:     comments,
		Likes:        likes,
		Dislikes:     dislikes,
		LikeCount:    len(likes),
		DislikeCount: len(dislikes),
		CommentCount: len(comments),
	}, nil
}

// PlaylistDetail resolves a playlist's members in stored order with each
// video's owner display name, plus totals derived from the member set.
func (s *AggregateService) PlaylistDetail(ctx context.Context, playlistID string) (*model.PlaylistDetail, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.FindByID(ctx, playlist.OwnerID)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.ResolveInOrder(ctx, playlist.Videos)
	if err != nil {
		return nil, err
	}

	var totalViews int64
	for _, v := range videos {
		totalViews += v.Views
	}

	return &model.PlaylistDetail{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedBy:   owner.FullName,
		TotalVideos: len(videos),
		TotalViews:  totalViews,
		Videos:      videos,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}, nil
}

// ChannelVideos projects a channel's videos with a restricted field set.
func (s *AggregateService) ChannelVideos(ctx context.Context, username string) ([]model.VideoSummary, error) {
	channel, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.videos.ListByOwner(ctx, channel.ID)
}

// ChannelPlaylists projects a channel's playlists.
func (s *AggregateService) ChannelPlaylists(ctx context.Context, username string) ([]model.Playlist, error) {
	channel, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.playlists.ListByOwner(ctx, channel.ID)
}

// ChannelTweets projects a channel's tweets.
func (s *AggregateService) ChannelTweets(ctx context.Context, username string) ([]model.Tweet, error) {
	channel, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.tweets.ListByOwner(ctx, channel.ID)
}

// Followings lists the channels a user subscribes to, each resolved to
// its public profile.
func (s *AggregateService) Followings(ctx context.Context, username string) ([]model.Following, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.subs.ListFollowings(ctx, user.ID)
}

// Feed lists all published videos with owner display fields.
func (s *AggregateService) Feed(ctx context.Context) ([]model.VideoSummary, error) {
	return s.videos.ListPublished(ctx)
}
