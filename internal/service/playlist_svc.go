package service

import (
	"context"
	"fmt"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
	"github.com/Sukomal07/videohub/pkg/orderedset"
)

// PlaylistService owns playlist lifecycle and membership ordering. The
// member list is an ordered set: newest additions go to the front, and a
// video appears at most once no matter how many times it is re-added.
type PlaylistService struct {
	playlists *repository.PlaylistRepo
	videos    *repository.VideoRepo
}

func NewPlaylistService(playlists *repository.PlaylistRepo, videos *repository.VideoRepo) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID string, req model.PlaylistRequest) (*model.Playlist, error) {
	playlist := &model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
		Videos:      []string{},
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, userID string, req model.PlaylistRequest) (*model.Playlist, error) {
	playlist, err := s.requireOwner(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.playlists.Update(ctx, playlist.ID, req.Name, req.Description); err != nil {
		return nil, err
	}
	return s.playlists.FindByID(ctx, playlist.ID)
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, userID string) error {
	playlist, err := s.requireOwner(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlist.ID)
}

// AddVideo moves the video to the front of the playlist. Adding a video
// already present repositions it instead of duplicating it.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, userID string) (*model.Playlist, error) {
	playlist, err := s.requireOwner(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, err
	}

	next := orderedset.Prepend(playlist.Videos, videoID)
	if err := s.playlists.SetVideos(ctx, playlist.ID, next); err != nil {
		return nil, err
	}
	playlist.Videos = next
	return playlist, nil
}

// RemoveVideo drops the video from the playlist, preserving the relative
// order of the remaining members.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, userID string) (*model.Playlist, error) {
	playlist, err := s.requireOwner(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}

	next, removed := orderedset.Remove(playlist.Videos, videoID)
	if !removed {
		return nil, fmt.Errorf("video not in playlist: %w", apperr.ErrNotFound)
	}
	if err := s.playlists.SetVideos(ctx, playlist.ID, next); err != nil {
		return nil, err
	}
	playlist.Videos = next
	return playlist, nil
}

func (s *PlaylistService) requireOwner(ctx context.Context, playlistID, userID string) (*model.Playlist, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, fmt.Errorf("not the playlist owner: %w", apperr.ErrForbidden)
	}
	return playlist, nil
}
