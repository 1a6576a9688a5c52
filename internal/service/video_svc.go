package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
)

// VideoService owns video lifecycle: upload, metadata edits, publish
// toggling, and deletion with full cleanup of dependent rows and stored
// media.
type VideoService struct {
	videos *repository.VideoRepo
	assets *AssetService
}

func NewVideoService(videos *repository.VideoRepo, assets *AssetService) *VideoService {
	return &VideoService{videos: videos, assets: assets}
}

// Upload stores the media and thumbnail objects, then creates the video
// record. New videos start published.
func (s *VideoService) Upload(ctx context.Context, ownerID string, req model.UploadVideoRequest, media, thumb *FileUpload) (*model.Video, error) {
	if media == nil || thumb == nil {
		return nil, fmt.Errorf("video and thumbnail files are required: %w", apperr.ErrInvalidInput)
	}

	mediaAsset, err := s.assets.Upload(ctx, "videos", media.Reader, media.Size, media.ContentType)
	if err != nil {
		return nil, err
	}
	thumbAsset, err := s.assets.Upload(ctx, "thumbnails", thumb.Reader, thumb.Size, thumb.ContentType)
	if err != nil {
		s.discard(ctx, mediaAsset.ID)
		return nil, err
	}

	video := &model.Video{
		Title:        req.Title,
		Description:  req.Description,
		VideoAssetID: mediaAsset.ID,
		VideoURL:     mediaAsset.URL,
		ThumbAssetID: thumbAsset.ID,
		ThumbURL:     thumbAsset.URL,
		OwnerID:      ownerID,
		IsPublished:  true,
		Duration:     req.Duration,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		s.discard(ctx, mediaAsset.ID, thumbAsset.ID)
		return nil, err
	}
	return video, nil
}

// Update edits title and description. Owner only.
func (s *VideoService) Update(ctx context.Context, videoID, userID string, req model.UpdateVideoRequest) (*model.Video, error) {
	video, err := s.requireOwner(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.videos.Update(ctx, video.ID, req.Title, req.Description); err != nil {
		return nil, err
	}
	return s.videos.FindByID(ctx, video.ID)
}

// TogglePublish flips the publish flag and returns the new state.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, userID string) (bool, error) {
	video, err := s.requireOwner(ctx, videoID, userID)
	if err != nil {
		return false, err
	}
	return s.videos.TogglePublish(ctx, video.ID)
}

// Delete removes the video, its comments and reactions, and every playlist
// and watch history entry pointing at it. Stored media is cleaned up after
// the database work commits.
func (s *VideoService) Delete(ctx context.Context, videoID, userID string) error {
	video, err := s.requireOwner(ctx, videoID, userID)
	if err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, video.ID); err != nil {
		return err
	}
	s.discard(ctx, video.VideoAssetID, video.ThumbAssetID)
	return nil
}

func (s *VideoService) requireOwner(ctx context.Context, videoID, userID string) (*model.Video, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, fmt.Errorf("not the video owner: %w", apperr.ErrForbidden)
	}
	return video, nil
}

func (s *VideoService) discard(ctx context.Context, assetIDs ...string) {
	for _, id := range assetIDs {
		if id == "" {
			continue
		}
		if err := s.assets.Delete(ctx, id); err != nil {
			log.Printf("asset: delete %s failed: %v", id, err)
		}
	}
}
