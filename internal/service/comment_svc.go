package service

import (
	"context"
	"fmt"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
)

// CommentService owns comments on videos. Edits and deletes are owner
// only; deletion also clears reactions on the comment.
type CommentService struct {
	comments *repository.CommentRepo
	videos   *repository.VideoRepo
}

func NewCommentService(comments *repository.CommentRepo, videos *repository.VideoRepo) *CommentService {
	return &CommentService{comments: comments, videos: videos}
}

func (s *CommentService) Create(ctx context.Context, videoID, ownerID, content string) (*model.Comment, error) {
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, err
	}
	comment := &model.Comment{Content: content, VideoID: videoID, OwnerID: ownerID}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, commentID, userID, content string) (*model.Comment, error) {
	comment, err := s.requireOwner(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Update(ctx, comment.ID, content); err != nil {
		return nil, err
	}
	return s.comments.FindByID(ctx, comment.ID)
}

func (s *CommentService) Delete(ctx context.Context, commentID, userID string) error {
	comment, err := s.requireOwner(ctx, commentID, userID)
	if err != nil {
		return err
	}
	return s.comments.Delete(ctx, comment.ID)
}

// ListByVideo returns a video's comments with their authors, oldest first.
func (s *CommentService) ListByVideo(ctx context.Context, videoID string) ([]model.CommentWithOwner, error) {
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.comments.ListByVideo(ctx, videoID)
}

func (s *CommentService) requireOwner(ctx context.Context, commentID, userID string) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != userID {
		return nil, fmt.Errorf("not the comment owner: %w", apperr.ErrForbidden)
	}
	return comment, nil
}
