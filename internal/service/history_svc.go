package service

import (
	"context"

	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
	"github.com/Sukomal07/videohub/pkg/orderedset"
)

// HistoryService maintains each user's recently-watched list: ordered,
// most recent first, no duplicates.
type HistoryService struct {
	users  *repository.UserRepo
	videos *repository.VideoRepo
}

func NewHistoryService(users *repository.UserRepo, videos *repository.VideoRepo) *HistoryService {
	return &HistoryService{users: users, videos: videos}
}

// Record moves videoID to the front of the user's history, removing any
// prior occurrence. Duplicates that slipped into stored data are healed by
// the same pass.
func (s *HistoryService) Record(ctx context.Context, userID, videoID string) error {
	history, err := s.users.GetWatchHistory(ctx, userID)
	if err != nil {
		return err
	}
	return s.users.SetWatchHistory(ctx, userID, orderedset.Prepend(history, videoID))
}

// Clear empties the user's history.
func (s *HistoryService) Clear(ctx context.Context, userID string) error {
	return s.users.SetWatchHistory(ctx, userID, []string{})
}

// List returns the user's history in stored order, each entry resolved to
// its video with the owner's display fields joined in. Entries whose video
// was deleted since are dropped from the result.
func (s *HistoryService) List(ctx context.Context, userID string) ([]model.VideoSummary, error) {
	history, err := s.users.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.videos.ResolveInOrder(ctx, history)
}
