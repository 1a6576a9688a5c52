package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
)

// SearchService runs case-insensitive substring search over channels and
// published videos in one call.
type SearchService struct {
	users  *repository.UserRepo
	videos *repository.VideoRepo
}

func NewSearchService(users *repository.UserRepo, videos *repository.VideoRepo) *SearchService {
	return &SearchService{users: users, videos: videos}
}

// Search matches the query against usernames, full names, video titles
// and descriptions. Unpublished videos never appear in results.
func (s *SearchService) Search(ctx context.Context, query string) (*model.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query: %w", apperr.ErrInvalidInput)
	}

	users, err := s.users.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.SearchPublished(ctx, query)
	if err != nil {
		return nil, err
	}

	return &model.SearchResponse{Users: users, Videos: videos}, nil
}
