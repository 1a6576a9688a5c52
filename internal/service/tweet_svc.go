package service

import (
	"context"
	"fmt"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
)

// TweetService owns short text posts. Edits and deletes are owner only.
type TweetService struct {
	tweets *repository.TweetRepo
}

func NewTweetService(tweets *repository.TweetRepo) *TweetService {
	return &TweetService{tweets: tweets}
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*model.Tweet, error) {
	tweet := &model.Tweet{Content: content, OwnerID: ownerID}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) Update(ctx context.Context, tweetID, userID, content string) (*model.Tweet, error) {
	tweet, err := s.requireOwner(ctx, tweetID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.tweets.Update(ctx, tweet.ID, content); err != nil {
		return nil, err
	}
	return s.tweets.FindByID(ctx, tweet.ID)
}

func (s *TweetService) Delete(ctx context.Context, tweetID, userID string) error {
	tweet, err := s.requireOwner(ctx, tweetID, userID)
	if err != nil {
		return err
	}
	return s.tweets.Delete(ctx, tweet.ID)
}

func (s *TweetService) ListByOwner(ctx context.Context, ownerID string) ([]model.Tweet, error) {
	return s.tweets.ListByOwner(ctx, ownerID)
}

func (s *TweetService) requireOwner(ctx context.Context, tweetID, userID string) (*model.Tweet, error) {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, fmt.Errorf("not the tweet owner: %w", apperr.ErrForbidden)
	}
	return tweet, nil
}
