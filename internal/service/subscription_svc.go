package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/repository"
)

// SubscriptionService owns the subscriber/channel relation. Toggle is the
// only mutation: present becomes absent, absent becomes present.
type SubscriptionService struct {
	subs  *repository.SubscriptionRepo
	users *repository.UserRepo
	cache *CacheService
}

func NewSubscriptionService(subs *repository.SubscriptionRepo, users *repository.UserRepo, cache *CacheService) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, cache: cache}
}

// Toggle flips the subscription and returns the resulting state: true when
// the caller now subscribes to the channel.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, fmt.Errorf("cannot subscribe to own channel: %w", apperr.ErrInvalidInput)
	}
	channel, err := s.users.FindByID(ctx, channelID)
	if err != nil {
		return false, err
	}

	existed, err := s.subs.Delete(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	subscribed := false
	if !existed {
		if err := s.subs.Create(ctx, subscriberID, channelID); err != nil {
			return false, err
		}
		subscribed = true
	}

	if s.cache != nil {
		if err := s.cache.InvalidateChannel(ctx, channel.Username); err != nil {
			log.Printf("cache: channel invalidate error: %v", err)
		}
	}
	return subscribed, nil
}
