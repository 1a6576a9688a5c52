package service

import (
	"context"
	"fmt"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
)

// ReactionService enforces the like/dislike state machine. One code path
// serves all three target kinds so mutual exclusivity cannot drift
// between them.
type ReactionService struct {
	reactions *repository.ReactionRepo
}

func NewReactionService(reactions *repository.ReactionRepo) *ReactionService {
	return &ReactionService{reactions: reactions}
}

// Toggle flips the actor's reaction of the desired kind on the target.
// Toggling the kind that already exists removes it; toggling the other
// kind replaces it. Exactly one store write either way.
func (s *ReactionService) Toggle(ctx context.Context, actorID string, targetKind model.TargetKind, targetID string, desired model.ReactionKind) (*model.ToggleResponse, error) {
	if !targetKind.Valid() {
		return nil, fmt.Errorf("target kind %q: %w", targetKind, apperr.ErrInvalidInput)
	}
	if !desired.Valid() {
		return nil, fmt.Errorf("reaction kind %q: %w", desired, apperr.ErrInvalidInput)
	}

	exists, err := s.reactions.TargetExists(ctx, targetKind, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s %s: %w", targetKind, targetID, apperr.ErrNotFound)
	}

	state, err := s.reactions.Toggle(ctx, actorID, targetKind, targetID, desired)
	if err != nil {
		return nil, err
	}

	return &model.ToggleResponse{State: state, Kind: desired}, nil
}
