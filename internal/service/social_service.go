package service

import (
	"context"
	"errors"

	"cloudpix/internal/models"
	"cloudpix/internal/repository"
)

// ErrSelfFollow: подписка на самого себя запрещена инвариантом графа.
var ErrSelfFollow = errors.New("нельзя подписаться на самого себя")

const suggestionsLimit = 5

type SocialService interface {
	Follow(ctx context.Context, callerID, targetID int64) error
	Unfollow(ctx context.Context, callerID, targetID int64) error
	GetSuggestions(ctx context.Context, callerID int64) ([]models.Suggestion, error)
}

type socialService struct {
	followRepo repository.FollowRepository
}

func NewSocialService(followRepo repository.FollowRepository) SocialService {
	return &socialService{followRepo: followRepo}
}

func (s *socialService) Follow(ctx context.Context, callerID, targetID int64) error {
	if callerID == targetID {
		return ErrSelfFollow
	}

	return s.followRepo.Create(ctx, callerID, targetID)
}

func (s *socialService) Unfollow(ctx context.Context, callerID, targetID int64) error {
	return s.followRepo.Delete(ctx, callerID, targetID)
}

func (s *socialService) GetSuggestions(ctx context.Context, callerID int64) ([]models.Suggestion, error) {
	return s.followRepo.GetSuggestions(ctx, callerID, suggestionsLimit)
}
