package service

import (
	"cloudpix/internal/config"
	"cloudpix/internal/repository"
	"cloudpix/internal/storage"
)

type Service struct {
	Auth   AuthService
	Media  MediaService
	Social SocialService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, cfg),
		Media:  NewMediaService(rep.Media, rep.Comment, rep.Rating, rep.Like, storage, cfg),
		Social: NewSocialService(rep.Follow),
	}
}
