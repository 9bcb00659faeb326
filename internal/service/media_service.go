package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloudpix/internal/config"
	"cloudpix/internal/models"
	"cloudpix/internal/repository"
	"cloudpix/internal/storage"
)

type MediaService interface {
	Upload(ctx context.Context, userID int64, req repository.CreateMediaRequest, fileName string, file io.Reader, size int64, contentType string) (*models.Media, error)
	GetFeed(ctx context.Context, callerID int64) ([]models.FeedItem, error)
	GetUserPosts(ctx context.Context, userID int64) ([]models.Media, error)
	AddComment(ctx context.Context, userID, mediaID int64, text string) (*models.Comment, error)
	AddRating(ctx context.Context, userID, mediaID int64, value int) (*models.Rating, error)
	UpdateMedia(ctx context.Context, mediaID, userID int64, title string, caption *string) error
	DeleteMedia(ctx context.Context, mediaID, userID int64) error
	Like(ctx context.Context, userID, mediaID int64) error
	Unlike(ctx context.Context, userID, mediaID int64) error
	GetComments(ctx context.Context, mediaID int64) ([]models.CommentWithAuthor, error)
}

type mediaService struct {
	mediaRepo   repository.MediaRepository
	commentRepo repository.CommentRepository
	ratingRepo  repository.RatingRepository
	likeRepo    repository.LikeRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewMediaService(
	mediaRepo repository.MediaRepository,
	commentRepo repository.CommentRepository,
	ratingRepo repository.RatingRepository,
	likeRepo repository.LikeRepository,
	storage storage.Storage,
	cfg *config.Config,
) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		likeRepo:    likeRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

// Upload stores the file first, then the post row. If the row insert
// fails the object is removed so storage does not accumulate orphans.
func (p *mediaService) Upload(ctx context.Context, userID int64, req repository.CreateMediaRequest, fileName string, file io.Reader, size int64, contentType string) (*models.Media, error) {
	objectName, fileURL, err := p.storage.UploadMedia(ctx, fileName, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки файла в MinIO: %w", err)
	}

	media := &models.Media{
		Title:     req.Title,
		Caption:   req.Caption,
		Location:  req.Location,
		People:    req.People,
		FilePath:  fileURL,
		MediaType: mediaTypeFromContentType(contentType),
		UserID:    userID,
	}

	err = p.mediaRepo.Create(ctx, media)
	if err != nil {
		p.storage.DeleteMedia(ctx, objectName)
		return nil, err
	}

	return media, nil
}

func mediaTypeFromContentType(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}

func (p *mediaService) GetFeed(ctx context.Context, callerID int64) ([]models.FeedItem, error) {
	return p.mediaRepo.GetFeed(ctx, callerID)
}

func (p *mediaService) GetUserPosts(ctx context.Context, userID int64) ([]models.Media, error) {
	return p.mediaRepo.GetByUserID(ctx, userID)
}

func (p *mediaService) AddComment(ctx context.Context, userID, mediaID int64, text string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:    text,
		MediaID: mediaID,
		UserID:  userID,
	}

	err := p.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (p *mediaService) AddRating(ctx context.Context, userID, mediaID int64, value int) (*models.Rating, error) {
	rating := &models.Rating{
		Value:   value,
		MediaID: mediaID,
		UserID:  userID,
	}

	err := p.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		return nil, err
	}

	return rating, nil
}

func (p *mediaService) UpdateMedia(ctx context.Context, mediaID, userID int64, title string, caption *string) error {
	return p.mediaRepo.UpdateOwned(ctx, mediaID, userID, title, caption)
}

// DeleteMedia removes only the post row. The stored object stays:
// file cleanup belongs to the storage lifecycle, not this request.
func (p *mediaService) DeleteMedia(ctx context.Context, mediaID, userID int64) error {
	return p.mediaRepo.DeleteOwned(ctx, mediaID, userID)
}

func (p *mediaService) Like(ctx context.Context, userID, mediaID int64) error {
	return p.likeRepo.Create(ctx, userID, mediaID)
}

func (p *mediaService) Unlike(ctx context.Context, userID, mediaID int64) error {
	return p.likeRepo.Delete(ctx, userID, mediaID)
}

func (p *mediaService) GetComments(ctx context.Context, mediaID int64) ([]models.CommentWithAuthor, error) {
	return p.commentRepo.GetByMediaID(ctx, mediaID)
}
