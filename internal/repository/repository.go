package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"cloudpix/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, mediaID int64) (*models.Media, error)
	GetFeed(ctx context.Context, callerID int64) ([]models.FeedItem, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Media, error)
	UpdateOwned(ctx context.Context, mediaID, userID int64, title string, caption *string) error
	DeleteOwned(ctx context.Context, mediaID, userID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByMediaID(ctx context.Context, mediaID int64) ([]models.CommentWithAuthor, error)
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
}

type LikeRepository interface {
	Create(ctx context.Context, userID, mediaID int64) error
	Delete(ctx context.Context, userID, mediaID int64) error
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
	GetSuggestions(ctx context.Context, userID int64, limit int) ([]models.Suggestion, error)
}

type Repository struct {
	User    UserRepository
	Media   MediaRepository
	Comment CommentRepository
	Rating  RatingRepository
	Like    LikeRepository
	Follow  FollowRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Media:   NewMediaRepository(db),
		Comment: NewCommentRepository(db),
		Rating:  NewRatingRepository(db),
		Like:    NewLikeRepository(db),
		Follow:  NewFollowRepository(db),
	}
}
