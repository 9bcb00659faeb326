package test

import (
	"context"
	"io"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"cloudpix/internal/models"
	"cloudpix/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, userID int64, req repository.CreateMediaRequest, fileName string, file io.Reader, size int64, contentType string) (*models.Media, error) {
	args := m.Called(ctx, userID, req, fileName, file, size, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaService) GetFeed(ctx context.Context, callerID int64) ([]models.FeedItem, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

func (m *MockMediaService) GetUserPosts(ctx context.Context, userID int64) ([]models.Media, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockMediaService) AddComment(ctx context.Context, userID, mediaID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, userID, mediaID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockMediaService) AddRating(ctx context.Context, userID, mediaID int64, value int) (*models.Rating, error) {
	args := m.Called(ctx, userID, mediaID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockMediaService) UpdateMedia(ctx context.Context, mediaID, userID int64, title string, caption *string) error {
	args := m.Called(ctx, mediaID, userID, title, caption)
	return args.Error(0)
}

func (m *MockMediaService) DeleteMedia(ctx context.Context, mediaID, userID int64) error {
	args := m.Called(ctx, mediaID, userID)
	return args.Error(0)
}

func (m *MockMediaService) Like(ctx context.Context, userID, mediaID int64) error {
	args := m.Called(ctx, userID, mediaID)
	return args.Error(0)
}

func (m *MockMediaService) Unlike(ctx context.Context, userID, mediaID int64) error {
	args := m.Called(ctx, userID, mediaID)
	return args.Error(0)
}

func (m *MockMediaService) GetComments(ctx context.Context, mediaID int64) ([]models.CommentWithAuthor, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentWithAuthor), args.Error(1)
}

type MockSocialService struct {
	mock.Mock
}

func (m *MockSocialService) Follow(ctx context.Context, callerID, targetID int64) error {
	args := m.Called(ctx, callerID, targetID)
	return args.Error(0)
}

func (m *MockSocialService) Unfollow(ctx context.Context, callerID, targetID int64) error {
	args := m.Called(ctx, callerID, targetID)
	return args.Error(0)
}

func (m *MockSocialService) GetSuggestions(ctx context.Context, callerID int64) ([]models.Suggestion, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suggestion), args.Error(1)
}
