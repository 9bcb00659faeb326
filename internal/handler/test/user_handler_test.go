package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cloudpix/internal/models"
	"cloudpix/internal/repository"
	"cloudpix/internal/service"
)

func withUserID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestFollowUser_Self(t *testing.T) {
	handler, services := createTestHandler()

	services.social.On("Follow", mock.Anything, int64(1), int64(1)).
		Return(service.ErrSelfFollow)

	req := httptest.NewRequest(http.MethodPost, "/api/users/1/follow", nil)
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, withUserID(withCaller(req, 1), "1"))

	assertJSONError(t, rr, http.StatusBadRequest, "Нельзя подписаться на самого себя")
}

func TestFollowUser_Duplicate(t *testing.T) {
	handler, services := createTestHandler()

	services.social.On("Follow", mock.Anything, int64(1), int64(2)).
		Return(fmt.Errorf("подписка уже существует: %w", repository.ErrAlreadyExists))

	req := httptest.NewRequest(http.MethodPost, "/api/users/2/follow", nil)
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, withUserID(withCaller(req, 1), "2"))

	assertJSONError(t, rr, http.StatusConflict, "Вы уже подписаны на этого пользователя")
}

func TestFollowUser_Success(t *testing.T) {
	handler, services := createTestHandler()

	services.social.On("Follow", mock.Anything, int64(1), int64(2)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/2/follow", nil)
	rr := httptest.NewRecorder()

	handler.FollowUser(rr, withUserID(withCaller(req, 1), "2"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	services.social.AssertExpectations(t)
}

func TestUnfollowUser_NotFound(t *testing.T) {
	handler, services := createTestHandler()

	services.social.On("Unfollow", mock.Anything, int64(1), int64(2)).
		Return(fmt.Errorf("подписка не найдена: %w", repository.ErrNotFound))

	req := httptest.NewRequest(http.MethodDelete, "/api/users/2/unfollow", nil)
	rr := httptest.NewRecorder()

	handler.UnfollowUser(rr, withUserID(withCaller(req, 1), "2"))

	assertJSONError(t, rr, http.StatusNotFound, "Вы не были подписаны на этого пользователя")
}

func TestGetSuggestions(t *testing.T) {
	handler, services := createTestHandler()

	services.social.On("GetSuggestions", mock.Anything, int64(1)).
		Return([]models.Suggestion{
			{UserID: 2, Username: "bob"},
			{UserID: 3, Username: "carol"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/suggestions", nil)
	rr := httptest.NewRecorder()

	handler.GetSuggestions(rr, withCaller(req, 1))

	assert.Equal(t, http.StatusOK, rr.Code)

	var suggestions []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggestions))
	assert.Len(t, suggestions, 2)
	assert.Equal(t, "bob", suggestions[0]["username"])
}

func TestGetMyPosts(t *testing.T) {
	handler, services := createTestHandler()

	services.media.On("GetUserPosts", mock.Anything, int64(1)).
		Return([]models.Media{
			{MediaID: 10, Title: "sunset", UserID: 1},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/posts", nil)
	rr := httptest.NewRecorder()

	handler.GetMyPosts(rr, withCaller(req, 1))

	assert.Equal(t, http.StatusOK, rr.Code)

	var posts []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	assert.Len(t, posts, 1)
	assert.Equal(t, "sunset", posts[0]["title"])
}

func TestGetMyPosts_NoCaller(t *testing.T) {
	handler, services := createTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/posts", nil)
	rr := httptest.NewRecorder()

	handler.GetMyPosts(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "Требуется авторизация")
	services.media.AssertNotCalled(t, "GetUserPosts")
}
