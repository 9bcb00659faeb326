package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"cloudpix/internal/repository"
	"cloudpix/internal/service"
)

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	posts, err := h.MediaService.GetUserPosts(r.Context(), userID)
	if err != nil {
		WriteServerError(w, "Ошибка при получении постов пользователя", err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	if err := h.SocialService.Follow(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			WriteError(w, "Нельзя подписаться на самого себя", http.StatusBadRequest)
		} else if errors.Is(err, repository.ErrAlreadyExists) {
			WriteError(w, "Вы уже подписаны на этого пользователя", http.StatusConflict)
		} else if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteServerError(w, "Ошибка при добавлении подписки", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: fmt.Sprintf("Вы подписались на пользователя %d.", targetID)}, http.StatusCreated)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	if err := h.SocialService.Unfollow(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Вы не были подписаны на этого пользователя", http.StatusNotFound)
		} else {
			WriteServerError(w, "Ошибка при удалении подписки", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: fmt.Sprintf("Вы отписались от пользователя %d.", targetID)}, http.StatusOK)
}

func (h *Handlers) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	suggestions, err := h.SocialService.GetSuggestions(r.Context(), userID)
	if err != nil {
		WriteServerError(w, "Ошибка при получении рекомендаций", err)
		return
	}

	WriteJSON(w, suggestions, http.StatusOK)
}
