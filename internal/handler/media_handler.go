package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cloudpix/internal/repository"
)

type UploadResponse struct {
	Message  string `json:"message"`
	MediaID  int64  `json:"mediaId"`
	FilePath string `json:"filePath"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type RatingRequest struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

type UpdateMediaRequest struct {
	Title   string  `json:"title" validate:"required"`
	Caption *string `json:"caption"`
}

// allowed upload formats
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	// getting the file
	file, fileHeader, err := r.FormFile("mediaFile")
	if err != nil {
		WriteError(w, "Файл не загружен", http.StatusBadRequest)
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		WriteError(w, "Отсутствует заголовок", http.StatusBadRequest)
		return
	}

	// check formats
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP, MP4, WebM, MOV", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateMediaRequest{
		Title:    title,
		Caption:  optionalFormValue(r, "caption"),
		Location: optionalFormValue(r, "location"),
		People:   optionalFormValue(r, "people"),
	}

	media, err := h.MediaService.Upload(r.Context(), userID, serviceReq, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		WriteServerError(w, "Ошибка загрузки файла", err)
		return
	}

	response := UploadResponse{
		Message:  "Файл успешно загружен!",
		MediaID:  media.MediaID,
		FilePath: media.FilePath,
	}

	WriteJSON(w, response, http.StatusCreated)
}

func optionalFormValue(r *http.Request, key string) *string {
	value := r.FormValue(key)
	if value == "" {
		return nil
	}
	return &value
}

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	items, err := h.MediaService.GetFeed(r.Context(), userID)
	if err != nil {
		WriteServerError(w, "Ошибка при получении ленты", err)
		return
	}

	WriteJSON(w, items, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		WriteError(w, "Текст комментария обязателен", http.StatusBadRequest)
		return
	}

	comment, err := h.MediaService.AddComment(r.Context(), userID, mediaID, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteServerError(w, "Ошибка при добавлении комментария", err)
		}
		return
	}

	WriteJSON(w, map[string]interface{}{
		"message":   "Комментарий успешно добавлен!",
		"commentId": comment.CommentID,
	}, http.StatusCreated)
}

func (h *Handlers) AddRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// value range verification
	if req.Value < 1 || req.Value > 5 {
		WriteError(w, "Оценка должна быть от 1 до 5", http.StatusBadRequest)
		return
	}

	_, err = h.MediaService.AddRating(r.Context(), userID, mediaID, req.Value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteServerError(w, "Ошибка при сохранении оценки", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Оценка успешно сохранена!"}, http.StatusCreated)
}

func (h *Handlers) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req UpdateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		WriteError(w, "Отсутствует заголовок", http.StatusBadRequest)
		return
	}

	// updating the post, ownership is enforced by the repository
	if err := h.MediaService.UpdateMedia(r.Context(), mediaID, userID, req.Title, req.Caption); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else if errors.Is(err, repository.ErrForbidden) {
			WriteError(w, "Доступ запрещен: вы не являетесь владельцем поста", http.StatusForbidden)
		} else {
			WriteServerError(w, "Ошибка при обновлении поста", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Пост успешно обновлен."}, http.StatusOK)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := h.MediaService.DeleteMedia(r.Context(), mediaID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else if errors.Is(err, repository.ErrForbidden) {
			WriteError(w, "Доступ запрещен: вы не являетесь владельцем поста", http.StatusForbidden)
		} else {
			WriteServerError(w, "Ошибка при удалении поста", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Пост успешно удален."}, http.StatusOK)
}

func (h *Handlers) LikeMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := h.MediaService.Like(r.Context(), userID, mediaID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			WriteError(w, "Лайк уже поставлен", http.StatusConflict)
		} else if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteServerError(w, "Ошибка при добавлении лайка", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Лайк успешно поставлен."}, http.StatusCreated)
}

func (h *Handlers) UnlikeMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := h.MediaService.Unlike(r.Context(), userID, mediaID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Лайк не найден", http.StatusNotFound)
		} else {
			WriteServerError(w, "Ошибка при удалении лайка", err)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Лайк успешно удален."}, http.StatusOK)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	comments, err := h.MediaService.GetComments(r.Context(), mediaID)
	if err != nil {
		WriteServerError(w, "Ошибка при получении комментариев", err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}
