package handlers

import (
	"net/http"
)

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("CloudPix Backend API is running!"))
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteServerError(w, "База данных недоступна", err)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
