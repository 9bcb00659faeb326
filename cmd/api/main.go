package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"cloudpix/cmd/app"
	"cloudpix/internal/config"
	handlers "cloudpix/internal/handler"
	"cloudpix/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/api/media/upload", handler.UploadMedia).Methods(http.MethodPost)
	router.HandleFunc("/api/media", handler.GetFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/media/{id:[0-9]+}/comment", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/api/media/{id:[0-9]+}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/media/{id:[0-9]+}/rate", handler.AddRating).Methods(http.MethodPost)
	router.HandleFunc("/api/media/{id:[0-9]+}/like", handler.LikeMedia).Methods(http.MethodPost)
	router.HandleFunc("/api/media/{id:[0-9]+}/unlike", handler.UnlikeMedia).Methods(http.MethodDelete)
	router.HandleFunc("/api/media/{id:[0-9]+}", handler.UpdateMedia).Methods(http.MethodPut)
	router.HandleFunc("/api/media/{id:[0-9]+}", handler.DeleteMedia).Methods(http.MethodDelete)

	router.HandleFunc("/api/users/me/posts", handler.GetMyPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/users/suggestions", handler.GetSuggestions).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id:[0-9]+}/follow", handler.FollowUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id:[0-9]+}/unfollow", handler.UnfollowUser).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
