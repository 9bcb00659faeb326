package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"cloudpix/internal/config"
	"cloudpix/internal/database"
	"cloudpix/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	MediaService  service.MediaService
	SocialService service.SocialService
	DB            *database.DB
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   services.Auth,
		MediaService:  services.Media,
		SocialService: services.Social,
		DB:            db,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

// callerID returns the user id that the auth middleware put on the context.
func callerID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value("userID").(int64)
	return userID, ok
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
