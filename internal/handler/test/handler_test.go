package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"cloudpix/internal/config"
	handlers "cloudpix/internal/handler"
)

type testServices struct {
	auth   *MockAuthService
	media  *MockMediaService
	social *MockSocialService
}

func createTestHandler() (*handlers.Handlers, *testServices) {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	services := &testServices{
		auth:   new(MockAuthService),
		media:  new(MockMediaService),
		social: new(MockSocialService),
	}

	h := &handlers.Handlers{
		AuthService:   services.auth,
		MediaService:  services.media,
		SocialService: services.social,
		Cfg:           cfg,
		Validate:      validator.New(),
	}

	return h, services
}

// withCaller emulates the auth middleware: puts the caller identity
// on the request context.
func withCaller(req *http.Request, userID int64) *http.Request {
	ctx := req.Context()
	ctx = context.WithValue(ctx, "userID", userID)
	ctx = context.WithValue(ctx, "username", "alice")
	ctx = context.WithValue(ctx, "role", "creator")
	return req.WithContext(ctx)
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], expectedMessage)
}
