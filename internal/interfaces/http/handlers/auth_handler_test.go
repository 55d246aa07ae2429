package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	loginFn    func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	logoutFn   func(ctx context.Context, sessionID string) error
	getMeFn    func(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return s.getMeFn(ctx, userID)
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{
		registerFn: func(_ context.Context, input *entities.RegisterInput) (*entities.User, error) {
			return &entities.User{ID: uuid.New(), Email: input.Email}, nil
		},
	}
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/register", h.Register)

	body := `{"email":"new@example.com","name":"New User","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Malformed payload.
	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate email.
	svc.registerFn = func(_ context.Context, _ *entities.RegisterInput) (*entities.User, error) {
		return nil, domainerrors.ErrAlreadyExists
	}
	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _ *entities.LoginInput) (*entities.AuthResponse, error) {
			return &entities.AuthResponse{AccessToken: "a", RefreshToken: "r", SessionID: "s"}, nil
		},
	}
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/login", h.Login)

	body := `{"email":"login@example.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accessToken")

	svc.loginFn = func(_ context.Context, _ *entities.LoginInput) (*entities.AuthResponse, error) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			if sessionID == "" {
				return domainerrors.ErrInvalidInput
			}
			return nil
		},
	}
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("X-Session-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	svc := &stubAuthService{
		getMeFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			return &entities.User{ID: id, Email: "me@example.com"}, nil
		},
	}
	h := NewAuthHandler(svc)

	r := gin.New()
	r.GET("/auth/me", authAs(userID, "me@example.com", "user"), h.GetMe)
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "me@example.com")

	// No identity in context.
	r = gin.New()
	r.GET("/auth/me", h.GetMe)
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
