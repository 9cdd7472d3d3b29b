package middlewares

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-jwt-secret"

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserUsecase) GetUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserUsecase) PromoteToAdmin(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestMiddlewares(userUsecase *MockUserUsecase) *Middlewares {
	return &Middlewares{
		Log:         zap.NewNop(),
		UserUsecase: userUsecase,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 24},
		},
	}
}

func okHandler(t *testing.T, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(constvars.CONTEXT_AUTH_EMAIL_KEY).(string)
		assert.Equal(t, wantEmail, email)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing token is 401", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		req := httptest.NewRequest("GET", "/bookings", nil)
		rr := httptest.NewRecorder()

		m.Authenticate(okHandler(t, "")).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header is 401", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()

		m.Authenticate(okHandler(t, "")).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is 403", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		m.Authenticate(okHandler(t, "")).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("expired token is 403", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		token, err := utils.GenerateJWT("jane@example.com", testSecret, -time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(okHandler(t, "")).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("token signed with another secret is 403", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		token, err := utils.GenerateJWT("jane@example.com", "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(okHandler(t, "")).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("valid token passes the email downstream", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(okHandler(t, "jane@example.com")).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	passthrough := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		userUsecase.On("IsAdmin", mock.Anything, "admin@example.com").Return(true, nil)
		m := newTestMiddlewares(userUsecase)

		token, err := utils.GenerateJWT("admin@example.com", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/users/64a0", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(m.RequireAdmin(passthrough)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-admin is 403", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		userUsecase.On("IsAdmin", mock.Anything, "jane@example.com").Return(false, nil)
		m := newTestMiddlewares(userUsecase)

		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/users/64a0", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(m.RequireAdmin(passthrough)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing auth context is 401", func(t *testing.T) {
		m := newTestMiddlewares(new(MockUserUsecase))

		req := httptest.NewRequest("DELETE", "/users/64a0", nil)
		rr := httptest.NewRecorder()

		m.RequireAdmin(passthrough).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
