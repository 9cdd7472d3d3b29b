package routers

import (
	"bytes"
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func TestBookingRouter_GetBookings(t *testing.T) {
	logger := zap.NewNop()
	testSecret := "test-jwt-secret"

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 24},
	}

	mockBookingUsecase := new(MockBookingUsecase)
	bookingController := controllers.NewBookingController(logger, mockBookingUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?email=jane@example.com", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token email must match query email", func(t *testing.T) {
		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/?email=other@example.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockBookingUsecase.AssertNotCalled(t, "GetBookingsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("own bookings are returned in the envelope", func(t *testing.T) {
		mockBookingUsecase.On("GetBookingsByEmail", mock.Anything, "jane@example.com").Return([]models.Booking{
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-10", Slot: "08.00 AM - 08.30 AM", Email: "jane@example.com"},
		}, nil)

		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/?email=jane@example.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Success bool             `json:"success"`
			Message string           `json:"message"`
			Data    []models.Booking `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, "Teeth Cleaning", body.Data[0].Treatment)
	})
}

func TestBookingRouter_CreateBooking_Validation(t *testing.T) {
	logger := zap.NewNop()

	mockBookingUsecase := new(MockBookingUsecase)
	bookingController := controllers.NewBookingController(logger, mockBookingUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: &config.InternalConfig{},
	}

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)

	t.Run("missing slot is rejected before the usecase runs", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"treatment":       "Teeth Cleaning",
			"appointmentDate": "2026-09-10",
			"email":           "jane@example.com",
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBookingUsecase.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})
}
