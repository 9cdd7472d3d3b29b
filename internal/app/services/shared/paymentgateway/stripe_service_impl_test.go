package paymentgateway

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStripeService(baseUrl string, dryRun bool) *stripeService {
	return &stripeService{
		secretKey:  "sk_test_123",
		baseUrl:    baseUrl,
		dryRun:     dryRun,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		Log:        zap.NewNop(),
	}
}

func TestStripeService_CreatePaymentIntent(t *testing.T) {
	t.Run("posts a card-only usd intent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "6000", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
		}))
		defer server.Close()

		service := newTestStripeService(server.URL, false)

		intent, err := service.CreatePaymentIntent(context.Background(), 6000)
		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret_456", intent.ClientSecret)
	})

	t.Run("non-2xx becomes a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
		}))
		defer server.Close()

		service := newTestStripeService(server.URL, false)

		intent, err := service.CreatePaymentIntent(context.Background(), 6000)
		assert.Nil(t, intent)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
	})

	t.Run("malformed body becomes a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		service := newTestStripeService(server.URL, false)

		intent, err := service.CreatePaymentIntent(context.Background(), 6000)
		assert.Nil(t, intent)
		assert.Error(t, err)
	})

	t.Run("dry run never touches the gateway", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		service := newTestStripeService(server.URL, true)

		intent, err := service.CreatePaymentIntent(context.Background(), 6000)
		require.NoError(t, err)
		assert.False(t, called)
		assert.NotEmpty(t, intent.ID)
		assert.NotEmpty(t, intent.ClientSecret)
	})
}

func TestNewStripeService_TrimsBaseUrl(t *testing.T) {
	internalConfig := &config.InternalConfig{
		Stripe: config.Stripe{
			SecretKey: "sk_test_123",
			BaseUrl:   "https://api.stripe.com/",
		},
	}

	service := NewStripeService(internalConfig, zap.NewNop()).(*stripeService)
	assert.Equal(t, "https://api.stripe.com", service.baseUrl)
}
