package paymentgateway

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stripeService struct {
	secretKey  string
	baseUrl    string
	dryRun     bool
	httpClient *http.Client
	Log        *zap.Logger
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	return &stripeService{
		secretKey:  internalConfig.Stripe.SecretKey,
		baseUrl:    strings.TrimRight(internalConfig.Stripe.BaseUrl, "/"),
		dryRun:     internalConfig.Stripe.DryRun,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		Log:        logger,
	}
}

// CreatePaymentIntent creates a card-only usd payment intent and returns the
// client secret the frontend needs to confirm the payment.
func (s *stripeService) CreatePaymentIntent(ctx context.Context, amountCents int64) (*responses.StripePaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if s.dryRun {
		fakeID := "pi_dryrun_" + uuid.NewString()[:8]
		s.Log.Info("stripeService.CreatePaymentIntent dry run, skipping gateway call",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64("amount_cents", amountCents),
		)
		return &responses.StripePaymentIntent{
			ID:           fakeID,
			ClientSecret: fakeID + "_secret",
		}, nil
	}

	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", amountCents))
	form.Set("currency", constvars.StripeCurrencyUSD)
	form.Set("payment_method_types[]", constvars.StripePaymentMethodTypeCard)

	endpoint := s.baseUrl + constvars.StripePaymentIntentsEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrStripeCreatePaymentIntent(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+s.secretKey)
	req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrStripeCreatePaymentIntent(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("stripe returned status %d: %s", resp.StatusCode, string(body))
		s.Log.Error("stripeService.CreatePaymentIntent gateway rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrStripeCreatePaymentIntent(err)
	}

	var paymentIntent responses.StripePaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&paymentIntent); err != nil {
		return nil, exceptions.ErrStripeDecodeResponse(err)
	}

	s.Log.Info("stripeService.CreatePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, paymentIntent.ID),
	)
	return &paymentIntent, nil
}
