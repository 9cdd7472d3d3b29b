package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentLimiter *middlewares.RateLimiter, paymentController *controllers.PaymentController) {
	limited := middlewares.RateLimit(paymentLimiter)
	router.With(middlewares.Authenticate, limited).Post("/create-payment-intent", paymentController.CreatePaymentIntent)
	router.With(middlewares.Authenticate, limited).Post("/payments", paymentController.RecordPayment)
}
