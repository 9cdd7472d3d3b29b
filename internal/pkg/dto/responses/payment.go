package responses

// PaymentIntent is the top-level payment intent body the checkout form reads.
type PaymentIntent struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ClientSecret string `json:"clientSecret"`
}

// StripePaymentIntent is the subset of the Stripe API response the service
// consumes.
type StripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}
