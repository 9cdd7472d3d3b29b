package requests

type CreatePaymentIntent struct {
	Price int `json:"price" validate:"required,gt=0"`
}

type RecordPayment struct {
	BookingID     string `json:"bookingId" validate:"required"`
	Email         string `json:"email"`
	Amount        int    `json:"price" validate:"gte=0"`
	TransactionID string `json:"transactionId" validate:"required"`
}
