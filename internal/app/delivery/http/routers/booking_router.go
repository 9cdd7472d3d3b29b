package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Get("/", bookingController.GetBookings)
	router.With(middlewares.Authenticate).Get("/{bookingID}", bookingController.GetBookingByID)
}
