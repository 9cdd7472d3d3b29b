package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/", userController.CreateUser)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", userController.GetUsers)
	router.With(middlewares.Authenticate).Get("/admin/{email}", userController.CheckAdmin)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/admin/{userID}", userController.PromoteToAdmin)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{userID}", userController.DeleteUser)
}
