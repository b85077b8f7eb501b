package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, mw *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.Post("/login", adminController.Login)

	router.With(mw.AuthenticateAdmin).Post("/add-doctor", adminController.AddDoctor)
	router.With(mw.AuthenticateAdmin).Get("/all-doctors", adminController.AllDoctors)
	router.With(mw.AuthenticateAdmin).Post("/change-availability", adminController.ChangeAvailability)
}
