package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mw *middlewares.Middlewares, userController *controllers.UserController, paymentController *controllers.PaymentController) {
	router.Post("/register", userController.Register)
	router.Post("/login", userController.Login)

	router.With(mw.AuthenticatePatient).Post("/logout", userController.Logout)
	router.With(mw.AuthenticatePatient).Get("/get-profile", userController.GetProfile)
	router.With(mw.AuthenticatePatient).Post("/update-profile", userController.UpdateProfile)
	router.With(mw.AuthenticatePatient).Post("/book-appointment", userController.BookAppointment)
	router.With(mw.AuthenticatePatient).Get("/appointments", userController.ListAppointments)
	router.With(mw.AuthenticatePatient).Post("/cancel-appointment", userController.CancelAppointment)
	router.With(mw.AuthenticatePatient).Post("/payment-intent", paymentController.CreatePaymentIntent)
}
