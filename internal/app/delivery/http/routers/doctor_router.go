package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Post("/login", doctorController.Login)
	router.Get("/list", doctorController.List)

	router.With(mw.AuthenticateDoctor).Get("/profile", doctorController.GetProfile)
	router.With(mw.AuthenticateDoctor).Post("/update-profile", doctorController.UpdateProfile)
	router.With(mw.AuthenticateDoctor).Get("/appointments", doctorController.ListAppointments)
	router.With(mw.AuthenticateDoctor).Post("/complete-appointment", doctorController.CompleteAppointment)
	router.With(mw.AuthenticateDoctor).Post("/cancel-appointment", doctorController.CancelAppointment)
	router.With(mw.AuthenticateDoctor).Get("/dashboard", doctorController.Dashboard)
}
