package routers

import (
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "token", "dtoken", "atoken"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			attachUserRoutes(r, mw, userController, paymentController)
		})

		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, mw, doctorController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, mw, adminController)
		})

		r.Route("/payment", func(r chi.Router) {
			attachPaymentRoutes(r, paymentController)
		})
	})
}
