package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/core/admin"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/payments"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/bookingqueue"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/paymentgateway"
	redisRepo "medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/shared/session"
	minioStorage "medibook-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	objectStorage := minioStorage.NewMinioStorage(minioClient, bootstrap.InternalConfig)
	gatewayService := paymentgateway.NewGatewayService(bootstrap.InternalConfig, bootstrap.Logger)

	eventPublisher, err := bookingqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize appointment events queue: %v", err)
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	adminUsecase := admin.NewAdminUsecase(doctorMongoRepository, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		sessionService,
		lockerService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentMongoRepository,
		gatewayService,
		sessionService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, appointmentUsecase, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, appointmentUsecase)
	adminController := controllers.NewAdminController(bootstrap.Logger, adminUsecase, bootstrap.InternalConfig)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, userController, doctorController, adminController, paymentController)
}
