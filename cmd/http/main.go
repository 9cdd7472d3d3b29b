package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/delivery/http/routers"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/drivers/messaging"
	"doctors-portal-service/internal/app/drivers/storage"
	"doctors-portal-service/internal/app/services/core/appointments"
	"doctors-portal-service/internal/app/services/core/auth"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/doctors"
	"doctors-portal-service/internal/app/services/core/payments"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/app/services/shared/locker"
	"doctors-portal-service/internal/app/services/shared/notification"
	"doctors-portal-service/internal/app/services/shared/paymentgateway"
	redisrepo "doctors-portal-service/internal/app/services/shared/redis"
	miniostorage "doctors-portal-service/internal/app/services/shared/storage"
	"doctors-portal-service/internal/pkg/utils"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	utils.SetDevMode(internalConfig.App.Env != "production")

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	dbName := driverConfig.MongoDB.DbName

	// Repositories
	appointmentOptionRepository := appointments.NewAppointmentOptionMongoRepository(mongoClient, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(mongoClient, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(mongoClient, dbName)
	userRepository := users.NewUserMongoRepository(mongoClient, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(mongoClient, dbName)
	redisRepository := redisrepo.NewRedisRepository(redisClient)

	// Shared services
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	stripeService := paymentgateway.NewStripeService(internalConfig, zapLogger)
	objectStorage := miniostorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)

	notificationService, err := notification.NewBookingQueueService(rabbitConn, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to declare booking confirmation queue", zap.Error(err))
	}

	// Usecases
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentOptionRepository, bookingRepository, zapLogger)
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, appointmentOptionRepository, lockerService, notificationService, internalConfig, zapLogger)
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, bookingRepository, stripeService, zapLogger)
	userUsecase := users.NewUserUsecase(userRepository, zapLogger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, objectStorage, internalConfig, zapLogger)
	authUsecase := auth.NewAuthUsecase(userRepository, internalConfig, zapLogger)

	// Controllers
	appointmentController := controllers.NewAppointmentController(zapLogger, appointmentUsecase)
	bookingController := controllers.NewBookingController(zapLogger, bookingUsecase)
	paymentController := controllers.NewPaymentController(zapLogger, paymentUsecase)
	userController := controllers.NewUserController(zapLogger, userUsecase)
	doctorController := controllers.NewDoctorController(zapLogger, doctorUsecase)
	authController := controllers.NewAuthController(zapLogger, authUsecase)
	healthController := controllers.NewHealthController(zapLogger, mongoClient, redisClient)

	appMiddlewares := middlewares.NewMiddlewares(zapLogger, userUsecase, internalConfig)
	paymentLimiter := middlewares.NewRateLimiter(
		internalConfig.App.PaymentMaxRequestsPerSecond,
		time.Duration(internalConfig.App.PaymentBlockTimeInMinute)*time.Minute,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		appMiddlewares,
		paymentLimiter,
		appointmentController,
		bookingController,
		paymentController,
		userController,
		doctorController,
		authController,
		healthController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("address", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownTimeout := time.Duration(internalConfig.App.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	if err := bootstrap.Shutdown(ctx); err != nil {
		log.Printf("failed to close resources: %v", err)
	}
	log.Println("server stopped gracefully")
}
