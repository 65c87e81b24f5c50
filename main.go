package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/cron"
	"frontdesk/database"
	guestRepoPkg "frontdesk/database/repository/guest"
	reservationRepoPkg "frontdesk/database/repository/reservation"
	roomRepoPkg "frontdesk/database/repository/room"
	"frontdesk/handlers"
	"frontdesk/middleware"
	"frontdesk/routes"
	"frontdesk/services/auth"
	"frontdesk/services/payment"
	"frontdesk/services/reservation"
	"frontdesk/services/room"
	"frontdesk/services/tasks"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	resRepo := reservationRepoPkg.NewMongoReservationRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	guestRepo := guestRepoPkg.NewMongoGuestRepo()

	// services.
	inventoryService := &room.DefaultInventoryService{
		Repo: roomRepo,
	}
	authService := auth.NewAuthorizationService(database.MongoClient.Database("frontdesk"))
	collectorService := &payment.DefaultCollectorService{
		Logger: logger,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()
	sweeper := &tasks.AsynqScheduler{Client: asynqClient}

	reservationService := &reservation.DefaultReservationService{
		Repo:      resRepo,
		Guests:    guestRepo,
		Inventory: inventoryService,
		Auth:      authService,
		Collector: collectorService,
		Sweeper:   sweeper,
		Currency:  config.AppConfig.Currency,
	}

	reservationHandler := handlers.NewReservationHandler(reservationService)
	roomHandler := handlers.NewRoomHandler(inventoryService)
	authHandler := handlers.NewAuthHandler(authService)

	// Register routes.
	routes.RegisterRoutes(router, reservationHandler, roomHandler, authHandler)

	// Background no-show sweep worker.
	cron.InitNoShowWorker(reservationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
