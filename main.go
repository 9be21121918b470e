package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryoflow/config"
	"cryoflow/handlers"
	"cryoflow/middleware"
	"cryoflow/routes"
	"cryoflow/services/facility"
	"cryoflow/services/faq"
	"cryoflow/services/intake"
	"cryoflow/services/mailer"
	"cryoflow/services/records"
	"cryoflow/utils"

	"github.com/gin-gonic/gin"
)

const version = "1.2.0"

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	redisClient := utils.InitRedis()

	ctx := context.Background()
	recorder, err := records.NewSheetsRecorder(
		ctx,
		config.AppConfig.SheetsCredentialsFile,
		config.AppConfig.SheetsSpreadsheetID,
		config.AppConfig.SheetsRange,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sheets recorder: %v", err)
	}

	confirmationMailer := mailer.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
		config.AppConfig.MailFrom,
	)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Services.
	facilityStore := facility.NewStore(
		config.FacilityCacheTTL(),
		facility.DefaultLoader(config.FacilityRefreshDelay()),
		nil,
	)

	intakeService := &intake.DefaultIntakeService{
		Recorder: recorder,
		Mailer:   confirmationMailer,
		Validator: intake.Validator{
			MinNameWords:  config.AppConfig.NameMinWords,
			MaxNameWords:  config.AppConfig.NameMaxWords,
			DefaultRegion: config.AppConfig.PhoneDefaultRegion,
		},
		Logger: logger,
	}

	faqService := &faq.DefaultFAQService{
		Facilities: facilityStore,
		Logger:     logger,
	}

	faqLimiter := middleware.NewWindowLimiter(
		redisClient,
		config.RateLimitWindow(),
		config.AppConfig.RateLimitMax,
	)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Intake:     handlers.NewIntakeHandler(intakeService),
		FAQ:        handlers.NewFAQHandler(faqService),
		Health:     handlers.NewHealthHandler(facilityStore, version),
		FAQLimiter: middleware.FixedWindowMiddleware(faqLimiter, faq.RateLimitedMessage()),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
