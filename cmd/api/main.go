// Entry point for REST API
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"nat.service/internal/api"
	"nat.service/internal/api/handler"
	"nat.service/internal/config"
	"nat.service/internal/core"
	"nat.service/internal/core/session"
	"nat.service/internal/ports/messaging"
	"nat.service/internal/ports/repository"
	"nat.service/pkg/aws"
	"nat.service/pkg/database"
	"nat.service/pkg/logger"
	"nat.service/pkg/telemetry"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	// Configure structured logging
	logger.Setup(cfg.IsLocalDev)

	// Configure OpenTelemetry Tracing
	shutdownTracer, err := telemetry.InitTracer("nat-api")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init tracer")
	}
	defer func() {
		_ = shutdownTracer(context.Background())
	}()

	// DB connection
	db, err := database.NewInstrumentedConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening database")
	}
	defer db.Close()
	log.Info().Msg("Successfully connected to the database.")

	// AWS SDK Config
	awsCfg, err := aws.NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load SDK config")
	}

	// Initialize dependencies
	sqsClient := sqs.NewFromConfig(awsCfg)
	clock := session.NewISTClock()

	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	producer := messaging.NewSQSProducer(sqsClient, cfg.PayrollSQSQueueURL, cfg.EmailSQSQueueURL)
	engine := session.NewEngine(attendanceRepo, producer, clock)

	employeeService := core.NewEmployeeService(employeeRepo, clock)
	attendanceService := core.NewAttendanceService(attendanceRepo, clock)
	taskService := core.NewTaskService(taskRepo, clock)
	adminService := core.NewAdminService(adminRepo, clock)
	auth := core.NewAdminAuth(cfg.AdminPassword, clock)

	// Setup router and server
	router := api.NewRouter(api.Handlers{
		Attendance: &handler.AttendanceHandler{Engine: engine, Attendance: attendanceService},
		Employees:  &handler.EmployeeHandler{Service: employeeService},
		Tasks:      &handler.TaskHandler{Service: taskService},
		Admin: &handler.AdminHandler{
			Auth:       auth,
			Employees:  employeeService,
			Attendance: attendanceService,
			Admin:      adminService,
			Clock:      clock,
		},
		Auth: auth,
	})

	// Middleware to inject logger with trace ID
	loggerMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = logger.EnrichContextWithLogger(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	// Wrap the router with OpenTelemetry middleware to create spans for each request
	h := otelhttp.NewHandler(loggerMiddleware(router), "api")

	serverAddr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: h,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("API Service starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the requests it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
