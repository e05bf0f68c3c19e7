package main

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	prometheusClient "github.com/prometheus/client_golang/prometheus"

	_ "github.com/kasarab/user_directory_service/docs"
	handlers "github.com/kasarab/user_directory_service/internal/adapter/handler/http"
	"github.com/kasarab/user_directory_service/internal/adapter/logger"
	"github.com/kasarab/user_directory_service/internal/adapter/memory"
	"github.com/kasarab/user_directory_service/internal/adapter/postgres/repository"
	"github.com/kasarab/user_directory_service/internal/adapter/prometheus"
	"github.com/kasarab/user_directory_service/internal/app"
	"github.com/kasarab/user_directory_service/internal/config"
	"github.com/kasarab/user_directory_service/internal/core/ports"
	"github.com/kasarab/user_directory_service/internal/core/services"
)

const shutdownTimeout = 10 * time.Second

// @title User Directory API
// @version 1.0
// @description CRUD, pagination and birthdate search for user records

// @host localhost:8080
// @BasePath /
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":         cfg.App.Name,
		"env":         cfg.App.Env,
		"storage":     cfg.DB.Driver,
		"minimum_age": cfg.User.MinimumAge,
	})

	// Storage
	var (
		userRepo ports.UserRepository
		storage  io.Closer
	)
	switch cfg.DB.Driver {
	case config.StorageDriverMemory:
		userRepo = memory.NewUserRepository()
	default:
		db, err := openPostgres(cfg.DB)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		storage = db
		userRepo = repository.NewUserRepository(db)
	}

	// Validate
	validate := validator.New()
	if err := handlers.RegisterValidations(validate); err != nil {
		log.Fatal("Failed to register validations: ", err)
	}

	// Observability
	metrics := prometheus.NewPrometheusAdapter(cfg.App.Name, prometheusClient.DefaultRegisterer)

	// User
	userService := services.NewUserService(userRepo, loggerAdapter, services.NewEmailMatcher(), cfg.User.MinimumAge)
	userHandler := handlers.NewUserHandler(userService, loggerAdapter, validate, metrics, cfg.User.DefaultPageSize)

	// Init router
	router, err := handlers.NewRouter(cfg.HTTP, loggerAdapter, userHandler)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	application := app.New(loggerAdapter, router, storage)
	go application.MustRun()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.Stop(ctx); err != nil {
		loggerAdapter.Error("Graceful shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	loggerAdapter.Info("Application stopped", nil)
}

func openPostgres(cfg *config.DB) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// Migrate DB
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, err
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
