package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type (
	Container struct {
		App  *App
		DB   *DB
		HTTP *HTTP
		User *User
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Driver        string
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		SSLMode       string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	User struct {
		MinimumAge      int
		DefaultPageSize int
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		// A missing .env is fine outside production; the process env still applies.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "user_directory_service"),
		Env:  getEnv("APP_ENV", "local"),
	}

	db := &DB{
		Driver:        getEnv("STORAGE_DRIVER", StorageDriverPostgres),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}
	if db.Driver != StorageDriverPostgres && db.Driver != StorageDriverMemory {
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, db.Driver)
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	minimumAge, err := strconv.Atoi(os.Getenv("USER_MINIMUM_AGE"))
	if err != nil || minimumAge < 0 {
		return nil, fmt.Errorf("USER_MINIMUM_AGE must be a non-negative integer, got %q", os.Getenv("USER_MINIMUM_AGE"))
	}

	pageSize, err := strconv.Atoi(getEnv("PAGE_DEFAULT_SIZE", "5"))
	if err != nil || pageSize < 1 {
		return nil, fmt.Errorf("PAGE_DEFAULT_SIZE must be a positive integer, got %q", os.Getenv("PAGE_DEFAULT_SIZE"))
	}

	user := &User{
		MinimumAge:      minimumAge,
		DefaultPageSize: pageSize,
	}

	return &Container{
		App:  app,
		DB:   db,
		HTTP: http,
		User: user,
	}, nil
}

// DSN is the lib/pq connection string.
func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
