package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kasarab/user_directory_service/internal/config"
	"github.com/kasarab/user_directory_service/internal/core/ports"
)

type Router struct {
	*gin.Engine
	server *http.Server
}

func NewRouter(
	config *config.HTTP,
	logger ports.LoggerPort,
	userHandler *UserHandler,
) (*Router, error) {
	if config.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	ginConfig := cors.DefaultConfig()
	originsList := strings.Split(config.AllowedOrigins, ",")
	if len(originsList) == 1 && strings.TrimSpace(originsList[0]) == "*" {
		ginConfig.AllowAllOrigins = true
	} else {
		ginConfig.AllowOrigins = originsList
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), RequestLoggerMiddleware(logger), cors.New(ginConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userHandler.Register(router.Group("/api/users"))

	return &Router{
		Engine: router,
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", config.URL, config.Port),
			Handler: router,
		},
	}, nil
}

// Register mounts the user routes on group.
func (h *UserHandler) Register(users *gin.RouterGroup) {
	users.GET("/", h.ListUsers)
	users.GET("/all/pagination", h.ListUsersPage)
	users.GET("/search", h.SearchUsersByBirthDate)
	users.GET("/exists", h.ExistsByEmail)
	users.GET("/firstname/:firstname", h.GetUserByFirstName)
	users.GET("/lastname/:lastname", h.GetUserByLastName)
	users.POST("/add", h.CreateUser)
	users.GET("/:userId", h.GetUser)
	users.PUT("/:userId", h.UpdateUser)
	users.DELETE("/:userId", h.DeleteUser)
}

func (r *Router) Addr() string {
	return r.server.Addr
}

// Serve starts the HTTP server and blocks until it is shut down.
func (r *Router) Serve() error {
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
