package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "github.com/Bobur2828/Technical-assignment/internal/controller/http"
	"github.com/Bobur2828/Technical-assignment/internal/repo/persistent"
	"github.com/Bobur2828/Technical-assignment/internal/usecase"
	"github.com/Bobur2828/Technical-assignment/pkg/config"
	"github.com/Bobur2828/Technical-assignment/pkg/jwt"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"
	"github.com/Bobur2828/Technical-assignment/pkg/middleware"
	"github.com/Bobur2828/Technical-assignment/pkg/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Bobur2828/Technical-assignment/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.SessionTTL)
	sessions := session.NewRedisRegistry(redisClient)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	articleRepo := persistent.NewArticleRepository(db)

	// Use cases
	userUseCase := usecase.NewUserUseCase(userRepo, log)
	articleUseCase := usecase.NewArticleUseCase(articleRepo, log)

	// HTTP handlers
	authHandler := controller.NewAuthHandler(userUseCase, jwtService, sessions, log)
	articleHandler := controller.NewArticleHandler(articleUseCase, log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public listing: anonymous callers get public articles only, so the
	// auth here is optional rather than required.
	r.GET("/view_all_articles/", middleware.OptionalAuth(jwtService, sessions), articleHandler.ListAll)

	r.POST("/auth/register/", authHandler.Register)
	r.POST("/auth/login/", authHandler.Login)

	authed := r.Group("")
	authed.Use(middleware.RequireAuth(jwtService, sessions))
	authed.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow))
	{
		authed.POST("/auth/logout/", authHandler.Logout)

		authed.GET("/my_articles/", articleHandler.ListOwn)
		authed.POST("/my_articles/", articleHandler.Create)
		authed.GET("/my_articles/:id/", articleHandler.Get)
		authed.PUT("/my_articles/:id/", articleHandler.Update)
		authed.DELETE("/my_articles/:id/", articleHandler.Delete)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
