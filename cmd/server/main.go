package main

import (
	"github.com/Bobur2828/Technical-assignment/internal/app"
	"github.com/Bobur2828/Technical-assignment/internal/model"
	"github.com/Bobur2828/Technical-assignment/pkg/cache"
	"github.com/Bobur2828/Technical-assignment/pkg/config"
	"github.com/Bobur2828/Technical-assignment/pkg/database"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Articles API
// @version         1.0
// @description     Multi-role publishing backend: registration, token sessions and role-gated article CRUD

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Auto migrate
	if err := db.AutoMigrate(&model.UserModel{}, &model.ArticleModel{}); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
