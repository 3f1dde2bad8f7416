package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/auth"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/config"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/database"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/feed"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/handler"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/loader"

	// Swagger imports
	_ "github.com/Einengutenmorgen/LSS-Twon-DB/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           LSS-Twon-DB API
// @version         1.0
// @description     Feed reconstruction and query API over the collected social network archive.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	sugar := zapLogger.Sugar()

	// Connect to the database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		sugar.Fatalw("database connection failed", "error", err)
	}
	sugar.Infow("database connection established")

	engine := feed.NewEngine(db, sugar)
	ldr := loader.New(db, sugar)

	feedHandler := handler.NewFeedHandler(engine)
	adminHandler := handler.NewAdminHandler(ldr, engine)
	authHandler := handler.NewAuthHandler(config.AppConfig.JWTSecret, config.AppConfig.AdminPasswordHash)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/token", authHandler.IssueToken)
		}

		// User and feed routes (public reads)
		userRoutes := apiV1.Group("/users")
		{
			userRoutes.GET("/lookup", feedHandler.LookupUser) // Must be before /:id
			userRoutes.GET("/:id/feed", feedHandler.GetUserFeed)
			userRoutes.GET("/:id/feed/rendered", feedHandler.GetUserFeedRendered)
			userRoutes.GET("/:id/posts", feedHandler.GetUserPosts)
			userRoutes.GET("/:id/followers", feedHandler.GetFollowers)
			userRoutes.GET("/:id/followees", feedHandler.GetFollowees)
			userRoutes.GET("/:id/likes", feedHandler.GetUserLikes)
		}

		// Tweet routes
		tweetRoutes := apiV1.Group("/tweets")
		{
			tweetRoutes.GET("/:id", feedHandler.GetTweetByID)
		}

		// Admin routes (protected: the only writer paths)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.Middleware(config.AppConfig.JWTSecret))
		{
			adminRoutes.POST("/load", adminHandler.LoadBatch)
			adminRoutes.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	addr := ":" + config.AppConfig.Port
	sugar.Infow("server starting", "addr", addr)
	sugar.Fatalw("server exited", "error", router.Run(addr))
}
