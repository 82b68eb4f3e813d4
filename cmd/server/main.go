package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"brewspot/config"
	"brewspot/db"
	"brewspot/middlewares"
	"brewspot/routes"
	"brewspot/utils"
	"brewspot/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}
	cancel()

	if cfg.Seed.Demo {
		utils.SeedDemoData()
	}

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes
	router.POST("/login", routes.LoginRouteHandler)

	// WebSocket endpoint for engagement broadcasts; browsers cannot set an
	// Authorization header on ws requests, so it authenticates itself via
	// query token instead of the middleware
	router.GET("/ws/engagement", websocket.EngagementWebSocketHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/profile", routes.GetProfileRouteHandler)
		auth.GET("/user/visits", routes.GetVisitHistoryRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		auth.POST("/engagement/events", routes.RecordEngagementEventRouteHandler)
		auth.GET("/engagement/progress", routes.GetBadgeProgressRouteHandler)
		auth.POST("/checkins", routes.CheckInRouteHandler)

		moderation := auth.Group("/moderation")
		moderation.Use(middlewares.ModeratorOnly())
		{
			moderation.POST("/venues/:id/decision", routes.DecideVenueRouteHandler)
		}
	}

	return router
}
