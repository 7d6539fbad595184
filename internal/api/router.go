package api

import (
	"github.com/SEP491/FitBridge-Chatbot/internal/api/handler"
	"github.com/SEP491/FitBridge-Chatbot/internal/api/middleware"
	"github.com/SEP491/FitBridge-Chatbot/internal/config"
	"github.com/SEP491/FitBridge-Chatbot/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	chatService *service.ChatService,
	cfg config.ServerConfig,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	chatHandler := handler.NewChatHandler(chatService)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/chat", chatHandler.Chat)
	}

	return r
}
