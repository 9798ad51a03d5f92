package routes

import (
	"time"

	"altitude/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/chat", hb.ChatHandler)
}

// RegisterCatalogRoutes registers health and package endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HealthHandler)
	r.GET("/packages", hb.GetPackagesHandler)
	r.GET("/availability", hb.CheckAvailabilityHandler)
}

// RegisterDocumentRoutes registers the document store endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/upload-file", hb.UploadFileHandler)
	r.GET("/files", hb.ListFilesHandler)
}

// RegisterWebhookRoutes registers provider callbacks.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/webhook/roller", hb.RollerWebhookHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// CORS for the chat frontend.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
}
