package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Chat endpoints.
	ChatHandler gin.HandlerFunc

	// Catalog endpoints.
	HealthHandler      gin.HandlerFunc
	GetPackagesHandler gin.HandlerFunc

	// Availability endpoint.
	CheckAvailabilityHandler gin.HandlerFunc

	// Document endpoints.
	UploadFileHandler gin.HandlerFunc
	ListFilesHandler  gin.HandlerFunc

	// Provider webhook.
	RollerWebhookHandler gin.HandlerFunc
}
