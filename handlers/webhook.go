package handlers

import (
	"context"
	"net/http"
	"time"

	"altitude/models"
	"altitude/services/notification"
	"altitude/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// webhookDedupeTTL bounds how long a processed event id is remembered.
const webhookDedupeTTL = 30 * 24 * time.Hour

// EventDeduper records webhook deliveries so redelivered events are
// acknowledged without being re-processed.
type EventDeduper interface {
	// MarkProcessed returns true when this is the first delivery of key.
	MarkProcessed(ctx context.Context, key string) (bool, error)
}

// RedisEventDeduper implements EventDeduper on a Redis SETNX.
type RedisEventDeduper struct {
	client *redis.Client
}

func NewRedisEventDeduper(client *redis.Client) *RedisEventDeduper {
	return &RedisEventDeduper{client: client}
}

func (d *RedisEventDeduper) MarkProcessed(ctx context.Context, key string) (bool, error) {
	return d.client.SetNX(ctx, key, 1, webhookDedupeTTL).Result()
}

// WebhookHandler receives payment callbacks from the reservation
// provider. Booking state itself lives with the provider; our only
// obligations are idempotent acknowledgment and the confirmation email.
type WebhookHandler struct {
	dedupe       EventDeduper
	notification notification.NotificationService
	logger       *zap.Logger
}

func NewWebhookHandler(dedupe EventDeduper, notificationSvc notification.NotificationService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		dedupe:       dedupe,
		notification: notificationSvc,
		logger:       logger,
	}
}

// RollerWebhook handles POST /webhook/roller.
func (h *WebhookHandler) RollerWebhook(c *gin.Context) {
	var event models.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook payload", err.Error())
		return
	}

	if event.Event != "payment.success" {
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	dedupeKey := "webhook:" + event.Event + ":" + event.BookingID
	fresh, err := h.dedupe.MarkProcessed(c.Request.Context(), dedupeKey)
	if err != nil {
		h.logger.Error("webhook dedupe check failed", zap.String("bookingID", event.BookingID), zap.Error(err))
		// Fall through and process: double-sending an email beats
		// dropping a confirmation.
		fresh = true
	}
	if !fresh {
		h.logger.Info("duplicate webhook delivery ignored", zap.String("bookingID", event.BookingID))
		c.JSON(http.StatusOK, gin.H{"status": "duplicate", "booking_id": event.BookingID})
		return
	}

	h.logger.Info("payment confirmed by provider",
		zap.String("bookingID", event.BookingID),
		zap.Float64("amount", event.Amount))

	if event.CustomerEmail != "" {
		// Best-effort: a failed email never fails the acknowledgment.
		if !h.notification.SendPaymentConfirmation(event.CustomerEmail, event.CustomerName, event.BookingID, event.Amount) {
			h.logger.Warn("payment confirmation email not sent", zap.String("bookingID", event.BookingID))
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed", "booking_id": event.BookingID})
}
