// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"altitude/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DocumentCacheClient is the Redis client backing the uploaded-document store.
	DocumentCacheClient *redis.Client
	// EventCacheClient is the Redis client backing webhook event deduplication.
	EventCacheClient *redis.Client
)

// InitDocumentCache initializes the Redis client for document storage.
func InitDocumentCache() {
	DocumentCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDocumentsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DocumentCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Documents): %v", err)
	}
}

// GetDocumentCacheClient returns the document store client.
func GetDocumentCacheClient() *redis.Client {
	if DocumentCacheClient == nil {
		InitDocumentCache()
	}
	return DocumentCacheClient
}

// InitEventCache initializes the Redis client for webhook event deduplication.
func InitEventCache() {
	EventCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := EventCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Events): %v", err)
	}
}

// GetEventCacheClient returns the webhook dedupe client.
func GetEventCacheClient() *redis.Client {
	if EventCacheClient == nil {
		InitEventCache()
	}
	return EventCacheClient
}
