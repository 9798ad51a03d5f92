package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDocumentsDB int    `mapstructure:"REDIS_DOCUMENTS_DB"`
	RedisEventsDB    int    `mapstructure:"REDIS_EVENTS_DB"`

	// Roller reservation provider.
	RollerClientID        string `mapstructure:"ROLLER_CLIENT_ID"`
	RollerClientSecret    string `mapstructure:"ROLLER_CLIENT_SECRET"`
	RollerBaseURL         string `mapstructure:"ROLLER_BASE_URL"`
	RollerAuthURL         string `mapstructure:"ROLLER_AUTH_URL"`
	RollerTimeoutSeconds  int    `mapstructure:"ROLLER_TIMEOUT_SECONDS"`
	RollerFallbackEnabled bool   `mapstructure:"ROLLER_FALLBACK_ENABLED"`

	// xAI model serving the booking assistant (OpenAI-compatible API).
	XAIAPIKey  string `mapstructure:"XAI_API_KEY"`
	XAIBaseURL string `mapstructure:"XAI_BASE_URL"`
	XAIModel   string `mapstructure:"XAI_MODEL"`

	// SendGrid email delivery.
	SendgridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	SendgridFromEmail string `mapstructure:"SENDGRID_FROM_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DOCUMENTS_DB", 0)
	viper.SetDefault("REDIS_EVENTS_DB", 1)
	viper.SetDefault("ROLLER_BASE_URL", "https://api.roller.app/v1/")
	viper.SetDefault("ROLLER_AUTH_URL", "https://auth.roller.app/connect/token")
	viper.SetDefault("ROLLER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("ROLLER_FALLBACK_ENABLED", true)
	viper.SetDefault("XAI_BASE_URL", "https://api.x.ai/v1")
	viper.SetDefault("XAI_MODEL", "grok-3")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "noreply@altitudehuntsville.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
