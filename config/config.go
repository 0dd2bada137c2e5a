package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP configuration
	HTTPPort    string
	MetricsPort string

	// Optional infrastructure
	RedisAddr        string // empty disables the catalog cache
	KafkaBrokers     string // comma separated; empty disables the relay
	KafkaTopic       string
	DiscordToken     string // empty disables the announcer
	DiscordChannelID string

	// Campaign configuration
	CampaignBetIDs []string // natural keys every submission must cover

	// Environment
	Environment string // "development" or "production"
}

// defaultCampaignBetIDs are the natural keys of the seeded catalog.
var defaultCampaignBetIDs = []string{
	"testnet_announcement_video_likes",
	"new_ai_model_surpass_o3",
	"genlayer_ama_375_members",
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),

		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC_SUBMISSIONS", "quest.submissions"),

		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),

		CampaignBetIDs: defaultCampaignBetIDs,

		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if ids := os.Getenv("CAMPAIGN_BET_IDS"); ids != "" {
		var parsed []string
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				parsed = append(parsed, id)
			}
		}
		if len(parsed) > 0 {
			config.CampaignBetIDs = parsed
		}
	}

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return config, nil
}

// getEnv returns the value of the environment variable or the default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
