package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Urban API configuration
	UrbanAPIHost                string `mapstructure:"URBAN_API_HOST"`
	UrbanAPIToken               string `mapstructure:"URBAN_API_TOKEN"`
	UrbanAPIPingTimeoutSec      int    `mapstructure:"URBAN_API_PING_TIMEOUT_SEC"`
	UrbanAPIOperationTimeoutSec int    `mapstructure:"URBAN_API_OPERATION_TIMEOUT_SEC"`

	// Event stream configuration
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	EventStream   string `mapstructure:"EVENT_STREAM"`
	ConsumerGroup string `mapstructure:"CONSUMER_GROUP"`
	ConsumerName  string `mapstructure:"CONSUMER_NAME"`

	// Metrics configuration
	MetricsPort    string `mapstructure:"METRICS_PORT"`
	MetricsDisable bool   `mapstructure:"METRICS_DISABLE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// Urban API defaults
	viper.SetDefault("URBAN_API_HOST", "http://localhost:8100")
	viper.SetDefault("URBAN_API_TOKEN", "")
	viper.SetDefault("URBAN_API_PING_TIMEOUT_SEC", 2)
	viper.SetDefault("URBAN_API_OPERATION_TIMEOUT_SEC", 60)

	// Event stream defaults
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("EVENT_STREAM", "scenario.events")
	viper.SetDefault("CONSUMER_GROUP", "scenarios-conductor-group")
	viper.SetDefault("CONSUMER_NAME", "scenarios-conductor")

	// Metrics defaults
	viper.SetDefault("METRICS_PORT", "9000")
	viper.SetDefault("METRICS_DISABLE", false)
}

func validate(config *Config) error {
	if config.UrbanAPIHost == "" {
		return fmt.Errorf("URBAN_API_HOST is required")
	}

	if config.Environment == "production" && config.UrbanAPIToken == "" {
		return fmt.Errorf("URBAN_API_TOKEN must be set in production")
	}

	if config.EventStream == "" {
		return fmt.Errorf("EVENT_STREAM is required")
	}

	if config.ConsumerGroup == "" {
		return fmt.Errorf("CONSUMER_GROUP is required")
	}

	return nil
}

// PingTimeout returns the liveness probe timeout budget
func (c *Config) PingTimeout() time.Duration {
	return time.Duration(c.UrbanAPIPingTimeoutSec) * time.Second
}

// OperationTimeout returns the timeout budget for substantive API operations
func (c *Config) OperationTimeout() time.Duration {
	return time.Duration(c.UrbanAPIOperationTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
