package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Creator Studio specifics
	Storage       StorageConfig
	Schedule      ScheduleConfig
	YouTube       YouTubeConfig
	API           APIConfig
	Notifications NotificationsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the slot files on disk.
type StorageConfig struct {
	DataDir string
}

// ScheduleConfig controls calendar day math. Timezone is an IANA name;
// due dates are bucketed into days as observed there.
type ScheduleConfig struct {
	Timezone string
}

// YouTubeConfig configures the channel analyzer behind pillar
// suggestions. APIKey wins when both are set; CredentialsPath points at
// an OAuth client secret for installed-app auth. With neither set the
// service stays on the built-in starter suggestions.
type YouTubeConfig struct {
	APIKey          string
	CredentialsPath string
}

type APIConfig struct {
	RateLimitPerMin int
}

type NotificationsConfig struct {
	Capacity int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/creator-studio/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/creator-studio/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.DataDir = viper.GetString("storage.data_dir")
	if dataDir := viper.GetString("data_dir"); dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}

	// Schedule
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")

	// YouTube
	cfg.YouTube.APIKey = expandEnvVar(viper.GetString("youtube.api_key"))
	cfg.YouTube.CredentialsPath = viper.GetString("youtube.credentials_path")
	if ytKey := viper.GetString("youtube_api_key"); ytKey != "" {
		cfg.YouTube.APIKey = ytKey
	}
	if ytCreds := viper.GetString("youtube_credentials"); ytCreds != "" {
		cfg.YouTube.CredentialsPath = ytCreds
	}

	// API
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	// Notifications
	cfg.Notifications.Capacity = viper.GetInt("notifications.capacity")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("schedule.timezone", "UTC")
	viper.SetDefault("api.rate_limit_per_min", 60)
	viper.SetDefault("notifications.capacity", 200)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
