package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Storage        StorageConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	Assistant      AssistantConfig
	Seed           SeedConfig
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

// StorageConfig configures the local sqlite mirror of application state.
type StorageConfig struct {
	Path string
}

// GeminiConfig configures the model endpoint. The API key itself is NOT
// configured here: it is user-supplied at runtime via settings, and its
// absence is a fully supported state.
type GeminiConfig struct {
	Model    string
	APIURL   string
	Timezone string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// AssistantConfig tunes the extraction-backed endpoints.
type AssistantConfig struct {
	RateLimitPerMin int
	CacheSize       int
}

// SeedConfig holds the initial category set for a fresh database.
type SeedConfig struct {
	Categories []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/maxitask/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/maxitask/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.Path = viper.GetString("storage.path")
	if storagePath := viper.GetString("storage_path"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}

	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timezone = viper.GetString("gemini.timezone")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")
	cfg.Assistant.CacheSize = viper.GetInt("assistant.cache_size")

	cfg.Seed.Categories = viper.GetStringSlice("seed.categories")

	if len(cfg.Seed.Categories) == 0 {
		return nil, fmt.Errorf("seed.categories must not be empty")
	}

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
	viper.SetDefault("storage.path", "./data/maxitask.db")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timezone", "UTC")
	viper.SetDefault("assistant.rate_limit_per_min", 30)
	viper.SetDefault("assistant.cache_size", 128)
	viper.SetDefault("seed.categories", []string{"Personal", "Work", "Hobbies", "Other"})
}
