package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Scraper  ScraperConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

type ScraperConfig struct {
	// ArticleBaseURL is the only URL prefix the extractor accepts.
	ArticleBaseURL string
	Timeout        time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads config.yaml (optional) and environment variables into a
// typed Config. The Gemini API key is the one hard requirement: without it
// every generate request would fail, so startup refuses to proceed.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 120)
	viper.SetDefault("database.path", "quiz_history.db")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("scraper.article_base_url", "https://en.wikipedia.org/wiki/")
	viper.SetDefault("scraper.timeout", 10)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Database: DatabaseConfig{
			Path: viper.GetString("database.path"),
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("gemini.api_key"),
			Model:       viper.GetString("gemini.model"),
			Temperature: viper.GetFloat64("gemini.temperature"),
		},
		Scraper: ScraperConfig{
			ArticleBaseURL: viper.GetString("scraper.article_base_url"),
			Timeout:        viper.GetDuration("scraper.timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	if key := viper.GetString("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if dbPath := viper.GetString("DATABASE_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if port := viper.GetInt("SERVER_PORT"); port != 0 {
		cfg.Server.Port = port
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set; quiz generation cannot work without it")
	}

	return cfg, nil
}
