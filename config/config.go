package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	AppName           string `mapstructure:"APP_NAME"`
	CompanyName       string `mapstructure:"COMPANY_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisFollowupQueueDB int    `mapstructure:"REDIS_FOLLOWUP_QUEUE_DB"`

	// Session lifetime in minutes.
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`

	// Catalog source: "file" reads the JSON seeds, "mongo" reads the
	// seeded collections.
	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	YachtSeedPath string `mapstructure:"YACHT_SEED_PATH"`
	ThemeSeedPath string `mapstructure:"THEME_SEED_PATH"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`

	// Gemini API key for the reasoning engine.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Minutes of silence before a collecting enquiry gets a follow-up nudge.
	FollowupDelayMin int `mapstructure:"FOLLOWUP_DELAY_MIN"`
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
	viper.SetDefault("APP_NAME", "yacht_matchmaker")
	viper.SetDefault("COMPANY_NAME", "Livin Charters")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_FOLLOWUP_QUEUE_DB", 1)
	viper.SetDefault("SESSION_TTL_MIN", 120)
	viper.SetDefault("CATALOG_SOURCE", "file")
	viper.SetDefault("YACHT_SEED_PATH", "seed/yachts_seed.json")
	viper.SetDefault("THEME_SEED_PATH", "seed/theme_templates.json")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-2.0-flash")
	viper.SetDefault("FOLLOWUP_DELAY_MIN", 30)

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
