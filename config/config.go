package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Google Sheets persistence.
	SheetsCredentialsFile string `mapstructure:"SHEETS_CREDENTIALS_FILE"`
	SheetsSpreadsheetID   string `mapstructure:"SHEETS_SPREADSHEET_ID"`
	SheetsRange           string `mapstructure:"SHEETS_RANGE"`

	// SMTP confirmation mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`

	// Redis configuration (optional; the fixed-window limiter falls back to
	// in-process counters when REDIS_ADDR is empty).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Validation knobs.
	PhoneDefaultRegion string `mapstructure:"PHONE_DEFAULT_REGION"`
	NameMinWords       int    `mapstructure:"NAME_MIN_WORDS"`
	NameMaxWords       int    `mapstructure:"NAME_MAX_WORDS"`

	// FAQ webhook rate limiting.
	RateLimitWindowMin int `mapstructure:"RATE_LIMIT_WINDOW_MIN"`
	RateLimitMax       int `mapstructure:"RATE_LIMIT_MAX"`
	MaxRequestsPerMin  int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Facility cache.
	FacilityCacheTTLMin    int `mapstructure:"FACILITY_CACHE_TTL_MIN"`
	FacilityRefreshDelayMS int `mapstructure:"FACILITY_REFRESH_DELAY_MS"`
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
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("SHEETS_RANGE", "Submissions!A:E")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PHONE_DEFAULT_REGION", "US")
	viper.SetDefault("NAME_MIN_WORDS", 2)
	viper.SetDefault("NAME_MAX_WORDS", 0)
	viper.SetDefault("RATE_LIMIT_WINDOW_MIN", 15)
	viper.SetDefault("RATE_LIMIT_MAX", 100)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 300)
	viper.SetDefault("FACILITY_CACHE_TTL_MIN", 60)
	viper.SetDefault("FACILITY_REFRESH_DELAY_MS", 1500)

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

// FacilityCacheTTL returns the cache epoch as a duration.
func FacilityCacheTTL() time.Duration {
	return time.Duration(AppConfig.FacilityCacheTTLMin) * time.Minute
}

// RateLimitWindow returns the fixed-window duration for the FAQ webhook limiter.
func RateLimitWindow() time.Duration {
	return time.Duration(AppConfig.RateLimitWindowMin) * time.Minute
}

// FacilityRefreshDelay returns the simulated upstream fetch latency.
func FacilityRefreshDelay() time.Duration {
	return time.Duration(AppConfig.FacilityRefreshDelayMS) * time.Millisecond
}
