package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	GeminiApiKey  string
	GeminiBaseUrl string
	GeminiModel   string
	GeminiTimeout int // seconds per completion call

	// Price tiers for the rule-based sentiment fallback (₹ per month).
	// Above PriceHigh costs the score 2 points, above PriceMid 1 point,
	// at or below PriceLow it gains 1 point.
	PriceHigh float64
	PriceMid  float64
	PriceLow  float64

	SendgridApiKey string
	EmailSender    string

	ProbeSpec string // cron spec for the AI availability re-probe
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "tiffin.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		GeminiApiKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiBaseUrl: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout: getEnvInt("GEMINI_TIMEOUT_SECONDS", 10),

		PriceHigh: getEnvFloat("FALLBACK_PRICE_HIGH", 3500),
		PriceMid:  getEnvFloat("FALLBACK_PRICE_MID", 2500),
		PriceLow:  getEnvFloat("FALLBACK_PRICE_LOW", 2000),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@righttiffin.in"),

		ProbeSpec: getEnv("AI_PROBE_CRON", "@every 15m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Review analysis will use the rule-based fallback only.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
