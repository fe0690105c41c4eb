package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the web and terminal front-ends
type Config struct {
	Port            string
	WeatherAPIURL   string
	DefaultLocation string
	RequestTimeout  time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	AllowedOrigins  string
	LogFile         string
	Env             string
}

// Load reads .env (if present) and then the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		WeatherAPIURL:   strings.TrimRight(getEnv("WEATHER_API_URL", "http://localhost:8000"), "/"),
		DefaultLocation: getEnv("DEFAULT_LOCATION", "New Delhi"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 1),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		LogFile:         getEnv("OUTFIT_LOG_FILE", ""),
		Env:             getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("[WARN] invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("[WARN] invalid %s=%q, using %g", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("[WARN] invalid %s=%q, using %s", key, value, defaultValue)
	}
	return defaultValue
}
