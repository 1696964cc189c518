package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	LLM       LLMConfig
	Extract   ExtractConfig
	Deviation DeviationConfig
	Batching  BatchingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// LLMConfig holds model-client configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// ExtractConfig holds extraction-orchestrator configuration
type ExtractConfig struct {
	MaxAttempts   int
	BackoffBase   time.Duration
	MinConfidence float32
	Timeout       time.Duration
}

// DeviationConfig holds severity thresholds as absolute percentages.
type DeviationConfig struct {
	MediumPct float64
	HighPct   float64
}

// BatchingConfig holds document-planning configuration
type BatchingConfig struct {
	Capacity int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Extract: ExtractConfig{
			MaxAttempts:   getEnvAsInt("EXTRACT_MAX_ATTEMPTS", 3),
			BackoffBase:   getEnvAsDuration("EXTRACT_BACKOFF_BASE", time.Second),
			MinConfidence: getEnvAsFloat32("EXTRACT_MIN_CONFIDENCE", 0.7),
			Timeout:       getEnvAsDuration("EXTRACT_TIMEOUT", 30*time.Second),
		},
		Deviation: DeviationConfig{
			MediumPct: getEnvAsFloat64("DEVIATION_MEDIUM_PCT", 5),
			HighPct:   getEnvAsFloat64("DEVIATION_HIGH_PCT", 10),
		},
		Batching: BatchingConfig{
			Capacity: getEnvAsInt("BATCH_CAPACITY", 3),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extract.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	if c.Extract.MinConfidence < 0 || c.Extract.MinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_MIN_CONFIDENCE must be in [0,1]", ErrInvalidInput)
	}
	if c.Deviation.MediumPct <= 0 || c.Deviation.HighPct <= c.Deviation.MediumPct {
		return NewAppError("CONFIG_ERROR", "deviation thresholds must satisfy 0 < medium < high", ErrInvalidInput)
	}
	if c.Batching.Capacity < 1 {
		return NewAppError("CONFIG_ERROR", "BATCH_CAPACITY must be >= 1", ErrInvalidInput)
	}
	return nil
}
