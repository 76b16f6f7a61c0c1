package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Cloud    CloudConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" | "sqlite"
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

// OCRConfig holds on-device OCR configuration
type OCRConfig struct {
	Tesseract        string
	TesseractLang    string
	TessdataDir      string
	HeicConverter    string
	ArtifactCacheDir string
	PSM              int
	OEM              int
}

// CloudConfig holds cloud text-extraction configuration
type CloudConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// LLMConfig holds recipe-structuring configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds capture pipeline behavior flags
type PipelineConfig struct {
	Mode                string  // "hybrid" | "ondevice" | "cloud"
	ConfidenceThreshold float32 // on-device confidence above which cloud is skipped
	BatchWorkers        int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "sqlite"),
			DSN:              getEnv("DB_URL", "file:snapdish.db?_pragma=foreign_keys(1)"),
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
		OCR: OCRConfig{
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:    getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			HeicConverter:    getEnv("HEIC_CONVERTER", "magick"),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
			PSM:              getEnvAsInt("TESSERACT_PSM", 6),
			OEM:              getEnvAsInt("TESSERACT_OEM", 0),
		},
		Cloud: CloudConfig{
			BaseURL: getEnv("CLOUD_OCR_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  getEnv("CLOUD_OCR_API_KEY", os.Getenv("OPENAI_API_KEY")),
			Model:   getEnv("CLOUD_OCR_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDuration("CLOUD_OCR_TIMEOUT", 45*time.Second),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			Mode:                getEnv("CAPTURE_MODE", "hybrid"),
			ConfidenceThreshold: getEnvAsFloat32("CAPTURE_CONFIDENCE_THRESHOLD", 0.70),
			BatchWorkers:        getEnvAsInt("CAPTURE_BATCH_WORKERS", 4),
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
		return E(CodeInvalidInput, "DB_URL is required", ErrInvalidInput)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return Ef(CodeInvalidInput, "unknown DB_DRIVER %q", c.Database.Driver)
	}
	if c.Server.GRPCAddr == "" {
		return E(CodeInvalidInput, "GRPC_ADDR is required", ErrInvalidInput)
	}
	switch c.Pipeline.Mode {
	case "hybrid", "ondevice", "cloud":
	default:
		return Ef(CodeInvalidInput, "unknown CAPTURE_MODE %q", c.Pipeline.Mode)
	}
	if c.Pipeline.ConfidenceThreshold <= 0 || c.Pipeline.ConfidenceThreshold > 1 {
		return Ef(CodeInvalidInput, "CAPTURE_CONFIDENCE_THRESHOLD must be in (0,1]")
	}
	return nil
}
