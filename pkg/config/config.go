package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Media   MediaConfig
	Speech  SpeechConfig
	Gemini  GeminiConfig
	Redis   RedisConfig
	Storage StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// UploadConfig holds limits and scratch locations for uploaded recordings
type UploadConfig struct {
	Dir                string
	MaxFileSizeMB      int
	MaxDurationSeconds int
	KeepExtractedAudio bool
}

// MaxFileSizeBytes returns the upload size limit in bytes
func (u UploadConfig) MaxFileSizeBytes() int64 {
	return int64(u.MaxFileSizeMB) * 1024 * 1024
}

// MediaConfig holds ffmpeg/ffprobe locations and the video-stage retry policy
type MediaConfig struct {
	FFmpegPath  string
	FFprobePath string
	MaxRetries  int
	RetryDelay  time.Duration
}

// SpeechConfig selects the speech-to-text backend and its credentials.
// Backend is one of "none", "assemblyai", "whisper"; empty means auto-detect
// from whichever API key is present.
type SpeechConfig struct {
	Backend       string `envconfig:"BACKEND"`
	AssemblyAIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
	OpenAIKey     string `envconfig:"OPENAI_API_KEY"`
}

// GeminiConfig holds credentials for the generative feedback client
type GeminiConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"BASE_URL"`
	Model   string `envconfig:"MODEL"`
}

// RedisConfig holds the report cache connection; empty Addr disables Redis
// and the service falls back to the in-memory store
type RedisConfig struct {
	Addr     string `envconfig:"ADDR"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

// StorageConfig holds the optional recording archive; empty Endpoint disables it
type StorageConfig struct {
	Endpoint        string `envconfig:"ENDPOINT"`
	AccessKeyID     string `envconfig:"ACCESS_KEY"`
	SecretAccessKey string `envconfig:"SECRET_KEY"`
	BucketName      string `envconfig:"BUCKET"`
	UseSSL          bool   `envconfig:"USE_SSL"`
	PublicURL       string `envconfig:"PUBLIC_URL"`
}

// Enabled reports whether recording archival is configured
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Upload: UploadConfig{
			Dir:                getEnv("UPLOAD_DIR", os.TempDir()),
			MaxFileSizeMB:      getEnvAsInt("UPLOAD_MAX_SIZE_MB", 100),
			MaxDurationSeconds: getEnvAsInt("UPLOAD_MAX_DURATION_SECONDS", 600),
			KeepExtractedAudio: getEnvAsBool("UPLOAD_KEEP_EXTRACTED_AUDIO", false),
		},
		Media: MediaConfig{
			FFmpegPath:  getEnv("FFMPEG_PATH", "ffmpeg"),
			FFprobePath: getEnv("FFPROBE_PATH", "ffprobe"),
			MaxRetries:  getEnvAsInt("VIDEO_MAX_RETRIES", 2),
			RetryDelay:  getEnvAsDuration("VIDEO_RETRY_DELAY", "1s"),
		},
	}

	// Credential blocks come straight from the environment via envconfig
	if err := envconfig.Process("SPEECH", &config.Speech); err != nil {
		return nil, fmt.Errorf("failed to read speech config: %w", err)
	}
	if err := envconfig.Process("GEMINI", &config.Gemini); err != nil {
		return nil, fmt.Errorf("failed to read gemini config: %w", err)
	}
	if err := envconfig.Process("REDIS", &config.Redis); err != nil {
		return nil, fmt.Errorf("failed to read redis config: %w", err)
	}
	if err := envconfig.Process("STORAGE", &config.Storage); err != nil {
		return nil, fmt.Errorf("failed to read storage config: %w", err)
	}

	if config.Gemini.BaseURL == "" {
		config.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_MB must be positive")
	}
	if c.Upload.MaxDurationSeconds <= 0 {
		return fmt.Errorf("UPLOAD_MAX_DURATION_SECONDS must be positive")
	}
	if c.Media.MaxRetries < 0 {
		return fmt.Errorf("VIDEO_MAX_RETRIES must not be negative")
	}
	switch c.Speech.Backend {
	case "", "none", "assemblyai", "whisper":
	default:
		return fmt.Errorf("unknown SPEECH_BACKEND %q", c.Speech.Backend)
	}
	return nil
}

// GetRedisAddr returns the Redis address, empty when the cache is disabled
func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
