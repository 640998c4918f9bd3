package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Backend BackendConfig
	Wall    WallConfig
	Log     LogConfig
	Site    SiteConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Host           string
	ReadTimeout    int
	WriteTimeout   int
	IdleTimeout    int
	AllowedOrigins []string
}

// GitHubConfig holds settings for the public repository listing
type GitHubConfig struct {
	Username string
	Token    string
	APIURL   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// BackendConfig holds settings for the RAG backend
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// WallConfig holds settings for the gated upload page
type WallConfig struct {
	Passcode       string
	TokenSecret    string
	TokenTTL       time.Duration
	MaxUploadBytes int64
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	JSON  bool
}

// SiteConfig holds presentation settings
type SiteConfig struct {
	OwnerName     string
	TemplatesPath string
}

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := Read()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Read loads configuration without validating it; tools that need only
// part of it check what they use
func Read() *Config {
	// .env file is optional
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:    getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout:   getEnvAsInt("SERVER_WRITE_TIMEOUT", 150),
			IdleTimeout:    getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", ",", []string{"*"}),
		},
		GitHub: GitHubConfig{
			Username: getEnv("GITHUB_USERNAME", ""),
			Token:    getEnv("GITHUB_TOKEN", ""),
			APIURL:   strings.TrimSuffix(getEnv("GITHUB_API_URL", "https://api.github.com"), "/"),
			Timeout:  getEnvAsDuration("GITHUB_TIMEOUT", 30*time.Second),
			CacheTTL: getEnvAsDuration("GITHUB_CACHE_TTL", time.Hour),
		},
		Backend: BackendConfig{
			URL:     strings.TrimSuffix(getEnv("BACKEND_URL", ""), "/"),
			Timeout: getEnvAsDuration("BACKEND_TIMEOUT", 2*time.Minute),
		},
		Wall: WallConfig{
			Passcode:       getEnv("WALL_PASSCODE", ""),
			TokenSecret:    getEnv("WALL_TOKEN_SECRET", ""),
			TokenTTL:       getEnvAsDuration("WALL_TOKEN_TTL", 12*time.Hour),
			MaxUploadBytes: int64(getEnvAsInt("WALL_MAX_UPLOAD_BYTES", 10*1024*1024)),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  getEnvAsBool("LOG_JSON", false),
		},
		Site: SiteConfig{
			OwnerName:     getEnv("SITE_OWNER_NAME", "Anirudh Hosur"),
			TemplatesPath: getEnv("SITE_TEMPLATES_PATH", ""),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHub.Username == "" {
		return fmt.Errorf("GITHUB_USERNAME is required")
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if !strings.HasPrefix(c.Backend.URL, "http://") && !strings.HasPrefix(c.Backend.URL, "https://") {
		return fmt.Errorf("BACKEND_URL must be an HTTP(S) URL")
	}
	if c.Server.WriteTimeout > 0 && time.Duration(c.Server.WriteTimeout)*time.Second <= c.Backend.Timeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%ds) must exceed BACKEND_TIMEOUT (%s) so proxied replies can be written", c.Server.WriteTimeout, c.Backend.Timeout)
	}
	if c.GitHub.CacheTTL < 0 {
		return fmt.Errorf("GITHUB_CACHE_TTL cannot be negative")
	}
	if c.Wall.MaxUploadBytes <= 0 {
		return fmt.Errorf("WALL_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Wall.TokenTTL <= 0 {
		return fmt.Errorf("WALL_TOKEN_TTL must be positive")
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as boolean with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings ("90s", "1h") or plain seconds
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getEnvAsSlice gets an environment variable as slice with a fallback value
func getEnvAsSlice(key, separator string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, separator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
