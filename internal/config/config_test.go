package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("BACKEND_URL", "http://localhost:8000/")
	t.Setenv("GITHUB_CACHE_TTL", "90")
	t.Setenv("WALL_TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.GitHub.Username)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, 90*time.Second, cfg.GitHub.CacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.Wall.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(10*1024*1024), cfg.Wall.MaxUploadBytes)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Greater(t, time.Duration(cfg.Server.WriteTimeout)*time.Second, cfg.Backend.Timeout,
		"default write deadline must outlast the backend timeout")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			GitHub:  GitHubConfig{Username: "octocat", CacheTTL: time.Hour},
			Backend: BackendConfig{URL: "https://rag.example"},
			Wall:    WallConfig{TokenTTL: time.Hour, MaxUploadBytes: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing username", func(c *Config) { c.GitHub.Username = "" }, true},
		{"missing backend", func(c *Config) { c.Backend.URL = "" }, true},
		{"backend without scheme", func(c *Config) { c.Backend.URL = "rag.example" }, true},
		{"negative ttl", func(c *Config) { c.GitHub.CacheTTL = -time.Second }, true},
		{"zero upload limit", func(c *Config) { c.Wall.MaxUploadBytes = 0 }, true},
		{"zero token ttl", func(c *Config) { c.Wall.TokenTTL = 0 }, true},
		{"write timeout above backend timeout", func(c *Config) {
			c.Server.WriteTimeout = 150
			c.Backend.Timeout = 2 * time.Minute
		}, false},
		{"write timeout below backend timeout", func(c *Config) {
			c.Server.WriteTimeout = 60
			c.Backend.Timeout = 2 * time.Minute
		}, true},
		{"write timeout equal to backend timeout", func(c *Config) {
			c.Server.WriteTimeout = 120
			c.Backend.Timeout = 2 * time.Minute
		}, true},
		{"no write timeout", func(c *Config) {
			c.Server.WriteTimeout = 0
			c.Backend.Timeout = 2 * time.Minute
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadSkipsValidation(t *testing.T) {
	t.Setenv("GITHUB_USERNAME", "")
	t.Setenv("BACKEND_URL", "")

	cfg := Read()
	assert.Empty(t, cfg.Backend.URL)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, int64(10*1024*1024), cfg.Wall.MaxUploadBytes)

	_, err := Load()
	assert.Error(t, err)
}
