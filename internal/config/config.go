// Package config provides environment-based configuration for the portfolio
// server and chat client.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultPort        = 8080
	DefaultContentDir  = "content"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// Config holds everything the server needs to start.
type Config struct {
	// APIKey is the Gemini credential. Required; startup fails loudly without it.
	APIKey string
	// Model is the Gemini model identifier.
	Model string
	// Port is the HTTP listen port.
	Port int
	// ContentDir is the single content root, resolved once at startup.
	ContentDir string
	// Temperature and MaxTokens are the fixed sampling parameters for chat
	// completions. Adjustable via environment, defaulted otherwise.
	Temperature float32
	MaxTokens   int32
}

// Load reads configuration from the environment, applying defaults.
// godotenv is expected to have populated the environment already.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       envOr("GEMINI_MODEL", DefaultModel),
		Port:        DefaultPort,
		ContentDir:  envOr("CONTENT_DIR", DefaultContentDir),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = n
	}
	if temp := os.Getenv("CHAT_TEMPERATURE"); temp != "" {
		f, err := strconv.ParseFloat(temp, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_TEMPERATURE %q: %w", temp, err)
		}
		cfg.Temperature = float32(f)
	}
	if tokens := os.Getenv("CHAT_MAX_TOKENS"); tokens != "" {
		n, err := strconv.ParseInt(tokens, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_MAX_TOKENS %q: %w", tokens, err)
		}
		cfg.MaxTokens = int32(n)
	}

	return cfg, nil
}

// Validate checks that the configuration can actually run a server.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature %.2f out of range [0, 2]", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
