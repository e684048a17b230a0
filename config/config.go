package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type LookupFunc func(string) (string, bool)

type Config struct {
	Port    string
	GinMode string
	AI      AIConfig
	Log     LogConfig
	CORS    CORSConfig
}

type AIConfig struct {
	Provider  string // "gemini" or "dashscope"
	APIKey    string
	ModelName string
	BaseURL   string // empty means the provider's public endpoint
	Timeout   time.Duration
}

type LogConfig struct {
	Level slog.Level
	JSON  bool
}

type CORSConfig struct {
	AllowOrigins []string
}

const (
	ProviderGemini    = "gemini"
	ProviderDashScope = "dashscope"
)

func defaults() Config {
	return Config{
		Port:    "3000",
		GinMode: "release",
		AI: AIConfig{
			Provider:  ProviderGemini,
			ModelName: "gemini-1.5-flash",
			Timeout:   120 * time.Second,
		},
		Log: LogConfig{
			Level: slog.LevelInfo,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}

// LoadFromEnv reads an optional .env file in the working directory and then
// builds the configuration from the process environment.
func LoadFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Load(os.LookupEnv)
}

func Load(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		return Config{}, fmt.Errorf("lookup function is required")
	}

	cfg := defaults()

	applyString(lookup, "PORT", &cfg.Port)
	applyString(lookup, "GIN_MODE", &cfg.GinMode)

	applyString(lookup, "GEMINI_API_KEY", &cfg.AI.APIKey)
	applyString(lookup, "API_KEY", &cfg.AI.APIKey)
	applyString(lookup, "AI_PROVIDER", &cfg.AI.Provider)
	applyString(lookup, "MODEL_NAME", &cfg.AI.ModelName)
	applyString(lookup, "AI_BASE_URL", &cfg.AI.BaseURL)
	if err := applyDuration(lookup, "AI_TIMEOUT", &cfg.AI.Timeout); err != nil {
		return Config{}, err
	}

	if err := applyLevel(lookup, "LOG_LEVEL", &cfg.Log.Level); err != nil {
		return Config{}, err
	}
	if err := applyBool(lookup, "LOG_JSON", &cfg.Log.JSON); err != nil {
		return Config{}, err
	}

	if raw, ok := lookup("CORS_ALLOW_ORIGINS"); ok && strings.TrimSpace(raw) != "" {
		cfg.CORS.AllowOrigins = splitList(raw)
	}

	cfg.AI.Provider = strings.ToLower(cfg.AI.Provider)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q", c.GinMode)
	}
	switch c.AI.Provider {
	case ProviderGemini, ProviderDashScope:
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}
	if c.AI.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	for _, origin := range c.CORS.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q", origin)
		}
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func applyString(lookup LookupFunc, key string, target *string) {
	if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
		*target = strings.TrimSpace(raw)
	}
}

func applyDuration(lookup LookupFunc, key string, target *time.Duration) error {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = d
	return nil
}

func applyBool(lookup LookupFunc, key string, target *bool) error {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = v
	return nil
}

func applyLevel(lookup LookupFunc, key string, target *slog.Level) error {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = level
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
