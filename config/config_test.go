package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{"API_KEY": "secret"}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.ModelName)
	assert.Equal(t, "secret", cfg.AI.APIKey)
	assert.Equal(t, 120*time.Second, cfg.AI.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{
		"PORT":               "8080",
		"GEMINI_API_KEY":     "gemini-key",
		"AI_PROVIDER":        "DashScope",
		"MODEL_NAME":         "qwen-turbo",
		"AI_BASE_URL":        "http://localhost:9999",
		"AI_TIMEOUT":         "5s",
		"LOG_LEVEL":          "debug",
		"LOG_JSON":           "true",
		"CORS_ALLOW_ORIGINS": "http://a.test, http://b.test",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderDashScope, cfg.AI.Provider)
	assert.Equal(t, "gemini-key", cfg.AI.APIKey)
	assert.Equal(t, "qwen-turbo", cfg.AI.ModelName)
	assert.Equal(t, "http://localhost:9999", cfg.AI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
}

func TestLoad_APIKeyTakesPrecedence(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{
		"GEMINI_API_KEY": "fallback",
		"API_KEY":        "primary",
	}))
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.AI.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{name: "missing api key", values: map[string]string{}, want: "API_KEY is required"},
		{name: "bad port", values: map[string]string{"API_KEY": "k", "PORT": "http"}, want: "invalid PORT"},
		{name: "bad provider", values: map[string]string{"API_KEY": "k", "AI_PROVIDER": "llama"}, want: "unsupported AI_PROVIDER"},
		{name: "bad timeout", values: map[string]string{"API_KEY": "k", "AI_TIMEOUT": "soon"}, want: "invalid AI_TIMEOUT"},
		{name: "bad level", values: map[string]string{"API_KEY": "k", "LOG_LEVEL": "loud"}, want: "invalid LOG_LEVEL"},
		{name: "bad origin", values: map[string]string{"API_KEY": "k", "CORS_ALLOW_ORIGINS": "example.test"}, want: "invalid CORS origin"},
		{name: "bad gin mode", values: map[string]string{"API_KEY": "k", "GIN_MODE": "fast"}, want: "invalid GIN_MODE"},
		{name: "bad bool", values: map[string]string{"API_KEY": "k", "LOG_JSON": "maybe"}, want: "invalid LOG_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(mapLookup(tt.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(nil)
	require.Error(t, err)
}
