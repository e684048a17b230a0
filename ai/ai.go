package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sqlgen/config"
)

// Generator is the external text-generation capability. Generate makes a
// single request for prompt and returns the completion text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the generator for the configured provider.
func New(cfg config.AIConfig) (Generator, error) {
	// http.Client has no timeout of its own; AI_TIMEOUT (120s by default) bounds each call.
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 120 * time.Second
	}

	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiClient(cfg.APIKey, cfg.ModelName, cfg.BaseURL, httpClient)
	case config.ProviderDashScope:
		return NewDashScopeClient(cfg.APIKey, cfg.ModelName, cfg.BaseURL, httpClient)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
