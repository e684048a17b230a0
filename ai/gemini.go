package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// blockedFinishReasons mark a candidate whose text was withheld by the API.
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonRecitation:        true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
}

// GeminiClient calls generateContent through the Gemini API SDK.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(apiKey, modelName, baseURL string, httpClient *http.Client) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	modelName = strings.TrimPrefix(strings.TrimSpace(modelName), "models/")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	cfg := &genai.ClientConfig{
		APIKey:     strings.TrimSpace(apiKey),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: "v1beta",
		},
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		cfg.HTTPOptions.BaseURL = strings.TrimRight(baseURL, "/") + "/"
	}

	client, err := genai.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("no response from AI model")
	}
	if reason := resp.Candidates[0].FinishReason; blockedFinishReasons[reason] {
		return "", fmt.Errorf("candidate was blocked due to %s", reason)
	}

	return resp.Text(), nil
}
