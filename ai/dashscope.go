package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const dashScopeURL = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"

type DashScopeClient struct {
	apiKey     string
	modelName  string
	apiURL     string
	httpClient *http.Client
}

type DashScopeRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []DashScopeMessage `json:"messages"`
	} `json:"input"`
}

type DashScopeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type DashScopeResponse struct {
	Output struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

func NewDashScopeClient(apiKey, modelName, apiURL string, httpClient *http.Client) (*DashScopeClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(modelName) == "" {
		modelName = "qwen-turbo"
	}
	if strings.TrimSpace(apiURL) == "" {
		apiURL = dashScopeURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &DashScopeClient{
		apiKey:     apiKey,
		modelName:  modelName,
		apiURL:     apiURL,
		httpClient: httpClient,
	}, nil
}

func (d *DashScopeClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := DashScopeRequest{
		Model: d.modelName,
	}
	reqBody.Input.Messages = []DashScopeMessage{
		{Role: "user", Content: prompt},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Message != "" {
			return "", fmt.Errorf("API error (status %d): %s - %s (request_id: %s)",
				resp.StatusCode, errorResp.Code, errorResp.Message, errorResp.RequestID)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var dashScopeResp DashScopeResponse
	if err := json.Unmarshal(body, &dashScopeResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if dashScopeResp.Code != "" && dashScopeResp.Code != "Success" {
		return "", fmt.Errorf("API error: %s - %s", dashScopeResp.Code, dashScopeResp.Message)
	}

	if len(dashScopeResp.Output.Choices) == 0 {
		return "", fmt.Errorf("no response from AI model")
	}

	return dashScopeResp.Output.Choices[0].Message.Content, nil
}
