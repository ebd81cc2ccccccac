package client

import (
	"context"
	"strings"
	"time"

	"song-suggester/internal/domain/entity"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client against the Gemini API using an API key.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: model}, nil
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
	}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt, systemInstruction string) (*entity.AIResponse, error) {
	var cfg *genai.GenerateContentConfig
	if systemInstruction != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleModel),
		}
	}

	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyResponse
	}

	resp := &entity.AIResponse{
		Content: text,
		Model:   g.model,
		Latency: time.Since(start).Milliseconds(),
	}
	if result.UsageMetadata != nil {
		resp.TokenCount = int(result.UsageMetadata.TotalTokenCount)
	}
	return resp, nil
}
