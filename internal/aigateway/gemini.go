package aigateway

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, apiKey, model string) (Gateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGateway{client: client, model: model}, nil
}

func (g *geminiGateway) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &Error{Provider: ProviderGemini, Model: g.model, Err: err}
	}

	raw := result.Text()
	if raw == "" {
		return "", &Error{Provider: ProviderGemini, Model: g.model, Err: errors.New("empty response from model")}
	}
	return raw, nil
}

func (g *geminiGateway) Model() string {
	return g.model
}
