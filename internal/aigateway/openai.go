package aigateway

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

type openAIGateway struct {
	client *openai.Client
	model  string
}

// NewOpenAIGateway also serves OpenAI-compatible APIs through baseURL.
func NewOpenAIGateway(apiKey, baseURL, model string) Gateway {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIGateway{client: openai.NewClientWithConfig(cfg), model: model}
}

func (g *openAIGateway) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &Error{Provider: ProviderOpenAI, Model: g.model, Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Provider: ProviderOpenAI, Model: g.model, Err: errors.New("empty response from model")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *openAIGateway) Model() string {
	return g.model
}
