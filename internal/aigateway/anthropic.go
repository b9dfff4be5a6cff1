package aigateway

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 2048

type anthropicGateway struct {
	client anthropic.Client
	model  string
}

func NewAnthropicGateway(apiKey, model string) Gateway {
	return &anthropicGateway{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (g *anthropicGateway) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &Error{Provider: ProviderAnthropic, Model: g.model, Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &Error{Provider: ProviderAnthropic, Model: g.model, Err: errors.New("no text content in response")}
	}
	return sb.String(), nil
}

func (g *anthropicGateway) Model() string {
	return g.model
}
