package aigateway

import (
	"context"
)

// New builds the gateway selected by cfg.Provider, wrapped with
// instrumentation.
func New(ctx context.Context, cfg Config) (Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Gateway
		err  error
	)
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiGateway(ctx, cfg.APIKey, cfg.model())
	case ProviderOpenAI:
		base = NewOpenAIGateway(cfg.APIKey, cfg.BaseURL, cfg.model())
	case ProviderAnthropic:
		base = NewAnthropicGateway(cfg.APIKey, cfg.model())
	}
	if err != nil {
		return nil, err
	}

	return WithInstrumentation(base, cfg.Timeout), nil
}
