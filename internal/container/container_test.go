package container

import (
	"testing"
	"time"

	"github.com/saulo-duarte/interview-coach/internal/aigateway"
	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGatewayConfig(t *testing.T) {
	s := &config.Settings{
		AIModel:         "custom-model",
		AITimeout:       30 * time.Second,
		GeminiAPIKey:    "g-key",
		OpenAIAPIKey:    "o-key",
		OpenAIBaseURL:   "http://localhost:11434/v1",
		AnthropicAPIKey: "a-key",
	}

	tests := []struct {
		provider string
		wantKey  string
		wantBase string
	}{
		{aigateway.ProviderGemini, "g-key", ""},
		{aigateway.ProviderOpenAI, "o-key", "http://localhost:11434/v1"},
		{aigateway.ProviderAnthropic, "a-key", ""},
		{"unknown", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			s.AIProvider = tt.provider
			cfg := GatewayConfig(s)

			assert.Equal(t, tt.provider, cfg.Provider)
			assert.Equal(t, tt.wantKey, cfg.APIKey)
			assert.Equal(t, tt.wantBase, cfg.BaseURL)
			assert.Equal(t, "custom-model", cfg.Model)
			assert.Equal(t, 30*time.Second, cfg.Timeout)
		})
	}
}
