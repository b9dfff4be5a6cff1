package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/interview-coach/internal/aigateway"
	"github.com/saulo-duarte/interview-coach/internal/auth"
	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/saulo-duarte/interview-coach/internal/progress"
	"github.com/saulo-duarte/interview-coach/internal/question"
	"github.com/saulo-duarte/interview-coach/internal/router"
)

type Container struct {
	Settings          *config.Settings
	Catalog           *config.Catalog
	Gateway           aigateway.Gateway
	QuestionContainer *question.QuestionContainer
	ProgressContainer *progress.ProgressContainer
	AuthHandler       *auth.Handler
}

func New(ctx context.Context, s *config.Settings) (*Container, error) {
	auth.SetSecret(s.JWTSecret)

	if err := config.Connect(ctx, s.DatabaseDriver, s.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	catalog, err := config.LoadCatalog(s.TopicsFile)
	if err != nil {
		return nil, err
	}
	if s.TopicsStrict {
		catalog.Strict = true
	}

	gateway, err := aigateway.New(ctx, GatewayConfig(s))
	if err != nil {
		return nil, fmt.Errorf("failed to build AI gateway: %w", err)
	}
	config.WithContext(ctx).
		WithField("provider", s.AIProvider).
		WithField("model", gateway.Model()).
		Info("AI gateway ready")

	return &Container{
		Settings:          s,
		Catalog:           catalog,
		Gateway:           gateway,
		QuestionContainer: question.NewQuestionContainer(gateway, catalog),
		ProgressContainer: progress.NewProgressContainer(config.DB),
		AuthHandler:       auth.NewHandler(s.CookieDomain, s.CookieSecure),
	}, nil
}

// GatewayConfig picks the API key that belongs to the configured provider.
func GatewayConfig(s *config.Settings) aigateway.Config {
	cfg := aigateway.Config{
		Provider: s.AIProvider,
		Model:    s.AIModel,
		Timeout:  s.AITimeout,
	}
	switch s.AIProvider {
	case aigateway.ProviderGemini:
		cfg.APIKey = s.GeminiAPIKey
	case aigateway.ProviderOpenAI:
		cfg.APIKey = s.OpenAIAPIKey
		cfg.BaseURL = s.OpenAIBaseURL
	case aigateway.ProviderAnthropic:
		cfg.APIKey = s.AnthropicAPIKey
	}
	return cfg
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		QuestionHandler: c.QuestionContainer.Handler,
		ProgressHandler: c.ProgressContainer.Handler,
		AuthHandler:     c.AuthHandler,
		AllowedOrigins:  c.Settings.CorsAllowedOrigins,
	})
}
