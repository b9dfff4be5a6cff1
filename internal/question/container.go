package question

import (
	"github.com/saulo-duarte/interview-coach/internal/aigateway"
	"github.com/saulo-duarte/interview-coach/internal/config"
)

type QuestionContainer struct {
	Service Service
	Handler *Handler
}

func NewQuestionContainer(gateway aigateway.Gateway, catalog *config.Catalog) *QuestionContainer {
	service := NewService(gateway, catalog)
	handler := NewHandler(service)

	return &QuestionContainer{
		Service: service,
		Handler: handler,
	}
}
