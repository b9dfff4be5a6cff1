package question

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/interview-coach/internal/aigateway"
	"github.com/saulo-duarte/interview-coach/internal/config"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	EvaluateAnswer(ctx context.Context, req EvaluateRequest) (*Evaluation, error)
	Topics() TopicsResponse
}

type service struct {
	gateway aigateway.Gateway
	catalog *config.Catalog
}

func NewService(gateway aigateway.Gateway, catalog *config.Catalog) Service {
	return &service{gateway: gateway, catalog: catalog}
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	req.Topic = strings.TrimSpace(req.Topic)
	req.Difficulty = strings.TrimSpace(req.Difficulty)
	if err := validate(req); err != nil {
		return nil, err
	}

	difficulty, ok := ParseDifficulty(req.Difficulty)
	if !ok {
		return nil, &ValidationError{Field: "difficulty", Reason: "must be one of Easy, Medium, Hard"}
	}
	if !s.catalog.Allows(req.Topic) {
		return nil, &ValidationError{Field: "topic", Reason: "is not in the topic catalog"}
	}

	count := req.NumberOfQuestions
	if count == 0 {
		count = DefaultQuestionCount
	}

	raw, err := s.gateway.Complete(ctx, BuildGenerationPrompt(req.Topic, difficulty, count))
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestionList(raw)
	if err != nil {
		return nil, err
	}

	log.WithField("topic", req.Topic).Infof("Generated %d questions", len(questions))
	return &GenerateResponse{Questions: questions, Topic: req.Topic, Difficulty: difficulty}, nil
}

func (s *service) EvaluateAnswer(ctx context.Context, req EvaluateRequest) (*Evaluation, error) {
	req.Question = strings.TrimSpace(req.Question)
	req.Answer = strings.TrimSpace(req.Answer)
	if err := validate(req); err != nil {
		return nil, err
	}

	difficulty := Difficulty(strings.TrimSpace(req.Difficulty))
	if d, ok := ParseDifficulty(req.Difficulty); ok {
		difficulty = d
	}

	raw, err := s.gateway.Complete(ctx, BuildEvaluationPrompt(strings.TrimSpace(req.Topic), difficulty, req.Question, req.Answer))
	if err != nil {
		return nil, err
	}

	return ParseEvaluation(raw)
}

func (s *service) Topics() TopicsResponse {
	return topicsResponse(s.catalog)
}

func validate(v any) error {
	err := config.ValidateStruct(v)
	if err == nil {
		return nil
	}
	var fe *config.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Reason: strings.TrimPrefix(fe.Error(), fe.Field+" ")}
	}
	return &ValidationError{Field: "body", Reason: "is invalid: " + err.Error()}
}
