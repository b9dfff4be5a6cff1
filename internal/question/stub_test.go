package question

import (
	"context"
	"sync"
)

// stubGateway returns canned responses in order and records prompts.
type stubGateway struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (s *stubGateway) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", nil
	}
	raw := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return raw, nil
}

func (s *stubGateway) Model() string { return "stub" }

func (s *stubGateway) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
