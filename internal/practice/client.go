package practice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/saulo-duarte/interview-coach/internal/progress"
	"github.com/saulo-duarte/interview-coach/internal/question"
)

// APIError is a non-2xx response from the interview API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

func (c *Client) Generate(ctx context.Context, req question.GenerateRequest) (*question.GenerateResponse, error) {
	var resp question.GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/questions/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Evaluate(ctx context.Context, req question.EvaluateRequest) (*question.Evaluation, error) {
	var eval question.Evaluation
	if err := c.do(ctx, http.MethodPost, "/questions/evaluate", req, &eval); err != nil {
		return nil, err
	}
	return &eval, nil
}

func (c *Client) Topics(ctx context.Context) (*question.TopicsResponse, error) {
	var resp question.TopicsResponse
	if err := c.do(ctx, http.MethodGet, "/questions/topics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SaveProgress(ctx context.Context, dto progress.CreateSessionDTO) (*progress.Session, error) {
	var s progress.Session
	if err := c.do(ctx, http.MethodPost, "/progress", dto, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Stats(ctx context.Context) (*progress.StatsSummary, error) {
	var stats progress.StatsSummary
	if err := c.do(ctx, http.MethodGet, "/progress/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
