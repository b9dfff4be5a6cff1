package question

import "github.com/saulo-duarte/interview-coach/internal/config"

const (
	DefaultQuestionCount = 5
	MaxQuestionCount     = 20
)

type GenerateRequest struct {
	Topic             string `json:"topic" validate:"required"`
	Difficulty        string `json:"difficulty" validate:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions,omitempty" validate:"omitempty,min=1,max=20"`
}

type GenerateResponse struct {
	Questions  []Question `json:"questions"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
}

type EvaluateRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

type TopicsResponse struct {
	Topics       []string     `json:"topics"`
	Difficulties []Difficulty `json:"difficulties"`
	Strict       bool         `json:"strict"`
}

func topicsResponse(c *config.Catalog) TopicsResponse {
	resp := TopicsResponse{Topics: []string{}, Difficulties: AllDifficulties}
	if c != nil {
		resp.Topics = append(resp.Topics, c.Topics...)
		resp.Strict = c.Strict
	}
	return resp
}
