package progress

import "github.com/saulo-duarte/interview-coach/internal/question"

type CreateSessionDTO struct {
	Topic      string               `json:"topic" validate:"required"`
	Difficulty string               `json:"difficulty" validate:"required"`
	Questions  []SessionQuestionDTO `json:"questions" validate:"dive"`
	TotalScore float64              `json:"totalScore" validate:"min=0,max=10"`
}

type SessionQuestionDTO struct {
	Question   string  `json:"question" validate:"required"`
	UserAnswer string  `json:"userAnswer"`
	Evaluation string  `json:"evaluation"`
	Score      float64 `json:"score" validate:"min=0,max=10"`
}

type StatsSummary struct {
	TotalSessions       int                         `json:"totalSessions"`
	AverageScore        float64                     `json:"averageScore"`
	TopicBreakdown      map[string]int              `json:"topicBreakdown"`
	DifficultyBreakdown map[question.Difficulty]int `json:"difficultyBreakdown"`
}
