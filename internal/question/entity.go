package question

type Question struct {
	Question string `json:"question"`
	ID       int    `json:"id"`
}

type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}
