package practice

import (
	"errors"

	"github.com/saulo-duarte/interview-coach/internal/progress"
	"github.com/saulo-duarte/interview-coach/internal/question"
)

type State int

const (
	AwaitingQuestions State = iota
	AnsweringQuestion
	Completed
)

func (s State) String() string {
	switch s {
	case AwaitingQuestions:
		return "awaiting_questions"
	case AnsweringQuestion:
		return "answering_question"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	ErrNoQuestions  = errors.New("no questions to answer")
	ErrWrongState   = errors.New("operation not allowed in current state")
	ErrAlreadySaved = errors.New("session already recorded")
)

// Session walks one interview from the generated question list to a
// completed record. It is not safe for concurrent use.
type Session struct {
	Topic      string
	Difficulty question.Difficulty

	state     State
	questions []question.Question
	entries   []progress.SessionQuestionDTO
	recorded  bool
}

func NewSession(topic string, difficulty question.Difficulty) *Session {
	return &Session{Topic: topic, Difficulty: difficulty}
}

func (s *Session) State() State { return s.state }

func (s *Session) Start(questions []question.Question) error {
	if s.state != AwaitingQuestions {
		return ErrWrongState
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.questions = questions
	s.entries = make([]progress.SessionQuestionDTO, 0, len(questions))
	s.state = AnsweringQuestion
	return nil
}

// Current returns the question awaiting an answer and its zero-based index.
func (s *Session) Current() (question.Question, int, bool) {
	if s.state != AnsweringQuestion {
		return question.Question{}, 0, false
	}
	i := len(s.entries)
	return s.questions[i], i, true
}

func (s *Session) Total() int { return len(s.questions) }

func (s *Session) Submit(answer string, eval question.Evaluation) error {
	return s.advance(answer, eval.Feedback, eval.Score)
}

// Skip records the current question with score 0 and moves on.
func (s *Session) Skip() error {
	return s.advance(progress.SkippedAnswer, progress.SkippedFeedback, 0)
}

func (s *Session) advance(answer, feedback string, score float64) error {
	q, _, ok := s.Current()
	if !ok {
		return ErrWrongState
	}
	s.entries = append(s.entries, progress.SessionQuestionDTO{
		Question:   q.Question,
		UserAnswer: answer,
		Evaluation: feedback,
		Score:      score,
	})
	if len(s.entries) == len(s.questions) {
		s.state = Completed
	}
	return nil
}

func (s *Session) Completed() bool { return s.state == Completed }

func (s *Session) Entries() []progress.SessionQuestionDTO {
	return append([]progress.SessionQuestionDTO(nil), s.entries...)
}

// Record builds the save payload. It succeeds once per completed session.
func (s *Session) Record() (progress.CreateSessionDTO, error) {
	if s.state != Completed {
		return progress.CreateSessionDTO{}, ErrWrongState
	}
	if s.recorded {
		return progress.CreateSessionDTO{}, ErrAlreadySaved
	}
	s.recorded = true
	return progress.CreateSessionDTO{
		Topic:      s.Topic,
		Difficulty: string(s.Difficulty),
		Questions:  s.Entries(),
		TotalScore: progress.AverageScore(s.entries),
	}, nil
}
