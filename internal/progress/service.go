package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/saulo-duarte/interview-coach/internal/question"
)

const HistoryLimit = 20

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type SessionService interface {
	Save(ctx context.Context, userID uuid.UUID, dto CreateSessionDTO) (*Session, error)
	ListRecent(ctx context.Context, userID uuid.UUID) ([]*Session, error)
	Stats(ctx context.Context, userID uuid.UUID) (*StatsSummary, error)
	GetByID(ctx context.Context, userID uuid.UUID, id string) (*Session, error)
}

type sessionService struct {
	repo SessionRepository
	now  func() time.Time
}

func NewService(repo SessionRepository) SessionService {
	return &sessionService{repo: repo, now: time.Now}
}

func (s *sessionService) Save(ctx context.Context, userID uuid.UUID, dto CreateSessionDTO) (*Session, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	dto.Topic = strings.TrimSpace(dto.Topic)
	if err := config.ValidateStruct(dto); err != nil {
		log.WithError(err).Warn("Invalid session payload")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	difficulty, ok := question.ParseDifficulty(dto.Difficulty)
	if !ok {
		return nil, fmt.Errorf("%w: difficulty must be one of Easy, Medium, Hard", ErrInvalidInput)
	}

	questions := normalizeSkipped(dto.Questions)
	total := dto.TotalScore
	if len(questions) > 0 {
		total = AverageScore(questions)
	}

	session := &Session{
		UserID:      userID,
		Topic:       dto.Topic,
		Difficulty:  difficulty,
		TotalScore:  total,
		CompletedAt: s.now().UTC().Truncate(time.Microsecond),
		Questions:   make([]SessionQuestion, len(questions)),
	}
	for i, q := range questions {
		session.Questions[i] = SessionQuestion{
			OrderIndex: i,
			Question:   q.Question,
			UserAnswer: q.UserAnswer,
			Evaluation: q.Evaluation,
			Score:      q.Score,
		}
	}

	if err := s.repo.Create(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save session")
		return nil, err
	}

	log.WithField("session_id", session.ID).Info("Session saved")
	return session, nil
}

func (s *sessionService) ListRecent(ctx context.Context, userID uuid.UUID) ([]*Session, error) {
	sessions, err := s.repo.ListRecentByUser(ctx, userID, HistoryLimit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list sessions")
		return nil, err
	}
	return sessions, nil
}

// Stats aggregates over the user's full history, not just the recent window.
func (s *sessionService) Stats(ctx context.Context, userID uuid.UUID) (*StatsSummary, error) {
	sessions, err := s.repo.ListAllByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load sessions for stats")
		return nil, err
	}
	stats := ComputeStats(sessions)
	return &stats, nil
}

// GetByID treats a malformed id like a missing one.
func (s *sessionService) GetByID(ctx context.Context, userID uuid.UUID, id string) (*Session, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return s.repo.GetByIDForUser(ctx, sessionID, userID)
}

// normalizeSkipped forces skipped entries to score 0 with the fixed
// feedback text.
func normalizeSkipped(in []SessionQuestionDTO) []SessionQuestionDTO {
	out := make([]SessionQuestionDTO, len(in))
	for i, q := range in {
		if q.UserAnswer == SkippedAnswer {
			q.Evaluation = SkippedFeedback
			q.Score = 0
		}
		out[i] = q
	}
	return out
}

// AverageScore is the mean of per-question scores rounded to one decimal,
// or 0 when there are no questions.
func AverageScore(questions []SessionQuestionDTO) float64 {
	if len(questions) == 0 {
		return 0
	}
	var sum float64
	for _, q := range questions {
		sum += q.Score
	}
	return math.Round(sum/float64(len(questions))*10) / 10
}
