package progress

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/interview-coach/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *sessionService {
	t.Helper()
	return NewService(NewRepository(newTestDB(t))).(*sessionService)
}

func validDTO() CreateSessionDTO {
	return CreateSessionDTO{
		Topic:      "React",
		Difficulty: "medium",
		TotalScore: 3.5,
		Questions: []SessionQuestionDTO{
			{Question: "What is JSX?", UserAnswer: "Syntax sugar", Evaluation: "Good", Score: 7},
			{Question: "What is a hook?", UserAnswer: SkippedAnswer, Evaluation: SkippedFeedback, Score: 0},
		},
	}
}

func TestService_Save(t *testing.T) {
	svc := newTestService(t)
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	owner := uuid.New()

	s, err := svc.Save(context.Background(), owner, validDTO())
	require.NoError(t, err)

	assert.Equal(t, owner, s.UserID)
	assert.Equal(t, question.Medium, s.Difficulty)
	assert.Equal(t, fixed, s.CompletedAt)
	require.Len(t, s.Questions, 2)
	assert.Equal(t, 1, s.Questions[1].OrderIndex)

	got, err := svc.GetByID(context.Background(), owner, s.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "What is a hook?", got.Questions[1].Question)
}

func TestService_Save_Invalid(t *testing.T) {
	tests := map[string]func(d *CreateSessionDTO){
		"missing topic":        func(d *CreateSessionDTO) { d.Topic = " " },
		"missing difficulty":   func(d *CreateSessionDTO) { d.Difficulty = "" },
		"unknown difficulty":   func(d *CreateSessionDTO) { d.Difficulty = "Impossible" },
		"total above 10":       func(d *CreateSessionDTO) { d.TotalScore = 10.5 },
		"negative total":       func(d *CreateSessionDTO) { d.TotalScore = -1 },
		"question score range": func(d *CreateSessionDTO) { d.Questions[0].Score = 12 },
		"empty question text":  func(d *CreateSessionDTO) { d.Questions[0].Question = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t)
			dto := validDTO()
			mutate(&dto)

			_, err := svc.Save(context.Background(), uuid.New(), dto)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(t)
	owner := uuid.New()
	s, err := svc.Save(context.Background(), owner, validDTO())
	require.NoError(t, err)

	for name, args := range map[string]struct {
		user uuid.UUID
		id   string
	}{
		"other owner": {uuid.New(), s.ID.String()},
		"unknown id":  {owner, uuid.NewString()},
		"malformed":   {owner, "507f1f77bcf86cd799439011"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GetByID(context.Background(), args.user, args.id)
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestService_StatsUsesFullHistory(t *testing.T) {
	svc := newTestService(t)
	owner := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < HistoryLimit+5; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return at }
		_, err := svc.Save(context.Background(), owner, validDTO())
		require.NoError(t, err)
	}

	recent, err := svc.ListRecent(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, recent, HistoryLimit)

	stats, err := svc.Stats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, HistoryLimit+5, stats.TotalSessions)
	assert.InDelta(t, 3.5, stats.AverageScore, 1e-9)
	assert.Equal(t, HistoryLimit+5, stats.TopicBreakdown["React"])
	assert.Equal(t, HistoryLimit+5, stats.DifficultyBreakdown[question.Medium])
}

func TestService_Save_NormalizesSkippedEntries(t *testing.T) {
	svc := newTestService(t)
	owner := uuid.New()

	s, err := svc.Save(context.Background(), owner, CreateSessionDTO{
		Topic:      "Go",
		Difficulty: "Easy",
		TotalScore: 9,
		Questions: []SessionQuestionDTO{
			{Question: "What is a goroutine?", UserAnswer: SkippedAnswer, Evaluation: "great", Score: 9},
			{Question: "What is a channel?", UserAnswer: "A typed pipe", Evaluation: "ok", Score: 6},
		},
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), owner, s.ID.String())
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, SkippedAnswer, got.Questions[0].UserAnswer)
	assert.Equal(t, SkippedFeedback, got.Questions[0].Evaluation)
	assert.Zero(t, got.Questions[0].Score)
	assert.Equal(t, 3.0, got.TotalScore)
}

func TestService_Save_TotalScoreFollowsEntries(t *testing.T) {
	svc := newTestService(t)

	dto := validDTO()
	dto.TotalScore = 10
	s, err := svc.Save(context.Background(), uuid.New(), dto)
	require.NoError(t, err)
	assert.Equal(t, 3.5, s.TotalScore)

	dto.Questions = nil
	dto.TotalScore = 4
	s, err = svc.Save(context.Background(), uuid.New(), dto)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.TotalScore)
}

func TestService_ListRecent_SameInstantNewestFirst(t *testing.T) {
	svc := newTestService(t)
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	owner := uuid.New()

	for _, topic := range []string{"first", "second", "third"} {
		dto := validDTO()
		dto.Topic = topic
		_, err := svc.Save(context.Background(), owner, dto)
		require.NoError(t, err)
	}

	recent, err := svc.ListRecent(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, []string{"third", "second", "first"},
		[]string{recent[0].Topic, recent[1].Topic, recent[2].Topic})
}
