package practice

import (
	"testing"

	"github.com/saulo-duarte/interview-coach/internal/progress"
	"github.com/saulo-duarte/interview-coach/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{ID: i + 1, Question: "Q" + string(rune('1'+i)) + "?"}
	}
	return qs
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession("React", question.Medium)
	assert.Equal(t, AwaitingQuestions, s.State())

	_, _, ok := s.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Skip(), ErrWrongState)

	require.NoError(t, s.Start(questions(3)))
	assert.Equal(t, AnsweringQuestion, s.State())
	assert.ErrorIs(t, s.Start(questions(1)), ErrWrongState)

	q, i, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "Q1?", q.Question)

	require.NoError(t, s.Submit("answer one", question.Evaluation{Score: 8, Feedback: "solid"}))
	require.NoError(t, s.Skip())

	_, i, _ = s.Current()
	assert.Equal(t, 2, i)
	require.NoError(t, s.Submit("answer three", question.Evaluation{Score: 9, Feedback: "great"}))

	assert.True(t, s.Completed())
	assert.Equal(t, Completed, s.State())
	assert.ErrorIs(t, s.Submit("late", question.Evaluation{}), ErrWrongState)
}

func TestSession_SkipSemantics(t *testing.T) {
	s := NewSession("Go", question.Easy)
	require.NoError(t, s.Start(questions(1)))
	require.NoError(t, s.Skip())

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, progress.SessionQuestionDTO{
		Question:   "Q1?",
		UserAnswer: "Skipped",
		Evaluation: "Question was skipped",
		Score:      0,
	}, entries[0])
	assert.True(t, s.Completed())
}

func TestSession_StartWithoutQuestions(t *testing.T) {
	s := NewSession("Go", question.Easy)
	assert.ErrorIs(t, s.Start(nil), ErrNoQuestions)
	assert.Equal(t, AwaitingQuestions, s.State())
}

func TestSession_Record(t *testing.T) {
	s := NewSession("React", question.Hard)
	_, err := s.Record()
	assert.ErrorIs(t, err, ErrWrongState)

	require.NoError(t, s.Start(questions(3)))
	require.NoError(t, s.Submit("a", question.Evaluation{Score: 7, Feedback: "ok"}))
	require.NoError(t, s.Submit("b", question.Evaluation{Score: 10, Feedback: "ok"}))
	require.NoError(t, s.Skip())

	rec, err := s.Record()
	require.NoError(t, err)
	assert.Equal(t, "React", rec.Topic)
	assert.Equal(t, "Hard", rec.Difficulty)
	assert.Equal(t, 5.7, rec.TotalScore)
	require.Len(t, rec.Questions, 3)
	assert.Equal(t, "Skipped", rec.Questions[2].UserAnswer)

	_, err = s.Record()
	assert.ErrorIs(t, err, ErrAlreadySaved)
}
