package practice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/interview-coach/internal/progress"
	"github.com/saulo-duarte/interview-coach/internal/question"
)

const (
	SkipCommand = "/skip"
	QuitCommand = "/quit"
)

var ErrAborted = errors.New("interview aborted")

type Options struct {
	Topic             string
	Difficulty        question.Difficulty
	NumberOfQuestions int
}

// Runner drives a Session from a line-oriented terminal.
type Runner struct {
	client *Client
	in     *bufio.Scanner
	out    io.Writer
}

func NewRunner(client *Client, in io.Reader, out io.Writer) *Runner {
	return &Runner{client: client, in: bufio.NewScanner(in), out: out}
}

// Run plays one interview and returns the saved record.
func (r *Runner) Run(ctx context.Context, opts Options) (*progress.Session, error) {
	resp, err := r.client.Generate(ctx, question.GenerateRequest{
		Topic:             opts.Topic,
		Difficulty:        string(opts.Difficulty),
		NumberOfQuestions: opts.NumberOfQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	session := NewSession(resp.Topic, resp.Difficulty)
	if err := session.Start(resp.Questions); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out, "%s interview on %s: %d questions. Type %s to skip, %s to stop.\n",
		resp.Difficulty, resp.Topic, session.Total(), SkipCommand, QuitCommand)

	for !session.Completed() {
		q, i, _ := session.Current()
		fmt.Fprintf(r.out, "\nQuestion %d/%d: %s\n> ", i+1, session.Total(), q.Question)

		answer, err := r.readAnswer()
		if err != nil {
			return nil, err
		}

		switch answer {
		case QuitCommand:
			return nil, ErrAborted
		case SkipCommand:
			if err := session.Skip(); err != nil {
				return nil, err
			}
			fmt.Fprintln(r.out, progress.SkippedFeedback)
			continue
		}

		eval, err := r.client.Evaluate(ctx, question.EvaluateRequest{
			Question:   q.Question,
			Answer:     answer,
			Topic:      session.Topic,
			Difficulty: string(session.Difficulty),
		})
		if err != nil {
			return nil, fmt.Errorf("evaluate answer: %w", err)
		}
		fmt.Fprintf(r.out, "Score: %.1f/10\n%s\n", eval.Score, eval.Feedback)

		if err := session.Submit(answer, *eval); err != nil {
			return nil, err
		}
	}

	record, err := session.Record()
	if err != nil {
		return nil, err
	}
	saved, err := r.client.SaveProgress(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	fmt.Fprintf(r.out, "\nInterview complete. Total score: %.1f/10\n", saved.TotalScore)
	return saved, nil
}

// readAnswer skips blank lines.
func (r *Runner) readAnswer() (string, error) {
	for r.in.Scan() {
		if line := strings.TrimSpace(r.in.Text()); line != "" {
			return line, nil
		}
	}
	if err := r.in.Err(); err != nil {
		return "", err
	}
	return "", ErrAborted
}
