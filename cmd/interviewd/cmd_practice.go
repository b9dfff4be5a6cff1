package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/saulo-duarte/interview-coach/internal/practice"
	"github.com/saulo-duarte/interview-coach/internal/question"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interview in the terminal against a running API",
	RunE:  runPractice,
}

func init() {
	practiceCmd.Flags().String("api", "http://localhost:8080", "Base URL of the API")
	practiceCmd.Flags().String("token", "", "Bearer token (defaults to INTERVIEW_TOKEN)")
	practiceCmd.Flags().String("topic", "", "Interview topic")
	practiceCmd.Flags().String("difficulty", string(question.Medium), "Easy, Medium or Hard")
	practiceCmd.Flags().Int("count", question.DefaultQuestionCount, "Number of questions")
	_ = practiceCmd.MarkFlagRequired("topic")
}

func runPractice(cmd *cobra.Command, args []string) error {
	config.Init()

	api, _ := cmd.Flags().GetString("api")
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("INTERVIEW_TOKEN")
	}
	if token == "" {
		return errors.New("a token is required (--token or INTERVIEW_TOKEN); mint one with 'interviewd token'")
	}

	topic, _ := cmd.Flags().GetString("topic")
	raw, _ := cmd.Flags().GetString("difficulty")
	difficulty, ok := question.ParseDifficulty(raw)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", raw)
	}
	count, _ := cmd.Flags().GetInt("count")

	ctx := cmd.Context()
	client := practice.NewClient(api, token, nil)
	runner := practice.NewRunner(client, cmd.InOrStdin(), cmd.OutOrStdout())

	if _, err := runner.Run(ctx, practice.Options{
		Topic:             topic,
		Difficulty:        difficulty,
		NumberOfQuestions: count,
	}); err != nil {
		return err
	}

	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sessions: %d  Average score: %.1f\n", stats.TotalSessions, stats.AverageScore)
	return nil
}
