package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const codeFence = "```"

// stripCodeFence removes a leading ``` or ```json marker and a trailing
// ``` marker, then trims whitespace.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, codeFence) {
		s = s[len(codeFence):]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, codeFence)
	return strings.TrimSpace(s)
}

// ParseQuestionList decodes a JSON array of {question, id}. When any id is
// missing or repeated the whole list is renumbered 1..n by position.
func ParseQuestionList(raw string) ([]Question, error) {
	clean := stripCodeFence(raw)
	if err := decodeAndValidate(clean, questionListSchema); err != nil {
		return nil, &ParseError{Target: "questions", Raw: clean, Err: err}
	}

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, &ParseError{Target: "questions", Raw: clean, Err: err}
	}
	if len(questions) == 0 {
		return nil, &ParseError{Target: "questions", Raw: clean, Err: errors.New("empty question list")}
	}

	if !uniqueIDs(questions) {
		for i := range questions {
			questions[i].ID = i + 1
		}
	}
	return questions, nil
}

// uniqueIDs reports whether every question carries its own non-zero id.
func uniqueIDs(questions []Question) bool {
	seen := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		if q.ID == 0 {
			return false
		}
		if _, dup := seen[q.ID]; dup {
			return false
		}
		seen[q.ID] = struct{}{}
	}
	return true
}

// ParseEvaluation decodes a single {score, feedback} object with score in
// [0, 10].
func ParseEvaluation(raw string) (*Evaluation, error) {
	clean := stripCodeFence(raw)
	if err := decodeAndValidate(clean, evaluationSchema); err != nil {
		return nil, &ParseError{Target: "evaluation", Raw: clean, Err: err}
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(clean), &eval); err != nil {
		return nil, &ParseError{Target: "evaluation", Raw: clean, Err: err}
	}
	return &eval, nil
}

func decodeAndValidate(clean string, schema *jsonschema.Schema) error {
	if clean == "" {
		return errors.New("empty model output")
	}

	var doc any
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("unexpected shape: %w", err)
	}
	return nil
}
