package question

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	questionListSchema = mustCompile("schema://question-list.json", map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"question"},
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"id":       map[string]any{"type": "integer"},
			},
		},
	})

	evaluationSchema = mustCompile("schema://evaluation.json", map[string]any{
		"type":     "object",
		"required": []any{"score", "feedback"},
		"properties": map[string]any{
			"score":    map[string]any{"type": "number", "minimum": 0, "maximum": 10},
			"feedback": map[string]any{"type": "string"},
		},
	})
)

// mustCompile round-trips def through encoding/json so the compiler sees
// plain JSON values.
func mustCompile(url string, def map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(def)
	if err != nil {
		panic(fmt.Sprintf("marshal schema %s: %v", url, err))
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		panic(fmt.Sprintf("unmarshal schema %s: %v", url, err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", url, err))
	}
	s, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", url, err))
	}
	return s
}
