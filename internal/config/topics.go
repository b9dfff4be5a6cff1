package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultTopics []byte

// Catalog is the list of suggested interview topics. When Strict is set,
// only catalog topics are accepted for question generation.
type Catalog struct {
	Topics []string `yaml:"topics" json:"topics"`
	Strict bool     `yaml:"strict" json:"strict"`
}

// LoadCatalog reads the catalog from path, or the embedded default when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultTopics
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read topics file %s: %w", path, err)
		}
		data = b
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse topics file: %w", err)
	}
	return &c, nil
}

// Allows reports whether topic may be used. Matching is case-insensitive.
func (c *Catalog) Allows(topic string) bool {
	if c == nil || !c.Strict {
		return true
	}
	for _, t := range c.Topics {
		if strings.EqualFold(t, strings.TrimSpace(topic)) {
			return true
		}
	}
	return false
}
