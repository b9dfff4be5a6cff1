package question

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

var AllDifficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty matches s case-insensitively against the known levels.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.TrimSpace(s)
	for _, d := range AllDifficulties {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

func (d Difficulty) IsValid() bool {
	return d == Easy || d == Medium || d == Hard
}
