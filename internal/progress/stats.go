package progress

import "github.com/saulo-duarte/interview-coach/internal/question"

// ComputeStats summarises sessions. The average is 0 for an empty list and
// every difficulty level is present in the breakdown.
func ComputeStats(sessions []*Session) StatsSummary {
	stats := StatsSummary{
		TotalSessions:       len(sessions),
		TopicBreakdown:      map[string]int{},
		DifficultyBreakdown: map[question.Difficulty]int{},
	}
	for _, d := range question.AllDifficulties {
		stats.DifficultyBreakdown[d] = 0
	}
	if len(sessions) == 0 {
		return stats
	}

	var sum float64
	for _, s := range sessions {
		sum += s.TotalScore
		stats.TopicBreakdown[s.Topic]++
		if _, ok := stats.DifficultyBreakdown[s.Difficulty]; ok {
			stats.DifficultyBreakdown[s.Difficulty]++
		}
	}
	stats.AverageScore = sum / float64(len(sessions))
	return stats
}
