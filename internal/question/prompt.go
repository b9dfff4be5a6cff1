package question

import "fmt"

const generationTemplate = `Generate %d interview questions about %s at %s difficulty level.
Return ONLY a JSON array of exactly %d objects with this exact format:
[{"question": "question text here", "id": 1}, {"question": "question text here", "id": 2}]
Number the ids from 1 in order.
Do not include any markdown formatting, code fences or additional text. Just the JSON array.`

const evaluationTemplate = `You are an interview evaluator.
Topic: %s
Difficulty: %s
Question: %s
Candidate's Answer: %s

Evaluate the answer and provide:
1. A score from 0-10
2. Brief feedback (2-3 sentences)

Return ONLY a JSON object with this exact format:
{"score": <number>, "feedback": "<feedback text>"}
Do not include any markdown formatting, code fences or additional text.`

// BuildGenerationPrompt asks for count questions as a JSON array of
// {question, id}. count is raised to 1 when lower.
func BuildGenerationPrompt(topic string, difficulty Difficulty, count int) string {
	if count < 1 {
		count = 1
	}
	return fmt.Sprintf(generationTemplate, count, topic, difficulty, count)
}

// BuildEvaluationPrompt asks for a single {score, feedback} object.
func BuildEvaluationPrompt(topic string, difficulty Difficulty, question, answer string) string {
	return fmt.Sprintf(evaluationTemplate, topic, difficulty, question, answer)
}
