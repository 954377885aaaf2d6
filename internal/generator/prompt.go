package generator

import "fmt"

const systemPrompt = `You are a quiz generator for an educational study platform.

You create clear, challenging multiple-choice questions that test real
understanding of the course material.

Rules:
1. Every question has exactly 4 plausible options labeled "A. ", "B. ", "C. ", "D. ".
2. Every question has exactly one correct answer, given as a single letter A, B, C or D.
3. Distractors must be plausible: similar length and structure to the correct option.
4. Never reveal the answer inside the question text.
5. Write real course content. Never produce filler such as "Question 1 about X",
   "Option A for question 1", "placeholder", "example" or "sample" text.

Output format:
Respond with ONLY a JSON array, no surrounding prose, no markdown fences:

[
  {
    "question": "<question text>",
    "options": ["A. ...", "B. ...", "C. ...", "D. ..."],
    "correctAnswer": "B"
  }
]`

// buildUserPrompt over-specifies count and labeling because models are
// otherwise prone to free text and inconsistent option formats.
func buildUserPrompt(courseName string, count int, difficulty Difficulty) string {
	return fmt.Sprintf(
		"Generate exactly %d multiple-choice questions about the course %q at %q difficulty. "+
			"Each question must have exactly 4 options labeled A through D and a single-letter "+
			"correctAnswer. Respond with only the JSON array, nothing else.",
		count, courseName, difficulty,
	)
}

// clampCount bounds the requested question count to the allowed range.
func clampCount(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}
