package result

import "github.com/learnhub-app/learnhub-api/internal/generator"

type SaveResultDTO struct {
	CourseID        string               `json:"courseId"`
	Questions       []AnsweredQuestion   `json:"questions"`
	Score           int                  `json:"score"`
	TotalQuestions  int                  `json:"totalQuestions"`
	Difficulty      generator.Difficulty `json:"difficulty"`
	TimeSpent       int                  `json:"timeSpent"`
	TimePerQuestion int                  `json:"timePerQuestion"`
}

// SaveResultResponse returns the new record together with the user's recent
// history so the client can refresh its view without a second round trip.
type SaveResultResponse struct {
	Result  *QuizResult  `json:"result"`
	History []QuizResult `json:"history"`
}

// Statistics is the per-user aggregate over all stored results.
type Statistics struct {
	TotalQuizzes   int            `json:"total_quizzes"`
	AverageScore   float64        `json:"average_score"`
	BestScore      float64        `json:"best_score"`
	TotalTimeSpent int            `json:"total_time_spent"`
	ByDifficulty   map[string]int `json:"by_difficulty"`
}
