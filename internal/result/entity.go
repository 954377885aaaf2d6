package result

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/learnhub-app/learnhub-api/internal/generator"
)

// QuizResult is an immutable record of one completed quiz attempt. Question
// details are stored as a JSON document because they are only ever read back
// whole, never queried field by field.
type QuizResult struct {
	ID              uuid.UUID            `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"course_id"`
	Score           int                  `gorm:"not null" json:"score"`
	TotalQuestions  int                  `gorm:"not null" json:"total_questions"`
	Difficulty      generator.Difficulty `gorm:"type:text;not null" json:"difficulty"`
	Questions       datatypes.JSON       `gorm:"type:jsonb" json:"questions"`
	TimeSpent       int                  `gorm:"not null" json:"time_spent"`
	TimePerQuestion int                  `json:"time_per_question"`
	TakenAt         time.Time            `gorm:"autoCreateTime" json:"taken_at"`
}

// AnsweredQuestion is one element of the Questions document.
type AnsweredQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	TimeSpent     int    `json:"timeSpent"`
}
