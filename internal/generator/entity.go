package generator

// Difficulty labels accepted by the generation endpoint.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

const (
	MinQuestions = 1
	MaxQuestions = 20

	defaultTimePerQuestion = 30
)

type GenerateQuizDTO struct {
	CourseID          string     `json:"courseId"`
	NumberOfQuestions int        `json:"numberOfQuestions"`
	Difficulty        Difficulty `json:"difficulty"`
	TimePerQuestion   int        `json:"timePerQuestion"`
}

// Question is the canonical post-validation shape: exactly four prefixed
// options and a single-letter answer.
type Question struct {
	ID              int      `json:"id"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   string   `json:"correctAnswer"`
	TimePerQuestion int      `json:"timePerQuestion"`
}

type GenerateQuizResponse struct {
	Questions []Question `json:"questions"`
	Model     string     `json:"model"`
}

// rawQuestion is the loosely typed shape recovered from model output before
// normalization. CorrectAnswer is untyped because models emit letters,
// quoted letters, or even indices.
type rawQuestion struct {
	Question      string        `json:"question"`
	Options       []interface{} `json:"options"`
	CorrectAnswer interface{}   `json:"correctAnswer"`
}
