package generator

import (
	"fmt"
	"regexp"
	"strings"
)

var optionLetters = [4]string{"A", "B", "C", "D"}

var (
	// Matches one leading letter label, e.g. "A. ", "b) ", "C: ". Applied
	// repeatedly because models sometimes double-label ("A. A) text").
	optionPrefixRe = regexp.MustCompile(`^[A-Da-d][.):]\s*`)
	answerLetterRe = regexp.MustCompile(`(?i)^\s*["']?\s*([A-D])\s*[.)"':]?`)
)

// formatQuestions normalizes raw questions to the canonical shape. Each
// question is handled independently: a malformed entry is repaired in place
// rather than aborting the batch. The result is trimmed to the requested
// count; under-production is reported via the warning, not an error.
func formatQuestions(raw []rawQuestion, requested, timePerQuestion int) ([]Question, string) {
	if len(raw) > requested {
		raw = raw[:requested]
	}

	questions := make([]Question, 0, len(raw))
	for i, rq := range raw {
		questions = append(questions, formatQuestion(rq, i, timePerQuestion))
	}

	warning := ""
	if len(questions) < requested {
		warning = fmt.Sprintf("model produced %d of %d requested questions", len(questions), requested)
	}
	return questions, warning
}

func formatQuestion(rq rawQuestion, index, timePerQuestion int) Question {
	text := strings.TrimSpace(rq.Question)
	if text == "" {
		text = fmt.Sprintf("Question %d", index+1)
	}

	return Question{
		ID:              index + 1,
		Question:        text,
		Options:         formatOptions(rq.Options),
		CorrectAnswer:   parseAnswer(rq.CorrectAnswer, index),
		TimePerQuestion: timePerQuestion,
	}
}

// formatOptions yields exactly four options, each carrying its canonical
// letter prefix exactly once.
func formatOptions(raw []interface{}) []string {
	texts := make([]string, 0, 4)
	for _, opt := range raw {
		s, ok := opt.(string)
		if !ok {
			continue
		}
		texts = append(texts, stripOptionPrefix(s))
		if len(texts) == 4 {
			break
		}
	}

	for len(texts) < 4 {
		texts = append(texts, "Option "+optionLetters[len(texts)])
	}

	options := make([]string, 4)
	for i, text := range texts {
		options[i] = optionLetters[i] + ". " + text
	}
	return options
}

// stripOptionPrefix removes existing letter labels so the canonical one can
// be re-applied idempotently.
func stripOptionPrefix(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < 3; i++ {
		stripped := optionPrefixRe.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = strings.TrimSpace(stripped)
	}
	return s
}

// parseAnswer recovers a single letter from the varied shapes models emit
// ("A", "a.", `"C)"`). Unrecoverable answers are assigned deterministically
// by rotating through the letters so repeated runs stay reproducible.
func parseAnswer(raw interface{}, index int) string {
	if s, ok := raw.(string); ok {
		if m := answerLetterRe.FindStringSubmatch(s); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return optionLetters[index%4]
}
