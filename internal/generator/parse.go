package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoQuestions means no repair strategy recovered a single question object.
var ErrNoQuestions = errors.New("no question structure recoverable from model output")

// parseStrategy is one pure repair attempt over the raw model text.
type parseStrategy struct {
	name string
	fn   func(string) ([]rawQuestion, error)
}

// Strategies are applied in order, stopping at the first success. Later
// entries apply increasingly aggressive repairs.
var parseStrategies = []parseStrategy{
	{"direct", parseDirect},
	{"array-span", parseArraySpan},
	{"relaxed-quotes", parseRelaxedQuotes},
	{"per-object", parsePerObject},
}

// parseQuestions runs the repair cascade. It never panics: the result is
// either a non-empty slice or an error for the caller to retry on.
func parseQuestions(text string) ([]rawQuestion, string, error) {
	var lastErr error
	for _, strategy := range parseStrategies {
		questions, err := strategy.fn(text)
		if err == nil && len(questions) > 0 {
			return questions, strategy.name, nil
		}
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", strategy.name, err)
		}
	}
	if lastErr == nil {
		lastErr = ErrNoQuestions
	}
	return nil, "", fmt.Errorf("%w: %v", ErrNoQuestions, lastErr)
}

var (
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	singleQuoteRe   = regexp.MustCompile(`([:\[,]\s*)'((?:[^'\\]|\\.)*)'`)
	objectSpanRe    = regexp.MustCompile(`(?s)\{[^{}]*\}`)
)

// parseDirect strips fences and control characters and parses as-is.
func parseDirect(text string) ([]rawQuestion, error) {
	return decodeArray(cleanText(text))
}

// parseArraySpan extracts the outermost [...] span and applies the common
// repairs: quoting bare keys and stripping trailing commas.
func parseArraySpan(text string) ([]rawQuestion, error) {
	span, err := arraySpan(cleanText(text))
	if err != nil {
		return nil, err
	}
	span = bareKeyRe.ReplaceAllString(span, `$1"$2":`)
	span = trailingCommaRe.ReplaceAllString(span, `$1`)
	return decodeArray(span)
}

// parseRelaxedQuotes additionally converts single-quoted values to
// double-quoted ones before parsing.
func parseRelaxedQuotes(text string) ([]rawQuestion, error) {
	span, err := arraySpan(cleanText(text))
	if err != nil {
		return nil, err
	}
	span = bareKeyRe.ReplaceAllString(span, `$1"$2":`)
	span = singleQuoteRe.ReplaceAllString(span, `$1"$2"`)
	span = trailingCommaRe.ReplaceAllString(span, `$1`)
	return decodeArray(span)
}

// parsePerObject falls back to harvesting independent {...} spans that look
// like question objects, keeping whichever ones parse on their own.
func parsePerObject(text string) ([]rawQuestion, error) {
	cleaned := cleanText(text)

	var questions []rawQuestion
	for _, span := range objectSpanRe.FindAllString(cleaned, -1) {
		if !strings.Contains(span, "question") ||
			!strings.Contains(span, "options") ||
			!strings.Contains(span, "correctAnswer") {
			continue
		}

		repaired := bareKeyRe.ReplaceAllString(span, `$1"$2":`)
		repaired = singleQuoteRe.ReplaceAllString(repaired, `$1"$2"`)
		repaired = trailingCommaRe.ReplaceAllString(repaired, `$1`)

		var q rawQuestion
		if err := json.Unmarshal([]byte(repaired), &q); err != nil {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// cleanText removes markdown fences and non-printing control characters.
func cleanText(text string) string {
	clean := strings.TrimSpace(text)

	if strings.HasPrefix(clean, "```") {
		start := 3
		if idx := strings.Index(clean[start:], "\n"); idx != -1 {
			start += idx + 1
		}
		if end := strings.LastIndex(clean[start:], "```"); end != -1 {
			clean = clean[start : start+end]
		} else {
			clean = clean[start:]
		}
	}

	clean = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, clean)

	return strings.TrimSpace(clean)
}

// arraySpan returns the text between the first '[' and the last ']'.
func arraySpan(text string) (string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no array span found")
	}
	return text[start : end+1], nil
}

func decodeArray(text string) ([]rawQuestion, error) {
	var questions []rawQuestion
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.New("parsed array is empty")
	}
	return questions, nil
}
