package generator

import (
	"fmt"
	"regexp"
)

// Filler patterns models fall back to when they get lazy. Matching any of
// them marks the whole batch unusable and forces a model retry.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)question\s+\d+\s+about`),
	regexp.MustCompile(`(?i)option\s+[a-d1-4]\s+for\s+question`),
	regexp.MustCompile(`(?i)\bplaceholder\b`),
	regexp.MustCompile(`(?i)\bexample\b`),
	regexp.MustCompile(`(?i)\bsample\b`),
	regexp.MustCompile(`(?i)^\s*(?:[a-d][.):]\s*)?option\s+[a-d]\s*$`),
}

// isPlaceholder scans question text and options against the filler patterns.
func isPlaceholder(questions []rawQuestion) bool {
	for _, q := range questions {
		if matchesPlaceholder(q.Question) {
			return true
		}
		for _, opt := range q.Options {
			if s, ok := opt.(string); ok && matchesPlaceholder(s) {
				return true
			}
		}
	}
	return false
}

func matchesPlaceholder(text string) bool {
	for _, pattern := range placeholderPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// describePlaceholder returns a short description for logging.
func describePlaceholder(questions []rawQuestion) string {
	for i, q := range questions {
		if matchesPlaceholder(q.Question) {
			return fmt.Sprintf("question %d text looks like filler", i+1)
		}
		for j, opt := range q.Options {
			if s, ok := opt.(string); ok && matchesPlaceholder(s) {
				return fmt.Sprintf("question %d option %d looks like filler", i+1, j+1)
			}
		}
	}
	return ""
}
