package generator

import (
	"reflect"
	"testing"
)

func TestFormatOptions(t *testing.T) {
	t.Run("AppliesCanonicalPrefixes", func(t *testing.T) {
		got := formatOptions([]interface{}{"go", "run", "async", "spawn"})
		want := []string{"A. go", "B. run", "C. async", "D. spawn"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("IdempotentOnAlreadyPrefixed", func(t *testing.T) {
		got := formatOptions([]interface{}{"A. go", "B) run", "c: async", "D. D. spawn"})
		want := []string{"A. go", "B. run", "C. async", "D. spawn"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("KeepsWordsStartingWithLetters", func(t *testing.T) {
		got := formatOptions([]interface{}{"Apple", "Banana", "Cherry", "Date"})
		want := []string{"A. Apple", "B. Banana", "C. Cherry", "D. Date"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("PadsMissingOptions", func(t *testing.T) {
		got := formatOptions([]interface{}{"only one"})
		want := []string{"A. only one", "B. Option B", "C. Option C", "D. Option D"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("DropsNonStringAndExcess", func(t *testing.T) {
		got := formatOptions([]interface{}{"a", 42, "b", "c", "d", "e"})
		want := []string{"A. a", "B. b", "C. c", "D. d"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestParseAnswer(t *testing.T) {
	cases := []struct {
		name  string
		raw   interface{}
		index int
		want  string
	}{
		{"PlainLetter", "B", 0, "B"},
		{"Lowercase", "c", 0, "C"},
		{"LetterWithDot", "A.", 0, "A"},
		{"QuotedLetter", `"D)"`, 0, "D"},
		{"GarbageFallsBackByIndex", "the second one", 1, "B"},
		{"NumberFallsBackByIndex", 3.0, 6, "C"},
		{"NilFallsBackByIndex", nil, 0, "A"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseAnswer(tc.raw, tc.index); got != tc.want {
				t.Errorf("parseAnswer(%v, %d) = %s, want %s", tc.raw, tc.index, got, tc.want)
			}
		})
	}
}

func TestFormatQuestions(t *testing.T) {
	raw := []rawQuestion{
		{Question: "Which keyword starts a goroutine?", Options: []interface{}{"A. go", "B. run", "C. async", "D. spawn"}, CorrectAnswer: "A"},
		{Question: "", Options: []interface{}{"x"}, CorrectAnswer: nil},
		{Question: "What closes a channel?", Options: []interface{}{"close", "shut", "end", "stop"}, CorrectAnswer: "a"},
	}

	t.Run("TrimsOverProduction", func(t *testing.T) {
		questions, warning := formatQuestions(raw, 2, 45)
		if warning != "" {
			t.Errorf("unexpected warning: %q", warning)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
		if questions[0].ID != 1 || questions[1].ID != 2 {
			t.Errorf("ids not sequential: %d, %d", questions[0].ID, questions[1].ID)
		}
		if questions[0].TimePerQuestion != 45 {
			t.Errorf("time per question not applied: %d", questions[0].TimePerQuestion)
		}
	})

	t.Run("WarnsOnUnderProduction", func(t *testing.T) {
		questions, warning := formatQuestions(raw, 5, 30)
		if len(questions) != 3 {
			t.Fatalf("expected 3 questions, got %d", len(questions))
		}
		if warning == "" {
			t.Error("expected an under-production warning")
		}
	})

	t.Run("RepairsMalformedEntryInPlace", func(t *testing.T) {
		questions, _ := formatQuestions(raw, 3, 30)
		q := questions[1]
		if q.Question != "Question 2" {
			t.Errorf("empty question text not defaulted: %q", q.Question)
		}
		if len(q.Options) != 4 {
			t.Errorf("expected 4 options, got %d", len(q.Options))
		}
		if q.CorrectAnswer != "B" {
			t.Errorf("expected index fallback answer B, got %s", q.CorrectAnswer)
		}
	})
}
