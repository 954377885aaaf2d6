package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/course"
	"github.com/learnhub-app/learnhub-api/internal/llm"
)

var (
	ErrValidation = errors.New("courseId and difficulty are required")

	// ErrUnusableOutput means every attempt produced output that failed to
	// parse or was flagged as filler. Surfaced as 422; filler questions are
	// never synthesized to cover for the model.
	ErrUnusableOutput = errors.New("unable to generate usable questions after retries")
)

// transientAttempts bounds the backoff retries inside one model attempt.
// Two consecutive upstream failures must exhaust the attempt so the outer
// loop switches to the fallback model instead of hammering the default one.
const transientAttempts = 2

type Service interface {
	Generate(ctx context.Context, dto GenerateQuizDTO) (*GenerateQuizResponse, error)
}

type Options struct {
	DefaultModel  string
	FallbackModel string
	// MaxRetries is the number of extra attempts after the first.
	MaxRetries   int
	InitialDelay time.Duration
	MaxTokens    int
}

func OptionsFromEnv() Options {
	opts := Options{
		DefaultModel:  os.Getenv("LLM_MODEL"),
		FallbackModel: os.Getenv("LLM_FALLBACK_MODEL"),
		MaxRetries:    2,
		InitialDelay:  time.Second,
		MaxTokens:     4096,
	}
	if opts.DefaultModel == "" {
		opts.DefaultModel = "gpt-4o-mini"
	}
	if opts.FallbackModel == "" {
		opts.FallbackModel = "gpt-4o"
	}
	if v, err := strconv.Atoi(os.Getenv("LLM_MAX_RETRIES")); err == nil && v >= 0 {
		opts.MaxRetries = v
	}
	return opts
}

type service struct {
	provider llm.Provider
	courses  course.Service
	limiter  *llm.Limiter
	opts     Options
}

func NewService(provider llm.Provider, courses course.Service, limiter *llm.Limiter, opts Options) Service {
	return &service{
		provider: provider,
		courses:  courses,
		limiter:  limiter,
		opts:     opts,
	}
}

func (s *service) Generate(ctx context.Context, dto GenerateQuizDTO) (*GenerateQuizResponse, error) {
	log := config.WithContext(ctx)

	if dto.CourseID == "" || dto.Difficulty == "" {
		return nil, ErrValidation
	}
	if !dto.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: difficulty must be one of easy, medium, hard", ErrValidation)
	}

	courseID, err := uuid.Parse(dto.CourseID)
	if err != nil {
		return nil, course.ErrCourseNotFound
	}

	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	count := clampCount(dto.NumberOfQuestions)
	timePerQuestion := dto.TimePerQuestion
	if timePerQuestion <= 0 {
		timePerQuestion = defaultTimePerQuestion
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	userPrompt := buildUserPrompt(c.Name, count, dto.Difficulty)

	// Attempt 0 favors determinism on the default model; every further
	// attempt switches to the higher-capability fallback.
	var lastErr error
	for attempt := 0; attempt <= s.opts.MaxRetries; attempt++ {
		model := s.opts.DefaultModel
		temperature := float32(0.2)
		if attempt > 0 {
			model = s.opts.FallbackModel
			temperature = 0.7
		}

		questions, err := s.attempt(ctx, model, temperature, userPrompt)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.WithError(err).Warnf("Generation attempt %d with model %s failed", attempt+1, model)
			continue
		}

		formatted, warning := formatQuestions(questions, count, timePerQuestion)
		if warning != "" {
			log.Warnf("Generation attempt %d: %s", attempt+1, warning)
		}

		log.Infof("Generated %d questions for course %s with model %s", len(formatted), c.ID, model)
		return &GenerateQuizResponse{Questions: formatted, Model: model}, nil
	}

	log.WithError(lastErr).Error("Exhausted generation attempts")
	var upstream *llm.UpstreamError
	if errors.As(lastErr, &upstream) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %v", ErrUnusableOutput, lastErr)
}

// attempt runs one full generate-parse-screen pass against a single model.
func (s *service) attempt(ctx context.Context, model string, temperature float32, userPrompt string) ([]rawQuestion, error) {
	log := config.WithContext(ctx)

	var raw string
	err := llm.RetryWithBackoff(ctx, transientAttempts, s.opts.InitialDelay, func() error {
		var callErr error
		raw, callErr = s.provider.Complete(ctx, llm.CompletionRequest{
			Model:       model,
			System:      systemPrompt,
			User:        userPrompt,
			Temperature: temperature,
			MaxTokens:   s.opts.MaxTokens,
		})
		return callErr
	})
	if err != nil {
		return nil, err
	}

	questions, strategy, err := parseQuestions(raw)
	if err != nil {
		return nil, err
	}
	if strategy != "direct" {
		log.Debugf("Recovered %d questions via %s strategy", len(questions), strategy)
	}

	if isPlaceholder(questions) {
		return nil, fmt.Errorf("placeholder content detected: %s", describePlaceholder(questions))
	}

	return questions, nil
}
