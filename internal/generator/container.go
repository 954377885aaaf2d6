package generator

import (
	"github.com/learnhub-app/learnhub-api/internal/course"
	"github.com/learnhub-app/learnhub-api/internal/llm"
)

type GeneratorContainer struct {
	Handler *Handler
	Service Service
}

func NewGeneratorContainer(provider llm.Provider, courses course.Service, limiter *llm.Limiter) *GeneratorContainer {
	service := NewService(provider, courses, limiter, OptionsFromEnv())
	handler := NewHandler(service)

	return &GeneratorContainer{
		Handler: handler,
		Service: service,
	}
}
