package container

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/learnhub-app/learnhub-api/internal/auth"
	"github.com/learnhub-app/learnhub-api/internal/cache"
	"github.com/learnhub-app/learnhub-api/internal/chat"
	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/course"
	"github.com/learnhub-app/learnhub-api/internal/generator"
	"github.com/learnhub-app/learnhub-api/internal/llm"
	"github.com/learnhub-app/learnhub-api/internal/result"
	"github.com/learnhub-app/learnhub-api/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	CourseContainer    *course.CourseContainer
	GeneratorContainer *generator.GeneratorContainer
	ResultContainer    *result.ResultContainer
	ChatContainer      *chat.ChatContainer
	Cache              *cache.Cache
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(
		&user.User{},
		&course.Course{},
		&result.QuizResult{},
		&chat.ChatMessage{},
	); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	c := cache.New(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), redisDB)

	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to configure LLM provider: %v", err)
	}

	maxGenerations, _ := strconv.ParseInt(os.Getenv("LLM_MAX_CONCURRENT"), 10, 64)
	limiter := llm.NewLimiter(maxGenerations)

	userContainer := user.NewUserContainer(config.DB)
	courseContainer := course.NewCourseContainer(config.DB, c)
	generatorContainer := generator.NewGeneratorContainer(provider, courseContainer.Service, limiter)
	resultContainer := result.NewResultContainer(config.DB, courseContainer.Service, c)
	chatContainer := chat.NewChatContainer(config.DB, provider)

	return &Container{
		UserContainer:      userContainer,
		CourseContainer:    courseContainer,
		GeneratorContainer: generatorContainer,
		ResultContainer:    resultContainer,
		ChatContainer:      chatContainer,
		Cache:              c,
	}
}
