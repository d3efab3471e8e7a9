package usecase

import (
	"context"

	"verdant-agenda/internal/schedule"
	"verdant-agenda/internal/task/repository"
	pkgLog "verdant-agenda/pkg/log"
	"verdant-agenda/pkg/llmprovider"
)

// LLMGenerator is the subset of the provider manager the usecase needs.
type LLMGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.TaskRepository
	llm         LLMGenerator
	bounds      schedule.Bounds
	temperature float64
	maxTokens   int
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	llm LLMGenerator,
	bounds schedule.Bounds,
	temperature float64,
	maxTokens int,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		llm:         llm,
		bounds:      bounds,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}
