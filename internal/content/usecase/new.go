package usecase

import (
	"creator-studio/internal/content/repository"
	"creator-studio/internal/model"
	"creator-studio/pkg/log"
)

// Defaults applied when a create request leaves fields blank.
const (
	defaultPriority = model.PriorityMedium
	defaultStage    = model.StageIdeas
)

// implUseCase is the private implementation of content.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new content UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
