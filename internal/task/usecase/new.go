package usecase

import (
	"creator-studio/internal/model"
	"creator-studio/internal/task/repository"
	pkgLog "creator-studio/pkg/log"
)

const (
	defaultPriority = model.PriorityMedium
	defaultStatus   = model.TaskStatusPending
)

type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new task UseCase instance.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
