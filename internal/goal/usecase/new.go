package usecase

import (
	"creator-studio/internal/goal/repository"
	"creator-studio/internal/model"
	pkgLog "creator-studio/pkg/log"
)

const defaultPriority = model.PriorityMedium

type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new goal UseCase instance.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
