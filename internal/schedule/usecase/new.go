package usecase

import (
	"time"

	contentRepo "creator-studio/internal/content/repository"
	goalRepo "creator-studio/internal/goal/repository"
	taskRepo "creator-studio/internal/task/repository"
	pkgLog "creator-studio/pkg/log"
)

// implUseCase aggregates the three collections read-only. It holds no
// state of its own: every call recomputes from the repositories, so a
// mutation elsewhere is visible on the next read.
type implUseCase struct {
	tasks   taskRepo.Repository
	content contentRepo.Repository
	goals   goalRepo.Repository
	loc     *time.Location
	l       pkgLog.Logger
}

// New creates a new schedule UseCase instance. loc sets the timezone
// calendar days are bucketed in; nil means UTC.
func New(tasks taskRepo.Repository, content contentRepo.Repository, goals goalRepo.Repository, loc *time.Location, l pkgLog.Logger) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		tasks:   tasks,
		content: content,
		goals:   goals,
		loc:     loc,
		l:       l,
	}
}
