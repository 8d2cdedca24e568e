package usecase

import (
	"apply-tracker/internal/tracker/repository"
	pkgLog "apply-tracker/pkg/log"
	pkgNotify "apply-tracker/pkg/notify"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.SheetRepository
	notifier pkgNotify.Notifier
}

// New creates a new tracker UseCase instance.
func New(l pkgLog.Logger, repo repository.SheetRepository, notifier pkgNotify.Notifier) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		notifier: notifier,
	}
}
