package webhook

import (
	"apply-tracker/internal/tracker"
	pkgLog "apply-tracker/pkg/log"
)

type Handler struct {
	trackerUC tracker.UseCase
	security  *SecurityValidator
	l         pkgLog.Logger
}

func NewHandler(
	trackerUC tracker.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		trackerUC: trackerUC,
		security:  NewSecurityValidator(securityConfig),
		l:         l,
	}
}
