package http

import (
	"github.com/gin-gonic/gin"

	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/repository"
	pkgLog "apply-tracker/pkg/log"
)

// Handler is the interface for the tracker HTTP delivery handler.
type Handler interface {
	Provision(c *gin.Context)
	Stats(c *gin.Context)
	Analyze(c *gin.Context)
	Filter(c *gin.Context)
	CreateSheet(c *gin.Context)
	GetSheet(c *gin.Context)
}

type handler struct {
	l    pkgLog.Logger
	uc   tracker.UseCase
	repo repository.SheetRepository

	// creator is nil for backends that cannot create sheets (Google Sheets,
	// xlsx); the create endpoint then reports the capability as missing.
	creator repository.Creator
}

// New creates a new tracker HTTP delivery handler.
func New(l pkgLog.Logger, uc tracker.UseCase, repo repository.SheetRepository, creator repository.Creator) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		repo:    repo,
		creator: creator,
	}
}
