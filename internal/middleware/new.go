package middleware

import (
	pkgLog "apply-tracker/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l      pkgLog.Logger
	apiKey string
}

// New creates the middleware set. An empty apiKey disables auth, which is
// the dev-mode default.
func New(l pkgLog.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
