package active

//go:generate mockgen -package mockactive -source=deps.go -destination=mock/mockactive.go *

import (
	"context"
	"strings"

	"orgdash/pkg/domain"
	"orgdash/pkg/logger"
)

// SessionProvider exposes the authenticated session consumed by the
// coordination layer. Session issuance and refresh live elsewhere.
type SessionProvider interface {
	// Current returns the session as of now. A zero Session (Authenticated
	// false) is a valid answer, not an error.
	Current(ctx context.Context) domain.Session
}

// Router exposes the current navigation path and a way to move it. The
// coordination layer only ever reads the path and redirects away from
// selections the user cannot hold.
type Router interface {
	// CurrentPath returns the path currently shown to the user.
	CurrentPath() string
	// Navigate moves the user to path.
	Navigate(path string)
}

// Notifier delivers non-blocking, user-visible notifications. Failures in the
// coordination layer degrade state and notify; they never crash consumers.
type Notifier interface {
	// Warn reports a recoverable degradation (e.g. a selection that had to be cleared).
	Warn(ctx context.Context, msg string)
	// Error reports a transient failure the user may retry.
	Error(ctx context.Context, msg string)
}

// LogNotifier is a Notifier writing through the context-carried zap logger.
// It is the default sink for headless consumers such as the CLI.
type LogNotifier struct{}

// Warn implements Notifier.
func (LogNotifier) Warn(ctx context.Context, msg string) { logger.Warn(ctx, msg) }

// Error implements Notifier.
func (LogNotifier) Error(ctx context.Context, msg string) { logger.Error(ctx, msg) }

// organizationIDFromPath extracts the organization ID encoded in an
// "/organizations/{uuid}..." path. Paths without the prefix or with a
// malformed ID segment carry no selection.
func organizationIDFromPath(path string) (domain.OrganizationID, bool) {
	rest, found := strings.CutPrefix(path, "/organizations/")
	if !found {
		return domain.NilOrganizationID, false
	}

	segment, _, _ := strings.Cut(rest, "/")
	id, err := domain.ParseOrganizationID(segment)
	if err != nil || id.IsNil() {
		return domain.NilOrganizationID, false
	}

	return id, true
}
