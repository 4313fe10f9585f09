package active

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"orgdash/pkg/domain"
	"orgdash/pkg/logger"
	"orgdash/pkg/metrics"
	"orgdash/pkg/repository"
	"orgdash/pkg/serrors"
)

// Default navigation targets used when a selection has to be abandoned.
const (
	// DefaultPath is where the user lands after an invalid selection is rejected.
	DefaultPath = "/"
	// OnboardingPath is where users with no organizations are sent to create one.
	OnboardingPath = "/onboarding"
)

// OrganizationSnapshot is an immutable copy of the organization context state.
type OrganizationSnapshot struct {
	// ActiveID is the currently selected organization; zero when none is selected.
	ActiveID domain.OrganizationID
	// Details is the fully loaded record of the active organization. When
	// non-nil, Details.ID always equals ActiveID.
	Details *domain.Organization
	// UserOrganizations is the list of organizations visible to the session user.
	UserOrganizations []domain.Organization
	// LoadingDetails reports an in-flight detail fetch for ActiveID.
	LoadingDetails bool
	// LoadingList reports an in-flight visible-organizations fetch.
	LoadingList bool
	// Initialized reports that the visible list has loaded at least once.
	// An empty list with Initialized set is a valid state.
	Initialized bool
}

// Subscriber receives a state snapshot after every change to the organization
// context. Delivery is synchronous but happens after the context's lock is
// released, so subscribers may call back into the context.
type Subscriber func(ctx context.Context, snap OrganizationSnapshot)

// OrganizationContext is the single source of truth for which organization is
// active. All fields behind mu are mutated only by the exported methods.
type OrganizationContext struct {
	repo     repository.Repository
	session  SessionProvider
	router   Router
	notifier Notifier

	mu             sync.Mutex
	activeID       domain.OrganizationID
	details        *domain.Organization
	organizations  []domain.Organization
	initialized    bool
	loadingList    bool
	loadingDetails bool
	// detailGen stamps detail fetches. Bumped on every selection change so a
	// resolution carrying an older stamp is discarded on arrival.
	detailGen   uint64
	subscribers []Subscriber
}

// NewOrganizationContext wires an organization context over the given
// repository and collaborators.
func NewOrganizationContext(
	repo repository.Repository,
	session SessionProvider,
	router Router,
	notifier Notifier,
) *OrganizationContext {
	return &OrganizationContext{
		repo:     repo,
		session:  session,
		router:   router,
		notifier: notifier,
	}
}

// Subscribe registers fn for change notifications. Used by the agency context
// to follow the active organization.
func (c *OrganizationContext) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribers = append(c.subscribers, fn)
}

// Snapshot returns a copy of the current state.
func (c *OrganizationContext) Snapshot() OrganizationSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *OrganizationContext) snapshotLocked() OrganizationSnapshot {
	snap := OrganizationSnapshot{
		ActiveID:          c.activeID,
		UserOrganizations: slices.Clone(c.organizations),
		LoadingDetails:    c.loadingDetails,
		LoadingList:       c.loadingList,
		Initialized:       c.initialized,
	}
	if c.details != nil {
		details := *c.details
		snap.Details = &details
	}

	return snap
}

// publishLocked captures the snapshot and subscriber list under the lock,
// unlocks, and delivers. Callers must hold mu and must not touch state after
// calling it.
func (c *OrganizationContext) publishLocked(ctx context.Context) {
	snap := c.snapshotLocked()
	subs := slices.Clone(c.subscribers)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(ctx, snap)
	}
}

// FetchUserOrganizations loads the organizations visible to the session user.
// It is idempotent and safe to call again after a mutation that may have
// changed the visible set. On failure the previous list is kept and the error
// is both notified and returned.
func (c *OrganizationContext) FetchUserOrganizations(ctx context.Context) error {
	sess := c.session.Current(ctx)
	if !sess.Authenticated {
		return serrors.With(serrors.ErrUnauthorized, "cannot list organizations without an authenticated session")
	}

	c.mu.Lock()
	c.loadingList = true
	c.publishLocked(ctx)

	organizations, err := c.repo.UserOrganizations(ctx, sess.UserID)

	c.mu.Lock()
	c.loadingList = false
	if err != nil {
		c.publishLocked(ctx)
		c.notifier.Error(ctx, "could not load your organizations")

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not list user organizations")
	}

	c.organizations = organizations
	c.initialized = true
	c.publishLocked(ctx)

	return nil
}

// SetActive switches the active organization. When detail is supplied and its
// ID matches, it is adopted without a round-trip. A zero id clears the
// selection. Otherwise the full record is fetched, stamped with the selection
// generation at issue time; a result arriving after the selection has moved
// again is dropped.
func (c *OrganizationContext) SetActive(ctx context.Context, id domain.OrganizationID, detail *domain.Organization) error {
	c.mu.Lock()

	if id.IsNil() {
		c.clearSelectionLocked()
		c.publishLocked(ctx)

		return nil
	}

	if detail != nil && detail.ID == id {
		adopted := *detail
		c.activeID = id
		c.details = &adopted
		c.loadingDetails = false
		c.detailGen++
		c.publishLocked(ctx)

		return nil
	}

	c.activeID = id
	c.details = nil
	c.loadingDetails = true
	c.detailGen++
	gen := c.detailGen
	c.publishLocked(ctx)

	organization, err := c.repo.OrganizationByID(ctx, id)

	c.mu.Lock()
	if gen != c.detailGen {
		// The selection moved while this fetch was in flight.
		metrics.StaleDrops.WithLabelValues("organization").Inc()
		c.mu.Unlock()

		return nil
	}

	c.loadingDetails = false
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrNotFound {
			c.clearSelectionLocked()
			c.publishLocked(ctx)
			c.notifier.Warn(ctx, "the selected organization no longer exists")
			logger.Warn(ctx, "active organization vanished, selection cleared",
				zap.String("organizationId", id.String()))

			return nil
		}

		c.publishLocked(ctx)
		c.notifier.Error(ctx, "could not load organization details")

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not load organization details")
	}

	c.details = organization
	c.publishLocked(ctx)

	return nil
}

// ReconcileURL aligns the active selection with the current path.
//
// If the visible list has not loaded yet the call is deferred (a no-op).
// A path naming an organization outside the visible list is rejected: the
// selection is cleared, the user is redirected to the default view and an
// error notification is emitted. An empty visible list routes to onboarding.
// With no selection encoded in the path, the session hint or the first
// visible organization is adopted.
func (c *OrganizationContext) ReconcileURL(ctx context.Context) error {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()

		return nil
	}

	organizations := slices.Clone(c.organizations)
	activeID := c.activeID
	hasDetails := c.details != nil
	c.mu.Unlock()

	if len(organizations) == 0 {
		c.router.Navigate(OnboardingPath)

		return nil
	}

	pathID, found := organizationIDFromPath(c.router.CurrentPath())
	if found {
		if !memberOrganization(organizations, pathID) {
			c.mu.Lock()
			c.clearSelectionLocked()
			c.publishLocked(ctx)

			c.router.Navigate(DefaultPath)
			c.notifier.Error(ctx, "you do not have access to that organization")

			return nil
		}

		if pathID == activeID && hasDetails {
			return nil
		}

		return c.SetActive(ctx, pathID, nil)
	}

	if !activeID.IsNil() {
		return nil
	}

	fallback := organizations[0].ID
	if hint := c.session.Current(ctx).OrganizationHint; memberOrganization(organizations, hint) {
		fallback = hint
	}

	return c.SetActive(ctx, fallback, nil)
}

// Clear drops the active selection. The visible list and Initialized are kept.
func (c *OrganizationContext) Clear(ctx context.Context) {
	c.mu.Lock()
	c.clearSelectionLocked()
	c.publishLocked(ctx)
}

// Reset returns the context to its pre-authentication state. Called on
// session sign-out.
func (c *OrganizationContext) Reset(ctx context.Context) {
	c.mu.Lock()
	c.clearSelectionLocked()
	c.organizations = nil
	c.initialized = false
	c.loadingList = false
	c.publishLocked(ctx)
}

// clearSelectionLocked drops the active id and details atomically and
// invalidates in-flight detail fetches. Callers must hold mu.
func (c *OrganizationContext) clearSelectionLocked() {
	c.activeID = domain.NilOrganizationID
	c.details = nil
	c.loadingDetails = false
	c.detailGen++
}

func memberOrganization(organizations []domain.Organization, id domain.OrganizationID) bool {
	if id.IsNil() {
		return false
	}

	return slices.ContainsFunc(organizations, func(o domain.Organization) bool { return o.ID == id })
}
