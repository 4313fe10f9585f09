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

// AgencySnapshot is an immutable copy of the agency context state.
type AgencySnapshot struct {
	// OrganizationID is the parent organization the agency state belongs to.
	OrganizationID domain.OrganizationID
	// ActiveID is the selected agency; zero means headquarters scope, a
	// first-class valid state, not an error.
	ActiveID domain.AgencyID
	// Details is the fully loaded record of the active agency. When non-nil,
	// Details.ID equals ActiveID and Details.OrganizationID equals OrganizationID.
	Details *domain.Agency
	// Agencies is the agency list of the parent organization.
	Agencies []domain.Agency
	// LoadingAgencies reports an in-flight agency list fetch.
	LoadingAgencies bool
	// LoadingDetails reports an in-flight detail fetch for ActiveID.
	LoadingDetails bool
}

// AgencyContext tracks the selected agency within the active organization.
// It subscribes to an OrganizationContext and refetches its agency list
// exactly when the parent selection initializes or moves, never on its own.
type AgencyContext struct {
	repo     repository.Repository
	notifier Notifier

	mu             sync.Mutex
	orgID          domain.OrganizationID
	activeID       domain.AgencyID
	details        *domain.Agency
	agencies       []domain.Agency
	loadingList    bool
	loadingDetails bool
	// detailGen stamps detail fetches, bumped on every agency selection
	// change and on parent organization moves.
	detailGen uint64
}

// NewAgencyContext wires an agency context under org. The returned context
// follows org's active selection for the rest of its lifetime.
func NewAgencyContext(repo repository.Repository, org *OrganizationContext, notifier Notifier) *AgencyContext {
	c := &AgencyContext{
		repo:     repo,
		notifier: notifier,
	}
	org.Subscribe(c.onOrganizationChange)

	return c
}

// Snapshot returns a copy of the current state.
func (c *AgencyContext) Snapshot() AgencySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := AgencySnapshot{
		OrganizationID:  c.orgID,
		ActiveID:        c.activeID,
		Agencies:        slices.Clone(c.agencies),
		LoadingAgencies: c.loadingList,
		LoadingDetails:  c.loadingDetails,
	}
	if c.details != nil {
		details := *c.details
		snap.Details = &details
	}

	return snap
}

// onOrganizationChange reacts to parent selection changes. The agency list is
// refetched stamped with the organization it was issued for; a list arriving
// after the parent moved again is dropped so one organization's agencies are
// never shown under another's id.
func (c *AgencyContext) onOrganizationChange(ctx context.Context, snap OrganizationSnapshot) {
	c.mu.Lock()
	if snap.ActiveID == c.orgID {
		c.mu.Unlock()

		return
	}

	c.orgID = snap.ActiveID
	c.clearSelectionLocked()
	// Dropped immediately so the old organization's agencies are never
	// visible under the new organization's id.
	c.agencies = nil

	if snap.ActiveID.IsNil() {
		c.loadingList = false
		c.mu.Unlock()

		return
	}

	c.loadingList = true
	stamp := snap.ActiveID
	c.mu.Unlock()

	agencies, err := c.repo.OrganizationAgencies(ctx, stamp)

	c.mu.Lock()
	if c.orgID != stamp {
		metrics.StaleDrops.WithLabelValues("agency_list").Inc()
		c.mu.Unlock()

		return
	}

	c.loadingList = false
	if err != nil {
		// The previous list is kept; the user may retry via a manual refresh.
		c.mu.Unlock()
		c.notifier.Error(ctx, "could not load agencies for the selected organization")
		logger.Error(ctx, "agency list fetch failed",
			zap.String("organizationId", stamp.String()), zap.Error(err))

		return
	}

	c.agencies = agencies
	c.mu.Unlock()
}

// SetActive switches the selected agency within the active organization. A
// zero id returns to headquarters scope. When detail is supplied, matches the
// id and belongs to the active organization, it is adopted without a
// round-trip; otherwise the record is fetched scoped to the active
// organization, stamped against both the agency selection generation and the
// parent organization at issue time.
func (c *AgencyContext) SetActive(ctx context.Context, id domain.AgencyID, detail *domain.Agency) error {
	c.mu.Lock()

	if id.IsNil() {
		c.clearSelectionLocked()
		c.mu.Unlock()

		return nil
	}

	orgID := c.orgID
	if orgID.IsNil() {
		c.mu.Unlock()

		return serrors.With(serrors.ErrValidation, "cannot select an agency without an active organization")
	}

	if detail != nil && detail.ID == id && detail.OrganizationID == orgID {
		adopted := *detail
		c.activeID = id
		c.details = &adopted
		c.loadingDetails = false
		c.detailGen++
		c.mu.Unlock()

		return nil
	}

	c.activeID = id
	c.details = nil
	c.loadingDetails = true
	c.detailGen++
	gen := c.detailGen
	c.mu.Unlock()

	agency, err := c.repo.AgencyByID(ctx, orgID, id)

	c.mu.Lock()
	if gen != c.detailGen || c.orgID != orgID {
		metrics.StaleDrops.WithLabelValues("agency").Inc()
		c.mu.Unlock()

		return nil
	}

	c.loadingDetails = false
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrNotFound {
			c.clearSelectionLocked()
			c.mu.Unlock()
			c.notifier.Warn(ctx, "the selected agency no longer exists")
			logger.Warn(ctx, "active agency vanished, selection cleared",
				zap.String("agencyId", id.String()))

			return nil
		}

		c.mu.Unlock()
		c.notifier.Error(ctx, "could not load agency details")

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not load agency details")
	}

	c.details = agency
	c.mu.Unlock()

	return nil
}

// Clear returns to headquarters scope, keeping the agency list.
func (c *AgencyContext) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearSelectionLocked()
}

// clearSelectionLocked drops the agency selection atomically and invalidates
// in-flight detail fetches. Callers must hold mu.
func (c *AgencyContext) clearSelectionLocked() {
	c.activeID = domain.NilAgencyID
	c.details = nil
	c.loadingDetails = false
	c.detailGen++
}
