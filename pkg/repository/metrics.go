package repository

import (
	"context"
	"time"

	"orgdash/pkg/domain"
	"orgdash/pkg/metrics"
)

// WithMetrics wraps repo so that every call records a count and latency
// observation through the provided instrument bundle. A nil bundle returns
// repo unchanged.
func WithMetrics(repo Repository, m *metrics.Repository) Repository {
	if m == nil {
		return repo
	}

	return &measured{next: repo, metrics: m}
}

// measured is the instrumentation decorator around a Repository. It forwards
// every call and records its operation name, outcome and latency.
type measured struct {
	next    Repository
	metrics *metrics.Repository
}

var _ Repository = (*measured)(nil)

func (m *measured) StoreOrganization(ctx context.Context, org domain.Organization) (*domain.Organization, error) {
	start := time.Now()
	res, err := m.next.StoreOrganization(ctx, org)
	m.metrics.Observe(ctx, "StoreOrganization", start, err)

	return res, err
}

func (m *measured) OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	start := time.Now()
	res, err := m.next.OrganizationByID(ctx, id)
	m.metrics.Observe(ctx, "OrganizationByID", start, err)

	return res, err
}

func (m *measured) UserOrganizations(ctx context.Context, ownerID domain.UserID) ([]domain.Organization, error) {
	start := time.Now()
	res, err := m.next.UserOrganizations(ctx, ownerID)
	m.metrics.Observe(ctx, "UserOrganizations", start, err)

	return res, err
}

func (m *measured) UpdateOrganizationByID(ctx context.Context,
	id domain.OrganizationID,
	updates OrganizationUpdates) (*domain.Organization, error) {
	start := time.Now()
	res, err := m.next.UpdateOrganizationByID(ctx, id, updates)
	m.metrics.Observe(ctx, "UpdateOrganizationByID", start, err)

	return res, err
}

func (m *measured) DeleteOrganization(ctx context.Context, id domain.OrganizationID) error {
	start := time.Now()
	err := m.next.DeleteOrganization(ctx, id)
	m.metrics.Observe(ctx, "DeleteOrganization", start, err)

	return err
}

func (m *measured) StoreAgency(ctx context.Context, agency domain.Agency) (*domain.Agency, error) {
	start := time.Now()
	res, err := m.next.StoreAgency(ctx, agency)
	m.metrics.Observe(ctx, "StoreAgency", start, err)

	return res, err
}

func (m *measured) AgencyByID(ctx context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID) (*domain.Agency, error) {
	start := time.Now()
	res, err := m.next.AgencyByID(ctx, orgID, id)
	m.metrics.Observe(ctx, "AgencyByID", start, err)

	return res, err
}

func (m *measured) OrganizationAgencies(ctx context.Context, orgID domain.OrganizationID) ([]domain.Agency, error) {
	start := time.Now()
	res, err := m.next.OrganizationAgencies(ctx, orgID)
	m.metrics.Observe(ctx, "OrganizationAgencies", start, err)

	return res, err
}

func (m *measured) UpdateAgencyByID(ctx context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID,
	updates AgencyUpdates) (*domain.Agency, error) {
	start := time.Now()
	res, err := m.next.UpdateAgencyByID(ctx, orgID, id, updates)
	m.metrics.Observe(ctx, "UpdateAgencyByID", start, err)

	return res, err
}

func (m *measured) DeleteAgency(ctx context.Context, orgID domain.OrganizationID, id domain.AgencyID) error {
	start := time.Now()
	err := m.next.DeleteAgency(ctx, orgID, id)
	m.metrics.Observe(ctx, "DeleteAgency", start, err)

	return err
}

func (m *measured) Close() error {
	return m.next.Close()
}
