// Package repository defines the capability contracts for data access. Each
// entity family gets its own narrow interface; backends (local file store,
// remote HTTP gateway, PostgreSQL) provide interchangeable implementations so
// that no call site ever knows which one is in effect. Failed lookups are
// reported as serrors.ErrNotFound, never as a nil result, so every backend is
// indistinguishable to pattern-matching callers.
//
//go:generate mockgen -package mockrepository -source=interface.go -destination=mock/mockrepository.go *
package repository

import (
	"context"
	"time"

	"orgdash/pkg/domain"
)

// OrganizationStorage defines CRUD and query operations for organizations.
// Implementations must honor soft deletes: deleted rows are invisible to all
// reads and updates.
type OrganizationStorage interface {
	// StoreOrganization inserts a new organization and returns the stored row
	// as it exists in the backend (including generated ID and timestamps).
	StoreOrganization(ctx context.Context, org domain.Organization) (*domain.Organization, error)
	// OrganizationByID fetches an organization by its ID, excluding
	// soft-deleted records. Returns serrors.ErrNotFound when absent.
	OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error)
	// UserOrganizations returns all organizations visible to (owned by) the
	// given user, ordered by creation time descending.
	UserOrganizations(ctx context.Context, ownerID domain.UserID) ([]domain.Organization, error)
	// UpdateOrganizationByID applies the provided field set to a single
	// organization and returns the updated row. Only non-nil fields are
	// changed; updated_at is set automatically.
	UpdateOrganizationByID(ctx context.Context,
		id domain.OrganizationID,
		updates OrganizationUpdates) (*domain.Organization, error)
	// DeleteOrganization performs a soft delete. Returns serrors.ErrNotFound
	// when no live row matches.
	DeleteOrganization(ctx context.Context, id domain.OrganizationID) error
}

// AgencyStorage defines CRUD and query operations for agencies. Every
// operation is scoped by the owning organization: an agency is only ever
// reachable through its parent.
type AgencyStorage interface {
	// StoreAgency inserts a new agency under its organization and returns the
	// stored row.
	StoreAgency(ctx context.Context, agency domain.Agency) (*domain.Agency, error)
	// AgencyByID fetches an agency by ID within the given organization,
	// excluding soft-deleted records. Returns serrors.ErrNotFound when absent
	// or when the agency belongs to a different organization.
	AgencyByID(ctx context.Context, orgID domain.OrganizationID, id domain.AgencyID) (*domain.Agency, error)
	// OrganizationAgencies returns all live agencies of the organization,
	// ordered by creation time descending.
	OrganizationAgencies(ctx context.Context, orgID domain.OrganizationID) ([]domain.Agency, error)
	// UpdateAgencyByID applies the provided field set to a single agency and
	// returns the updated row. Only non-nil fields are changed.
	UpdateAgencyByID(ctx context.Context,
		orgID domain.OrganizationID,
		id domain.AgencyID,
		updates AgencyUpdates) (*domain.Agency, error)
	// DeleteAgency performs a soft delete within the given organization.
	DeleteAgency(ctx context.Context, orgID domain.OrganizationID, id domain.AgencyID) error
}

// Repository is the composite capability set higher layers depend on. All
// backends implement it; consumers hold this interface only and never reach a
// concrete implementation directly.
type Repository interface {
	OrganizationStorage
	AgencyStorage

	// Close releases any resources held by the backend (connection pools,
	// file handles). After Close, the instance should not be used.
	Close() error
}

// Purger is an optional capability implemented by backends that own their
// data (local file store, PostgreSQL). The retention worker uses it to purge
// soft-deleted rows past the configured retention window. The remote gateway
// does not implement it; retention runs server-side there.
type Purger interface {
	// PurgeDeletedBefore permanently removes rows soft-deleted before cutoff
	// and returns how many were purged.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
