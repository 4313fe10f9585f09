// Package directory implements the business rules over the organization and
// agency repository: input validation, ownership scoping, status transitions
// and the deletion guard that clears active selections before an entity is
// removed.
package directory

import (
	"context"

	"orgdash/pkg/domain"
)

//go:generate mockgen -package mockdirectory -source=interface.go -destination=mock/mockdirectory.go *

// Directory exposes the organization and agency operations consumed by the
// API handlers and the CLI. Every operation is scoped to the acting user;
// entities the user does not own are reported as not found rather than
// leaking their existence.
type Directory interface {
	CreateOrganization(ctx context.Context, userID domain.UserID, input CreateOrganizationInput) (*domain.Organization, error)
	Organizations(ctx context.Context, userID domain.UserID) ([]domain.Organization, error)
	Organization(ctx context.Context, userID domain.UserID, id domain.OrganizationID) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context,
		userID domain.UserID,
		id domain.OrganizationID,
		input UpdateOrganizationInput) (*domain.Organization, error)
	DeleteOrganization(ctx context.Context, userID domain.UserID, id domain.OrganizationID) error

	CreateAgency(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrganizationID,
		input CreateAgencyInput) (*domain.Agency, error)
	Agencies(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID) ([]domain.Agency, error)
	Agency(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrganizationID,
		id domain.AgencyID) (*domain.Agency, error)
	UpdateAgency(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrganizationID,
		id domain.AgencyID,
		input UpdateAgencyInput) (*domain.Agency, error)
	DeleteAgency(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID, id domain.AgencyID) error
}

// Deactivator clears active selections that reference an entity about to be
// deleted. An entity is never removed while a context still holds it active.
type Deactivator interface {
	OrganizationDeleted(ctx context.Context, id domain.OrganizationID)
	AgencyDeleted(ctx context.Context, orgID domain.OrganizationID, id domain.AgencyID)
}
