package localfs

import (
	"time"

	"github.com/google/uuid"

	"orgdash/pkg/domain"
)

// fileOrganization is the on-disk shape of an organization. Unlike the domain
// type it serializes DeletedAt, which the store needs to survive restarts.
type fileOrganization struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	ShortName string    `json:"shortName"`
	LongName  string    `json:"longName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
}

func (f fileOrganization) ToDomain() domain.Organization {
	return domain.Organization{
		ID:        domain.OrganizationID(f.ID),
		OwnerID:   domain.UserID(f.OwnerID),
		ShortName: f.ShortName,
		LongName:  f.LongName,
		Status:    domain.OrganizationStatus(f.Status),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		DeletedAt: f.DeletedAt,
	}
}

func fileOrganizationFromDomain(o domain.Organization) fileOrganization {
	return fileOrganization{
		ID:        uuid.UUID(o.ID),
		OwnerID:   uuid.UUID(o.OwnerID),
		ShortName: o.ShortName,
		LongName:  o.LongName,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		DeletedAt: o.DeletedAt,
	}
}

// fileAgency is the on-disk shape of an agency.
type fileAgency struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	ShortName      string    `json:"shortName"`
	LongName       string    `json:"longName"`
	Active         bool      `json:"active"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
	DeletedAt      time.Time `json:"deletedAt,omitempty"`
}

func (f fileAgency) ToDomain() domain.Agency {
	return domain.Agency{
		ID:             domain.AgencyID(f.ID),
		OrganizationID: domain.OrganizationID(f.OrganizationID),
		ShortName:      f.ShortName,
		LongName:       f.LongName,
		Active:         f.Active,
		Location:       f.Location,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
		DeletedAt:      f.DeletedAt,
	}
}

func fileAgencyFromDomain(a domain.Agency) fileAgency {
	return fileAgency{
		ID:             uuid.UUID(a.ID),
		OrganizationID: uuid.UUID(a.OrganizationID),
		ShortName:      a.ShortName,
		LongName:       a.LongName,
		Active:         a.Active,
		Location:       a.Location,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		DeletedAt:      a.DeletedAt,
	}
}
