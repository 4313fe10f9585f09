package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgencyID uniquely identifies an agency within the system.
// The zero value means "no agency", i.e. headquarters scope.
type AgencyID uuid.UUID

// NilAgencyID is the zero AgencyID, the headquarters (no agency selected) value.
var NilAgencyID = AgencyID(uuid.Nil) //nolint: gochecknoglobals

// IsNil reports whether the ID is the zero value.
func (id AgencyID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical UUID string form of the ID.
func (id AgencyID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in canonical UUID text form.
func (id AgencyID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText decodes the ID from canonical UUID text form.
func (id *AgencyID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = AgencyID(u)

	return nil
}

// ParseAgencyID parses s as a UUID-shaped agency ID.
func ParseAgencyID(s string) (AgencyID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilAgencyID, err //nolint: wrapcheck
	}

	return AgencyID(u), nil
}

// Agency represents a branch of an organization. Every agency belongs to
// exactly one organization for its whole lifetime.
type Agency struct {
	// ID is the unique identifier of the agency.
	ID AgencyID `json:"id"`
	// OrganizationID is the identifier of the owning organization.
	OrganizationID OrganizationID `json:"organizationId"`

	// ShortName is the compact display name of the agency.
	ShortName string `json:"shortName"`
	// LongName is the full display name of the agency.
	LongName string `json:"longName"`
	// Active indicates whether the agency is currently operating.
	Active bool `json:"active"`
	// Location is a free-form description of where the agency is located.
	Location string `json:"location"`

	// CreatedAt is the time when the agency was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the agency was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the agency was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
