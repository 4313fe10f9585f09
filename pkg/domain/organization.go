package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationID uniquely identifies an organization.
// It wraps uuid.UUID to provide type safety at the domain layer.
// The zero value means "no organization".
type OrganizationID uuid.UUID

// NilOrganizationID is the zero OrganizationID, used to express "no
// organization selected" (e.g. before any selection has been made).
var NilOrganizationID = OrganizationID(uuid.Nil) //nolint: gochecknoglobals

// IsNil reports whether the ID is the zero value.
func (id OrganizationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical UUID string form of the ID.
func (id OrganizationID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in canonical UUID text form so that JSON
// payloads carry UUID strings, not byte arrays.
func (id OrganizationID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText decodes the ID from canonical UUID text form.
func (id *OrganizationID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = OrganizationID(u)

	return nil
}

// ParseOrganizationID parses s as a UUID-shaped organization ID.
func ParseOrganizationID(s string) (OrganizationID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilOrganizationID, err //nolint: wrapcheck
	}

	return OrganizationID(u), nil
}

// OrganizationStatus represents the lifecycle state of an organization.
type OrganizationStatus string

const (
	// OrganizationStatusActive indicates a fully approved, operating organization.
	OrganizationStatusActive OrganizationStatus = "ACTIVE"
	// OrganizationStatusInactive indicates an organization that has been switched off by its owner.
	OrganizationStatusInactive OrganizationStatus = "INACTIVE"
	// OrganizationStatusPendingApproval indicates an organization awaiting approval after onboarding.
	OrganizationStatusPendingApproval OrganizationStatus = "PENDING_APPROVAL"
	// OrganizationStatusSuspended indicates an organization suspended by an administrator.
	OrganizationStatusSuspended OrganizationStatus = "SUSPENDED"
	// OrganizationStatusUnderReview indicates an organization flagged for review.
	OrganizationStatusUnderReview OrganizationStatus = "UNDER_REVIEW"
)

// ValidOrganizationStatus reports whether s is one of the known statuses.
func ValidOrganizationStatus(s OrganizationStatus) bool {
	switch s {
	case OrganizationStatusActive,
		OrganizationStatusInactive,
		OrganizationStatusPendingApproval,
		OrganizationStatusSuspended,
		OrganizationStatusUnderReview:
		return true
	default:
		return false
	}
}

// Organization represents a tenant organization and its display profile.
type Organization struct {
	// ID is the unique identifier of the organization.
	ID OrganizationID `json:"id"`
	// OwnerID is the identifier of the user owning the organization.
	OwnerID UserID `json:"ownerId"`

	// ShortName is the compact display name (e.g. used in switchers).
	ShortName string `json:"shortName"`
	// LongName is the full legal/display name.
	LongName string `json:"longName"`
	// Status is the current lifecycle state of the organization.
	Status OrganizationStatus `json:"status"`

	// CreatedAt is the time when the organization was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the organization was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the organization was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
