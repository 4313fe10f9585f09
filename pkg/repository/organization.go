package repository

import "orgdash/pkg/domain"

// OrganizationUpdates describes a set of optional fields that can be applied
// to an existing organization during an update. Only non-nil (respectively
// non-empty for Status) fields are changed.
type OrganizationUpdates struct {
	// ShortName, when provided, replaces the compact display name.
	ShortName *string
	// LongName, when provided, replaces the full display name.
	LongName *string
	// Status, when non-empty, moves the organization to the given lifecycle
	// state. Validation of the value happens above the repository layer.
	Status domain.OrganizationStatus
}

// Empty reports whether the update would change nothing.
func (u OrganizationUpdates) Empty() bool {
	return u.ShortName == nil && u.LongName == nil && u.Status == ""
}
