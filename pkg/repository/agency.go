package repository

// AgencyUpdates describes a set of optional fields that can be applied to an
// existing agency during an update. Only non-nil fields are changed.
type AgencyUpdates struct {
	// ShortName, when provided, replaces the compact display name.
	ShortName *string
	// LongName, when provided, replaces the full display name.
	LongName *string
	// Location, when provided, replaces the location text.
	Location *string
	// Active, when provided, toggles the operating flag.
	Active *bool
}

// Empty reports whether the update would change nothing.
func (u AgencyUpdates) Empty() bool {
	return u.ShortName == nil && u.LongName == nil && u.Location == nil && u.Active == nil
}
