package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// NilUserID is the zero UserID.
var NilUserID = UserID(uuid.Nil) //nolint: gochecknoglobals

// IsNil reports whether the ID is the zero value.
func (id UserID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical UUID string form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in canonical UUID text form.
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText decodes the ID from canonical UUID text form.
func (id *UserID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = UserID(u)

	return nil
}

// ParseUserID parses s as a UUID-shaped user ID.
func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilUserID, err //nolint: wrapcheck
	}

	return UserID(u), nil
}

// Session is the opaque view of the authenticated session consumed by the
// coordination layer. It is produced by the session/auth layer and never
// mutated here.
type Session struct {
	// Authenticated reports whether a user is currently signed in.
	Authenticated bool
	// UserID identifies the signed-in user; zero when not authenticated.
	UserID UserID
	// OrganizationHint optionally names the organization the session was
	// issued for (e.g. an IdP-scoped token). Zero when no hint is present.
	OrganizationHint OrganizationID
}
