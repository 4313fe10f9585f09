package localfs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
	"orgdash/pkg/serrors"
)

// StoreOrganization inserts a new organization, minting an ID and timestamps
// when absent, and returns the stored row.
func (s *Store) StoreOrganization(_ context.Context, org domain.Organization) (*domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if org.ID.IsNil() {
		org.ID = domain.OrganizationID(uuid.New())
	}
	ts := now()
	if org.CreatedAt.IsZero() {
		org.CreatedAt = ts
	}
	org.UpdatedAt = ts
	org.DeletedAt = time.Time{} // inserts never carry a soft-delete mark

	if existing, ok := s.organizations[org.ID]; ok && existing.DeletedAt.IsZero() {
		return nil, serrors.With(serrors.ErrConflict, "organization %s already exists", org.ID)
	}

	s.organizations[org.ID] = org
	if err := s.persistOrganizations(); err != nil {
		return nil, err
	}

	stored := org

	return &stored, nil
}

// OrganizationByID fetches a live organization by ID.
func (s *Store) OrganizationByID(_ context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	org, ok := s.organizations[id]
	if !ok || !org.DeletedAt.IsZero() {
		return nil, serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	res := org

	return &res, nil
}

// UserOrganizations lists the live organizations owned by the given user,
// newest first.
func (s *Store) UserOrganizations(_ context.Context, ownerID domain.UserID) ([]domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Organization, 0)
	for _, org := range s.organizations {
		if org.OwnerID == ownerID && org.DeletedAt.IsZero() {
			out = append(out, org)
		}
	}
	sortByCreatedAt(out, func(o domain.Organization) (time.Time, string) { return o.CreatedAt, o.ID.String() })

	return out, nil
}

// UpdateOrganizationByID applies the non-nil fields of updates to a live
// organization and returns the updated row.
func (s *Store) UpdateOrganizationByID(_ context.Context,
	id domain.OrganizationID,
	updates repository.OrganizationUpdates) (*domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	org, ok := s.organizations[id]
	if !ok || !org.DeletedAt.IsZero() {
		return nil, serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	if updates.ShortName != nil {
		org.ShortName = *updates.ShortName
	}
	if updates.LongName != nil {
		org.LongName = *updates.LongName
	}
	if updates.Status != "" {
		org.Status = updates.Status
	}
	org.UpdatedAt = now()

	s.organizations[id] = org
	if err := s.persistOrganizations(); err != nil {
		return nil, err
	}

	res := org

	return &res, nil
}

// DeleteOrganization soft-deletes the organization and cascades the soft
// delete to all of its live agencies (an agency never outlives its parent).
func (s *Store) DeleteOrganization(_ context.Context, id domain.OrganizationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	org, ok := s.organizations[id]
	if !ok || !org.DeletedAt.IsZero() {
		return serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	ts := now()
	org.DeletedAt = ts
	org.UpdatedAt = ts
	s.organizations[id] = org

	for aid, agency := range s.agencies {
		if agency.OrganizationID == id && agency.DeletedAt.IsZero() {
			agency.DeletedAt = ts
			agency.UpdatedAt = ts
			s.agencies[aid] = agency
		}
	}

	if err := s.persistOrganizations(); err != nil {
		return err
	}

	return s.persistAgencies()
}
