package localfs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
	"orgdash/pkg/serrors"
)

// StoreAgency inserts a new agency under its organization. The parent must
// exist and be live.
func (s *Store) StoreAgency(_ context.Context, agency domain.Agency) (*domain.Agency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.organizations[agency.OrganizationID]
	if !ok || !parent.DeletedAt.IsZero() {
		return nil, serrors.With(serrors.ErrNotFound, "organization %s not found", agency.OrganizationID)
	}

	if agency.ID.IsNil() {
		agency.ID = domain.AgencyID(uuid.New())
	}
	ts := now()
	if agency.CreatedAt.IsZero() {
		agency.CreatedAt = ts
	}
	agency.UpdatedAt = ts
	agency.DeletedAt = time.Time{}

	if existing, ok := s.agencies[agency.ID]; ok && existing.DeletedAt.IsZero() {
		return nil, serrors.With(serrors.ErrConflict, "agency %s already exists", agency.ID)
	}

	s.agencies[agency.ID] = agency
	if err := s.persistAgencies(); err != nil {
		return nil, err
	}

	stored := agency

	return &stored, nil
}

// AgencyByID fetches a live agency by ID within the given organization.
func (s *Store) AgencyByID(_ context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID) (*domain.Agency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agency, ok := s.agencies[id]
	if !ok || !agency.DeletedAt.IsZero() || agency.OrganizationID != orgID {
		return nil, serrors.With(serrors.ErrNotFound, "agency %s not found", id)
	}

	res := agency

	return &res, nil
}

// OrganizationAgencies lists the live agencies of the organization, newest first.
func (s *Store) OrganizationAgencies(_ context.Context, orgID domain.OrganizationID) ([]domain.Agency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Agency, 0)
	for _, agency := range s.agencies {
		if agency.OrganizationID == orgID && agency.DeletedAt.IsZero() {
			out = append(out, agency)
		}
	}
	sortByCreatedAt(out, func(a domain.Agency) (time.Time, string) { return a.CreatedAt, a.ID.String() })

	return out, nil
}

// UpdateAgencyByID applies the non-nil fields of updates to a live agency and
// returns the updated row.
func (s *Store) UpdateAgencyByID(_ context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID,
	updates repository.AgencyUpdates) (*domain.Agency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agency, ok := s.agencies[id]
	if !ok || !agency.DeletedAt.IsZero() || agency.OrganizationID != orgID {
		return nil, serrors.With(serrors.ErrNotFound, "agency %s not found", id)
	}

	if updates.ShortName != nil {
		agency.ShortName = *updates.ShortName
	}
	if updates.LongName != nil {
		agency.LongName = *updates.LongName
	}
	if updates.Location != nil {
		agency.Location = *updates.Location
	}
	if updates.Active != nil {
		agency.Active = *updates.Active
	}
	agency.UpdatedAt = now()

	s.agencies[id] = agency
	if err := s.persistAgencies(); err != nil {
		return nil, err
	}

	res := agency

	return &res, nil
}

// DeleteAgency soft-deletes the agency within the given organization.
func (s *Store) DeleteAgency(_ context.Context, orgID domain.OrganizationID, id domain.AgencyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	agency, ok := s.agencies[id]
	if !ok || !agency.DeletedAt.IsZero() || agency.OrganizationID != orgID {
		return serrors.With(serrors.ErrNotFound, "agency %s not found", id)
	}

	ts := now()
	agency.DeletedAt = ts
	agency.UpdatedAt = ts
	s.agencies[id] = agency

	return s.persistAgencies()
}
