package directory

import (
	"context"
	"fmt"
	"strings"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
	"orgdash/pkg/serrors"
)

// CreateOrganizationInput carries the fields accepted when onboarding a new
// organization. Status always starts at PENDING_APPROVAL.
type CreateOrganizationInput struct {
	ShortName string
	LongName  string
}

// UpdateOrganizationInput carries the mutable organization fields. Nil
// pointers (or a zero Status) leave the corresponding field untouched.
type UpdateOrganizationInput struct {
	ShortName *string
	LongName  *string
	Status    domain.OrganizationStatus
}

// CreateAgencyInput carries the fields accepted when opening a new agency.
type CreateAgencyInput struct {
	ShortName string
	LongName  string
	Location  string
}

// UpdateAgencyInput carries the mutable agency fields. Nil pointers leave the
// corresponding field untouched.
type UpdateAgencyInput struct {
	ShortName *string
	LongName  *string
	Location  *string
	Active    *bool
}

// statusTransitions lists the allowed organization status moves.
var statusTransitions = map[domain.OrganizationStatus][]domain.OrganizationStatus{ //nolint: gochecknoglobals
	domain.OrganizationStatusPendingApproval: {domain.OrganizationStatusActive, domain.OrganizationStatusUnderReview},
	domain.OrganizationStatusActive: {
		domain.OrganizationStatusInactive,
		domain.OrganizationStatusSuspended,
		domain.OrganizationStatusUnderReview,
	},
	domain.OrganizationStatusInactive:    {domain.OrganizationStatusActive},
	domain.OrganizationStatusSuspended:   {domain.OrganizationStatusActive, domain.OrganizationStatusUnderReview},
	domain.OrganizationStatusUnderReview: {domain.OrganizationStatusActive, domain.OrganizationStatusSuspended},
}

func allowedTransition(from, to domain.OrganizationStatus) bool {
	if from == to {
		return true
	}

	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// directory is the concrete implementation of the Directory interface.
type directory struct {
	// repository is the persistence layer holding organizations and agencies.
	repository repository.Repository
	// deactivator clears active selections before deletions. May be nil when
	// no coordination layer is attached (e.g. the bare API server).
	deactivator Deactivator
}

// New creates a Directory backed by the provided repository. deactivator may
// be nil.
func New(repo repository.Repository, deactivator Deactivator) Directory {
	return &directory{
		repository:  repo,
		deactivator: deactivator,
	}
}

// CreateOrganization validates the input and stores a new organization owned
// by userID, starting in PENDING_APPROVAL.
func (d *directory) CreateOrganization(ctx context.Context,
	userID domain.UserID,
	input CreateOrganizationInput) (*domain.Organization, error) {
	if strings.TrimSpace(input.ShortName) == "" || strings.TrimSpace(input.LongName) == "" {
		return nil, serrors.With(serrors.ErrValidation, "organization names must not be blank")
	}

	org, err := d.repository.StoreOrganization(ctx, domain.Organization{
		OwnerID:   userID,
		ShortName: strings.TrimSpace(input.ShortName),
		LongName:  strings.TrimSpace(input.LongName),
		Status:    domain.OrganizationStatusPendingApproval,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store organization: %w", err)
	}

	return org, nil
}

// Organizations returns all organizations owned by userID.
func (d *directory) Organizations(ctx context.Context, userID domain.UserID) ([]domain.Organization, error) {
	organizations, err := d.repository.UserOrganizations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list organizations: %w", err)
	}

	return organizations, nil
}

// Organization returns the organization with the given id when owned by
// userID. Organizations owned by someone else are reported as not found.
func (d *directory) Organization(ctx context.Context,
	userID domain.UserID,
	id domain.OrganizationID) (*domain.Organization, error) {
	org, err := d.repository.OrganizationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get organization: %w", err)
	}
	if org.OwnerID != userID {
		return nil, serrors.With(serrors.ErrNotFound, "organization not found")
	}

	return org, nil
}

// UpdateOrganization applies the given changes after validating names and the
// status transition against the current record.
func (d *directory) UpdateOrganization(ctx context.Context,
	userID domain.UserID,
	id domain.OrganizationID,
	input UpdateOrganizationInput) (*domain.Organization, error) {
	current, err := d.Organization(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := repository.OrganizationUpdates{
		ShortName: input.ShortName,
		LongName:  input.LongName,
	}
	if input.ShortName != nil && strings.TrimSpace(*input.ShortName) == "" {
		return nil, serrors.With(serrors.ErrValidation, "short name must not be blank")
	}
	if input.LongName != nil && strings.TrimSpace(*input.LongName) == "" {
		return nil, serrors.With(serrors.ErrValidation, "long name must not be blank")
	}

	if input.Status != "" {
		if !domain.ValidOrganizationStatus(input.Status) {
			return nil, serrors.With(serrors.ErrValidation, "unknown organization status %q", input.Status)
		}
		if !allowedTransition(current.Status, input.Status) {
			return nil, serrors.With(serrors.ErrValidation,
				"organization status cannot move from %s to %s", current.Status, input.Status)
		}
		updates.Status = input.Status
	}

	if updates.Empty() {
		return current, nil
	}

	org, err := d.repository.UpdateOrganizationByID(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update organization: %w", err)
	}

	return org, nil
}

// DeleteOrganization removes the organization and its agencies. Any active
// selection holding the organization is cleared first so no context is left
// pointing at a deleted entity.
func (d *directory) DeleteOrganization(ctx context.Context, userID domain.UserID, id domain.OrganizationID) error {
	if _, err := d.Organization(ctx, userID, id); err != nil {
		return err
	}

	if d.deactivator != nil {
		d.deactivator.OrganizationDeleted(ctx, id)
	}

	if err := d.repository.DeleteOrganization(ctx, id); err != nil {
		return fmt.Errorf("could not delete organization: %w", err)
	}

	return nil
}

// CreateAgency validates the input and stores a new agency under the given
// organization. New agencies start active.
func (d *directory) CreateAgency(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID,
	input CreateAgencyInput) (*domain.Agency, error) {
	if _, err := d.Organization(ctx, userID, orgID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.ShortName) == "" || strings.TrimSpace(input.LongName) == "" {
		return nil, serrors.With(serrors.ErrValidation, "agency names must not be blank")
	}

	agency, err := d.repository.StoreAgency(ctx, domain.Agency{
		OrganizationID: orgID,
		ShortName:      strings.TrimSpace(input.ShortName),
		LongName:       strings.TrimSpace(input.LongName),
		Active:         true,
		Location:       strings.TrimSpace(input.Location),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store agency: %w", err)
	}

	return agency, nil
}

// Agencies returns the agencies of the given organization.
func (d *directory) Agencies(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID) ([]domain.Agency, error) {
	if _, err := d.Organization(ctx, userID, orgID); err != nil {
		return nil, err
	}

	agencies, err := d.repository.OrganizationAgencies(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("could not list agencies: %w", err)
	}

	return agencies, nil
}

// Agency returns a single agency scoped to the given organization.
func (d *directory) Agency(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID,
	id domain.AgencyID) (*domain.Agency, error) {
	if _, err := d.Organization(ctx, userID, orgID); err != nil {
		return nil, err
	}

	agency, err := d.repository.AgencyByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get agency: %w", err)
	}

	return agency, nil
}

// UpdateAgency applies the given changes after validating names.
func (d *directory) UpdateAgency(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID,
	id domain.AgencyID,
	input UpdateAgencyInput) (*domain.Agency, error) {
	if _, err := d.Organization(ctx, userID, orgID); err != nil {
		return nil, err
	}

	if input.ShortName != nil && strings.TrimSpace(*input.ShortName) == "" {
		return nil, serrors.With(serrors.ErrValidation, "short name must not be blank")
	}
	if input.LongName != nil && strings.TrimSpace(*input.LongName) == "" {
		return nil, serrors.With(serrors.ErrValidation, "long name must not be blank")
	}

	updates := repository.AgencyUpdates{
		ShortName: input.ShortName,
		LongName:  input.LongName,
		Location:  input.Location,
		Active:    input.Active,
	}
	if updates.Empty() {
		return d.repository.AgencyByID(ctx, orgID, id) //nolint: wrapcheck
	}

	agency, err := d.repository.UpdateAgencyByID(ctx, orgID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update agency: %w", err)
	}

	return agency, nil
}

// DeleteAgency removes the agency after clearing any active selection
// holding it.
func (d *directory) DeleteAgency(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID,
	id domain.AgencyID) error {
	if _, err := d.Organization(ctx, userID, orgID); err != nil {
		return err
	}

	if d.deactivator != nil {
		d.deactivator.AgencyDeleted(ctx, orgID, id)
	}

	if err := d.repository.DeleteAgency(ctx, orgID, id); err != nil {
		return fmt.Errorf("could not delete agency: %w", err)
	}

	return nil
}
