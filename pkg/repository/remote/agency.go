package remote

import (
	"context"
	"net/http"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
)

// agencyPayload is the wire shape for creating an agency.
type agencyPayload struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Active    bool   `json:"active"`
	Location  string `json:"location"`
}

// agencyUpdatesPayload is the wire shape for partial agency updates.
type agencyUpdatesPayload struct {
	ShortName *string `json:"shortName,omitempty"`
	LongName  *string `json:"longName,omitempty"`
	Location  *string `json:"location,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// agenciesPath builds the collection path for an organization's agencies.
func agenciesPath(orgID domain.OrganizationID) string {
	return "/v1/organizations/" + orgID.String() + "/agencies"
}

// StoreAgency creates the agency under its organization through the remote API.
func (c *Client) StoreAgency(ctx context.Context, agency domain.Agency) (*domain.Agency, error) {
	var out domain.Agency
	err := c.do(ctx, http.MethodPost, agenciesPath(agency.OrganizationID), agencyPayload{
		ShortName: agency.ShortName,
		LongName:  agency.LongName,
		Active:    agency.Active,
		Location:  agency.Location,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// AgencyByID fetches full agency details by ID within an organization.
func (c *Client) AgencyByID(ctx context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID) (*domain.Agency, error) {
	var out domain.Agency
	if err := c.do(ctx, http.MethodGet, agenciesPath(orgID)+"/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// OrganizationAgencies lists the live agencies of the organization.
func (c *Client) OrganizationAgencies(ctx context.Context, orgID domain.OrganizationID) ([]domain.Agency, error) {
	var out []domain.Agency
	if err := c.do(ctx, http.MethodGet, agenciesPath(orgID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateAgencyByID applies a partial update through the remote API.
func (c *Client) UpdateAgencyByID(ctx context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID,
	updates repository.AgencyUpdates) (*domain.Agency, error) {
	var out domain.Agency
	err := c.do(ctx, http.MethodPatch, agenciesPath(orgID)+"/"+id.String(), agencyUpdatesPayload{
		ShortName: updates.ShortName,
		LongName:  updates.LongName,
		Location:  updates.Location,
		Active:    updates.Active,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteAgency deletes the agency through the remote API.
func (c *Client) DeleteAgency(ctx context.Context, orgID domain.OrganizationID, id domain.AgencyID) error {
	return c.do(ctx, http.MethodDelete, agenciesPath(orgID)+"/"+id.String(), nil, nil)
}
