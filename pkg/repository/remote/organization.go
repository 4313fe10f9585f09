package remote

import (
	"context"
	"net/http"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
)

// organizationPayload is the wire shape for creating an organization.
type organizationPayload struct {
	OwnerID   domain.UserID             `json:"ownerId,omitempty"`
	ShortName string                    `json:"shortName"`
	LongName  string                    `json:"longName"`
	Status    domain.OrganizationStatus `json:"status,omitempty"`
}

// organizationUpdatesPayload is the wire shape for partial updates. Absent
// fields stay unchanged server-side.
type organizationUpdatesPayload struct {
	ShortName *string                   `json:"shortName,omitempty"`
	LongName  *string                   `json:"longName,omitempty"`
	Status    domain.OrganizationStatus `json:"status,omitempty"`
}

// StoreOrganization creates the organization through the remote API.
func (c *Client) StoreOrganization(ctx context.Context, org domain.Organization) (*domain.Organization, error) {
	var out domain.Organization
	err := c.do(ctx, http.MethodPost, "/v1/organizations", organizationPayload{
		OwnerID:   org.OwnerID,
		ShortName: org.ShortName,
		LongName:  org.LongName,
		Status:    org.Status,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// OrganizationByID fetches full organization details by ID.
func (c *Client) OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	var out domain.Organization
	if err := c.do(ctx, http.MethodGet, "/v1/organizations/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UserOrganizations lists the organizations visible to the authenticated
// user. The ownerID parameter is carried as a query filter so that the call
// shape matches the other backends.
func (c *Client) UserOrganizations(ctx context.Context, ownerID domain.UserID) ([]domain.Organization, error) {
	path := "/v1/organizations"
	if !ownerID.IsNil() {
		path += "?ownerId=" + ownerID.String()
	}

	var out []domain.Organization
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateOrganizationByID applies a partial update through the remote API.
func (c *Client) UpdateOrganizationByID(ctx context.Context,
	id domain.OrganizationID,
	updates repository.OrganizationUpdates) (*domain.Organization, error) {
	var out domain.Organization
	err := c.do(ctx, http.MethodPatch, "/v1/organizations/"+id.String(), organizationUpdatesPayload{
		ShortName: updates.ShortName,
		LongName:  updates.LongName,
		Status:    updates.Status,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteOrganization deletes the organization through the remote API.
func (c *Client) DeleteOrganization(ctx context.Context, id domain.OrganizationID) error {
	return c.do(ctx, http.MethodDelete, "/v1/organizations/"+id.String(), nil, nil)
}
