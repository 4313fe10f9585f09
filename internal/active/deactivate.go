package active

import (
	"context"

	"orgdash/pkg/domain"
)

// Deactivations clears active selections when the entity they point at is
// deleted. It is handed to the directory service so a deletion never leaves a
// context holding a removed organization or agency.
type Deactivations struct {
	Organization *OrganizationContext
	Agency       *AgencyContext
}

// OrganizationDeleted clears the organization selection when it holds id.
func (d Deactivations) OrganizationDeleted(ctx context.Context, id domain.OrganizationID) {
	if d.Organization == nil || id.IsNil() {
		return
	}
	if d.Organization.Snapshot().ActiveID == id {
		d.Organization.Clear(ctx)
	}
}

// AgencyDeleted clears the agency selection when it holds id under orgID.
func (d Deactivations) AgencyDeleted(_ context.Context, orgID domain.OrganizationID, id domain.AgencyID) {
	if d.Agency == nil || id.IsNil() {
		return
	}

	snap := d.Agency.Snapshot()
	if snap.OrganizationID == orgID && snap.ActiveID == id {
		d.Agency.Clear()
	}
}
