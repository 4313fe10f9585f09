package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
	"orgdash/pkg/serrors"
)

const (
	agenciesTable = "agencies"
)

// StoreAgency inserts a new agency and returns the stored row. The parent
// organization must exist and be live.
func (p *PgSQL) StoreAgency(ctx context.Context, agency domain.Agency) (*domain.Agency, error) {
	// verify the parent organization first so a missing parent surfaces as
	// NOT_FOUND instead of a foreign key violation
	if _, err := p.OrganizationByID(ctx, agency.OrganizationID); err != nil {
		return nil, err
	}

	var row PgAgency
	row.FromDomain(agency)

	var result PgAgency
	found, err := p.Builder.Insert(agenciesTable).
		Rows(row).
		Returning(&PgAgency{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store agency into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store agency into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// AgencyByID returns an agency by its ID within the given organization,
// excluding soft-deleted rows.
func (p *PgSQL) AgencyByID(ctx context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID) (*domain.Agency, error) {
	var row PgAgency
	found, err := p.Builder.From(agenciesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch agency by id: %w", err)
	}
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "agency %s not found", id)
	}

	return row.ToDomain(), nil
}

// OrganizationAgencies returns all live agencies of the organization, ordered
// by created_at DESC, id DESC.
func (p *PgSQL) OrganizationAgencies(ctx context.Context, orgID domain.OrganizationID) ([]domain.Agency, error) {
	var rows []PgAgency
	err := p.Builder.From(agenciesTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(orgID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization agencies from pg: %w", err)
	}

	return pgAgenciesToDomain(rows), nil
}

// UpdateAgencyByID updates a single agency identified by its ID within the
// given organization and returns the updated row.
func (p *PgSQL) UpdateAgencyByID(ctx context.Context,
	orgID domain.OrganizationID,
	id domain.AgencyID,
	updates repository.AgencyUpdates) (*domain.Agency, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.ShortName != nil {
		rec["short_name"] = *updates.ShortName
	}
	if updates.LongName != nil {
		rec["long_name"] = *updates.LongName
	}
	if updates.Location != nil {
		rec["location"] = *updates.Location
	}
	if updates.Active != nil {
		rec["active"] = *updates.Active
	}

	var row PgAgency
	found, err := p.Builder.Update(agenciesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("organization_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgAgency{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update agency in pg: %w", err)
	}
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "agency %s not found", id)
	}

	return row.ToDomain(), nil
}

// DeleteAgency performs a soft delete by setting deleted_at for the given
// agency within the organization.
func (p *PgSQL) DeleteAgency(ctx context.Context, orgID domain.OrganizationID, id domain.AgencyID) error {
	res, err := p.Builder.Update(agenciesTable).
		Set(goqu.Record{
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("organization_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete agency in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return serrors.With(serrors.ErrNotFound, "agency %s not found", id)
	}

	return nil
}
