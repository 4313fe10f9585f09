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
	organizationsTable = "organizations"
)

// StoreOrganization inserts a new organization and returns the stored row as
// it exists in the database (including generated fields).
func (p *PgSQL) StoreOrganization(ctx context.Context, org domain.Organization) (*domain.Organization, error) {
	var row PgOrganization
	row.FromDomain(org)

	var result PgOrganization
	found, err := p.Builder.Insert(organizationsTable).
		Rows(row).
		Returning(&PgOrganization{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store organization into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store organization into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// OrganizationByID returns an organization by its ID, excluding soft-deleted rows.
func (p *PgSQL) OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	var row PgOrganization
	found, err := p.Builder.From(organizationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization by id: %w", err)
	}
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	return row.ToDomain(), nil
}

// UserOrganizations returns all live organizations owned by the given user,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) UserOrganizations(ctx context.Context, ownerID domain.UserID) ([]domain.Organization, error) {
	var rows []PgOrganization
	err := p.Builder.From(organizationsTable).
		Where(
			goqu.I("owner_id").Eq(uuid.UUID(ownerID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user organizations from pg: %w", err)
	}

	return pgOrganizationsToDomain(rows), nil
}

// UpdateOrganizationByID updates a single organization identified by its ID
// and returns the updated row. Only provided fields are changed; updated_at
// is set automatically and soft-deleted rows are ignored.
func (p *PgSQL) UpdateOrganizationByID(ctx context.Context,
	id domain.OrganizationID,
	updates repository.OrganizationUpdates) (*domain.Organization, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.ShortName != nil {
		rec["short_name"] = *updates.ShortName
	}
	if updates.LongName != nil {
		rec["long_name"] = *updates.LongName
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}

	var row PgOrganization
	found, err := p.Builder.Update(organizationsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgOrganization{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update organization in pg: %w", err)
	}
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	return row.ToDomain(), nil
}

// DeleteOrganization performs a soft delete by setting deleted_at for the
// organization and cascades the soft delete to its live agencies.
func (p *PgSQL) DeleteOrganization(ctx context.Context, id domain.OrganizationID) error {
	res, err := p.Builder.Update(organizationsTable).
		Set(goqu.Record{
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete organization in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	// agencies never outlive their parent organization
	_, err = p.Builder.Update(agenciesTable).
		Set(goqu.Record{
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("organization_id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete organization agencies in pg: %w", err)
	}

	return nil
}
