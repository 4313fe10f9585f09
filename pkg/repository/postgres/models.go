package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"orgdash/pkg/domain"
)

// PgOrganization is the row shape of the organizations table.
type PgOrganization struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	OwnerID uuid.UUID `db:"owner_id"`

	ShortName string `db:"short_name"`
	LongName  string `db:"long_name"`
	Status    string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgOrganization) ToDomain() *domain.Organization {
	return &domain.Organization{
		ID:        domain.OrganizationID(p.ID),
		OwnerID:   domain.UserID(p.OwnerID),
		ShortName: p.ShortName,
		LongName:  p.LongName,
		Status:    domain.OrganizationStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgOrganization) FromDomain(org domain.Organization) {
	*p = PgOrganization{
		ID:        uuid.UUID(org.ID),
		OwnerID:   uuid.UUID(org.OwnerID),
		ShortName: org.ShortName,
		LongName:  org.LongName,
		Status:    string(org.Status),
		CreatedAt: org.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  org.UpdatedAt,
			Valid: !org.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  org.DeletedAt,
			Valid: !org.DeletedAt.IsZero(),
		},
	}
}

// PgAgency is the row shape of the agencies table.
type PgAgency struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	OrganizationID uuid.UUID `db:"organization_id"`

	ShortName string `db:"short_name"`
	LongName  string `db:"long_name"`
	Active    bool   `db:"active"`
	Location  string `db:"location"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgAgency) ToDomain() *domain.Agency {
	return &domain.Agency{
		ID:             domain.AgencyID(p.ID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		ShortName:      p.ShortName,
		LongName:       p.LongName,
		Active:         p.Active,
		Location:       p.Location,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
		DeletedAt:      p.DeletedAt.Time,
	}
}

func (p *PgAgency) FromDomain(agency domain.Agency) {
	*p = PgAgency{
		ID:             uuid.UUID(agency.ID),
		OrganizationID: uuid.UUID(agency.OrganizationID),
		ShortName:      agency.ShortName,
		LongName:       agency.LongName,
		Active:         agency.Active,
		Location:       agency.Location,
		CreatedAt:      agency.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  agency.UpdatedAt,
			Valid: !agency.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  agency.DeletedAt,
			Valid: !agency.DeletedAt.IsZero(),
		},
	}
}

func pgOrganizationsToDomain(rows []PgOrganization) []domain.Organization {
	out := make([]domain.Organization, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgAgenciesToDomain(rows []PgAgency) []domain.Agency {
	out := make([]domain.Agency, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
