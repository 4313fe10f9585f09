package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

// PurgeDeletedBefore permanently removes rows soft-deleted before cutoff from
// both tables and returns how many were dropped. Agencies go first so the
// organizations they reference are still present while the delete runs.
func (p *PgSQL) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var purged int64

	for _, table := range []string{agenciesTable, organizationsTable} {
		res, err := p.Builder.Delete(table).
			Where(
				goqu.I("deleted_at").IsNotNull(),
				goqu.I("deleted_at").Lt(cutoff),
			).Executor().ExecContext(ctx)
		if err != nil {
			return purged, fmt.Errorf("could not purge %s: %w", table, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return purged, fmt.Errorf("could not read affected rows: %w", err)
		}
		purged += affected
	}

	return purged, nil
}
