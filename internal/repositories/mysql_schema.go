package repositories

import (
	"context"
	"database/sql"
	"errors"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// tableExists probes information_schema so start-up can skip DDL on
// accounts that lack CREATE privileges once the table is in place.
func tableExists(ctx context.Context, q queryRower, table string) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return name.Valid && name.String != "", nil
}
