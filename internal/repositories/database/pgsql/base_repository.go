package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// versionToken summarises a table slice as "<row count>:<max last_updated_at in ns>".
// Any insert, delete or update of the slice changes the token.
func (r *BaseRepository) versionToken(ctx context.Context, query string, args ...any) (string, error) {
	var count int64
	var lastUpdated sql.NullTime
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count, &lastUpdated); err != nil {
		return "", fmt.Errorf("failed to read version token: %w", err)
	}

	var updatedNanos int64
	if lastUpdated.Valid {
		updatedNanos = lastUpdated.Time.UnixNano()
	}
	return strconv.FormatInt(count, 10) + ":" + strconv.FormatInt(updatedNanos, 10), nil
}
