package postpilot

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresPostLog is a PostLog backed by PostgreSQL, for deployments where
// several operators share one post history. Appends are single INSERTs.
type PostgresPostLog struct {
	db *sql.DB
}

// NewPostgresPostLog connects using a lib/pq connection string and ensures
// the post_history table exists.
func NewPostgresPostLog(connStr string) (*PostgresPostLog, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, WrapScheduleError(KindPersistence, fmt.Errorf("failed to open history database: %w", err))
	}
	l := &PostgresPostLog{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *PostgresPostLog) migrate() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS post_history (
			id BIGSERIAL PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			platform TEXT NOT NULL,
			caption TEXT NOT NULL,
			file TEXT NOT NULL
		)`)
	if err != nil {
		return WrapScheduleError(KindPersistence, fmt.Errorf("failed to create post_history table: %w", err))
	}
	return nil
}

func (l *PostgresPostLog) Append(ctx context.Context, record PostRecord) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO post_history (timestamp, platform, caption, file) VALUES ($1, $2, $3, $4)`,
		record.Timestamp,
		string(record.Platform),
		record.Caption,
		record.File,
	)
	if err != nil {
		return WrapScheduleError(KindPersistence, err)
	}
	return nil
}

func (l *PostgresPostLog) Records(ctx context.Context) ([]PostRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT timestamp, platform, caption, file FROM post_history ORDER BY id`)
	if err != nil {
		return nil, WrapScheduleError(KindPersistence, err)
	}
	defer rows.Close()

	var records []PostRecord
	for rows.Next() {
		var r PostRecord
		var platform string
		if err := rows.Scan(&r.Timestamp, &platform, &r.Caption, &r.File); err != nil {
			return nil, WrapScheduleError(KindPersistence, err)
		}
		r.Platform = Platform(platform)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapScheduleError(KindPersistence, err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (l *PostgresPostLog) Close() error {
	return l.db.Close()
}
