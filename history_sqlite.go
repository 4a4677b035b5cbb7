package postpilot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLitePostLog is a PostLog backed by a local sqlite database. Every append
// is a single INSERT, so concurrent writers cannot lose rows the way a
// whole-file rewrite can.
type SQLitePostLog struct {
	db *sql.DB
}

// NewSQLitePostLog opens (creating if needed) the sqlite database at path
// and ensures the post_history table exists.
func NewSQLitePostLog(path string) (*SQLitePostLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, WrapScheduleError(KindPersistence, fmt.Errorf("failed to open history database: %w", err))
	}
	l := &SQLitePostLog{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *SQLitePostLog) migrate() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS post_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			platform TEXT NOT NULL,
			caption TEXT NOT NULL,
			file TEXT NOT NULL
		)`)
	if err != nil {
		return WrapScheduleError(KindPersistence, fmt.Errorf("failed to create post_history table: %w", err))
	}
	return nil
}

func (l *SQLitePostLog) Append(ctx context.Context, record PostRecord) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO post_history (timestamp, platform, caption, file) VALUES (?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		string(record.Platform),
		record.Caption,
		record.File,
	)
	if err != nil {
		return WrapScheduleError(KindPersistence, err)
	}
	return nil
}

func (l *SQLitePostLog) Records(ctx context.Context) ([]PostRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT timestamp, platform, caption, file FROM post_history ORDER BY id`)
	if err != nil {
		return nil, WrapScheduleError(KindPersistence, err)
	}
	defer rows.Close()

	var records []PostRecord
	for rows.Next() {
		var ts, platform, caption, file string
		if err := rows.Scan(&ts, &platform, &caption, &file); err != nil {
			return nil, WrapScheduleError(KindPersistence, err)
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, WrapScheduleError(KindPersistence, err)
		}
		records = append(records, PostRecord{
			Timestamp: t,
			Platform:  Platform(platform),
			Caption:   caption,
			File:      file,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, WrapScheduleError(KindPersistence, err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (l *SQLitePostLog) Close() error {
	return l.db.Close()
}
