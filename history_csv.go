package postpilot

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var historyColumns = []string{"Timestamp", "Platform", "Caption", "File"}

// CSVPostLog is a PostLog backed by a single CSV file with columns
// Timestamp, Platform, Caption, File. The file is created on first append.
//
// Appending reads the whole file, adds the row, and writes the file back.
// All writers go through one mutex so concurrent schedules in this process
// cannot lose each other's rows. Use SQLitePostLog or PostgresPostLog when
// multiple processes share a history.
type CSVPostLog struct {
	path  string
	mutex sync.Mutex
}

func NewCSVPostLog(path string) *CSVPostLog {
	return &CSVPostLog{path: path}
}

// Path returns the location of the history file.
func (l *CSVPostLog) Path() string {
	return l.path
}

func (l *CSVPostLog) Append(ctx context.Context, record PostRecord) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	records, err := l.load()
	if err != nil {
		return err
	}
	records = append(records, record)
	return l.store(records)
}

func (l *CSVPostLog) Records(ctx context.Context) ([]PostRecord, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.load()
}

func (l *CSVPostLog) load() ([]PostRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, WrapScheduleError(KindPersistence, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, WrapScheduleError(KindPersistence, fmt.Errorf("failed to read post history: %w", err))
	}
	var records []PostRecord
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) != len(historyColumns) {
			return nil, NewScheduleError(KindPersistence, fmt.Sprintf("malformed history row %d", i))
		}
		ts, err := time.ParseInLocation(TimestampLayout, row[0], time.Local)
		if err != nil {
			return nil, WrapScheduleError(KindPersistence, fmt.Errorf("malformed timestamp in row %d: %w", i, err))
		}
		records = append(records, PostRecord{
			Timestamp: ts,
			Platform:  Platform(row[1]),
			Caption:   row[2],
			File:      row[3],
		})
	}
	return records, nil
}

func (l *CSVPostLog) store(records []PostRecord) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return WrapScheduleError(KindPersistence, err)
		}
	}
	f, err := os.Create(l.path)
	if err != nil {
		return WrapScheduleError(KindPersistence, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(historyColumns); err != nil {
		return WrapScheduleError(KindPersistence, err)
	}
	for _, r := range records {
		row := []string{
			r.Timestamp.Format(TimestampLayout),
			string(r.Platform),
			r.Caption,
			r.File,
		}
		if err := w.Write(row); err != nil {
			return WrapScheduleError(KindPersistence, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return WrapScheduleError(KindPersistence, err)
	}
	if err := f.Sync(); err != nil {
		return WrapScheduleError(KindPersistence, err)
	}
	return nil
}
