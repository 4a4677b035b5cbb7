package postpilot

import (
	"context"
	"time"
)

// TimestampLayout is how record timestamps are rendered in tabular storage.
const TimestampLayout = "2006-01-02 15:04:05"

// PostRecord documents one completed publish action. Records are append-only;
// the history never mutates or deletes a record.
type PostRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Platform  Platform  `json:"platform"`
	Caption   string    `json:"caption"`
	File      string    `json:"file"`
}

// PostLog persists the ordered sequence of post records.
type PostLog interface {
	// Append adds one record to the end of the history.
	Append(ctx context.Context, record PostRecord) error

	// Records returns all records in append order, oldest first.
	Records(ctx context.Context) ([]PostRecord, error)
}
