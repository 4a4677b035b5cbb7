package postpilot

import (
	"context"
	"sync"
)

// MemoryPostLog keeps records in memory. Useful for tests and dry runs.
type MemoryPostLog struct {
	mutex   sync.Mutex
	records []PostRecord
}

func NewMemoryPostLog() *MemoryPostLog {
	return &MemoryPostLog{}
}

func (l *MemoryPostLog) Append(ctx context.Context, record PostRecord) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.records = append(l.records, record)
	return nil
}

func (l *MemoryPostLog) Records(ctx context.Context) ([]PostRecord, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	out := make([]PostRecord, len(l.records))
	copy(out, l.records)
	return out, nil
}

// NullPostLog discards every record.
type NullPostLog struct{}

func NewNullPostLog() *NullPostLog {
	return &NullPostLog{}
}

func (l *NullPostLog) Append(ctx context.Context, record PostRecord) error {
	return nil
}

func (l *NullPostLog) Records(ctx context.Context) ([]PostRecord, error) {
	return nil, nil
}
