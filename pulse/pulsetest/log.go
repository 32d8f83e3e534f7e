package pulsetest

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a captured log entry.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]slog.Value
}

// Logs is a slog.Handler capturing every record at any level.
type Logs struct {
	mu      sync.Mutex
	records []Record

	// OnRecord is called for every record after it was captured
	OnRecord func(Record)
}

// NewLogger returns a logger writing into a new Logs instance.
func NewLogger() (*slog.Logger, *Logs) {
	logs := &Logs{}
	return slog.New(logs), logs
}

func (l *Logs) Enabled(context.Context, slog.Level) bool {
	return true
}

func (l *Logs) Handle(_ context.Context, rec slog.Record) error {
	record := Record{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   map[string]slog.Value{},
	}

	rec.Attrs(func(attr slog.Attr) bool {
		record.Attrs[attr.Key] = attr.Value
		return true
	})

	l.mu.Lock()
	l.records = append(l.records, record)
	l.mu.Unlock()

	if l.OnRecord != nil {
		l.OnRecord(record)
	}

	return nil
}

func (l *Logs) WithAttrs([]slog.Attr) slog.Handler {
	return l
}

func (l *Logs) WithGroup(string) slog.Handler {
	return l
}

// Find returns all records with the given message.
func (l *Logs) Find(message string) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []Record
	for _, rec := range l.records {
		if rec.Message == message {
			result = append(result, rec)
		}
	}

	return result
}
