// Package activity records what a session did: every operation posted or
// rejected, kept in memory and appended to a CSV file on request.
package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Outcome values.
const (
	OutcomePosted   = "posted"
	OutcomeRejected = "rejected"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	Session   string
	Operation string
	Outcome   string
	Details   string
	EntryID   string
}

// Header is the CSV header for an activity log.
var Header = []string{"timestamp", "session", "operation", "outcome", "details", "entry_id"}

const (
	numFields    = 6
	colTimestamp = 0
	colSession   = 1
	colOperation = 2
	colOutcome   = 3
	colDetails   = 4
	colEntryID   = 5
)

// Log collects the entries of one session.
type Log struct {
	session string
	now     func() time.Time
	entries []Entry
}

// NewLog starts an empty log for session.
func NewLog(session string) *Log {
	return &Log{session: session, now: time.Now}
}

// Session returns the session identifier stamped on every entry.
func (l *Log) Session() string { return l.session }

// Posted records a successful operation.
func (l *Log) Posted(operation, entryID, details string) {
	l.add(operation, OutcomePosted, entryID, details)
}

// Rejected records an operation that failed validation.
func (l *Log) Rejected(operation string, err error) {
	l.add(operation, OutcomeRejected, "", err.Error())
}

func (l *Log) add(operation, outcome, entryID, details string) {
	l.entries = append(l.entries, Entry{
		Timestamp: l.now().UTC(),
		Session:   l.session,
		Operation: operation,
		Outcome:   outcome,
		Details:   details,
		EntryID:   entryID,
	})
}

// Entries returns the recorded entries in order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSession] = e.Session
	row[colOperation] = e.Operation
	row[colOutcome] = e.Outcome
	row[colDetails] = e.Details
	row[colEntryID] = e.EntryID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Session:   record[colSession],
		Operation: record[colOperation],
		Outcome:   record[colOutcome],
		Details:   record[colDetails],
		EntryID:   record[colEntryID],
	}, nil
}

// Append writes entries to the CSV file at path, creating it (and its
// directory) with a header if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the CSV file at path.
// Returns nil if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
