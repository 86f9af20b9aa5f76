// Package projectlog persists curation decisions to an append-only,
// line-oriented log so an interrupted session can be resumed. Evidence
// is never logged: only curator decisions are, and the full ordered
// entry list replayed with last-write-wins per id reconstructs the
// curation state exactly.
package projectlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

var (
	// ErrExists is returned by Create when a log is already at the path.
	ErrExists = errors.New("project log already exists")

	// ErrMissing is returned by Open when no log is at the path.
	ErrMissing = errors.New("project log does not exist")
)

// Entry is one accepted curation decision. Label == "" means "no label
// change in this entry", never "clear the label".
type Entry struct {
	ID      string
	Exclude bool
	Reverse bool
	Label   string
}

// Log is an open project log. Append is flushed to disk before it
// returns; a killed process never loses acknowledged entries.
type Log struct {
	path string
	f    *os.File
}

// Create starts a fresh log at path, refusing to clobber an existing
// project. The header map is echoed as "key: value" lines so the file
// is self-describing.
func Create(path string, header map[string]string) (*Log, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s (use resume to continue it)", ErrExists, path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create project log %s: %w", path, err)
	}

	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("# RepeatMatcher project log\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %s\n", k, header[k])
	}

	if _, err = f.WriteString(sb.String()); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write project log header: %w", err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to sync project log header: %w", err)
	}

	return &Log{path: path, f: f}, nil
}

// Open opens an existing log for appending. The caller replays it with
// Replay before accepting new intents.
func Open(path string) (*Log, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s (use new to start a project)", ErrMissing, path)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open project log %s: %w", path, err)
	}

	return &Log{path: path, f: f}, nil
}

// Append durably writes one entry. The write is synced before Append
// returns so previously acknowledged decisions survive a crash.
// Entries carrying line breaks (or tabs in the id) are rejected: they
// would be truncated on replay, not reconstructed.
func (l *Log) Append(e Entry) error {
	if strings.ContainsAny(e.ID, "\t\n\r") {
		return fmt.Errorf("entry id must not contain tabs or line breaks: %q", e.ID)
	}
	if strings.ContainsAny(e.Label, "\n\r") {
		return fmt.Errorf("entry label must not contain line breaks: %q", e.Label)
	}

	line := fmt.Sprintf("%s\t%s\t%s\t%s\n", e.ID, flag(e.Exclude), flag(e.Reverse), e.Label)
	if _, err := l.f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to project log: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("failed to sync project log: %w", err)
	}
	return nil
}

// Close releases the underlying file.
func (l *Log) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// Path returns the log's location on disk.
func (l *Log) Path() string { return l.path }

// Replay reads entries from r in append order. Header "key: value"
// lines and "#" comments are skipped; entry lines are tab-separated
// id, exclude(0|1), reverse(0|1), label.
func Replay(r io.Reader) (entries []Entry, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "\t") {
			// a header echo line, or junk; either way not an entry
			continue
		}

		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed project log entry at line %d: %q", lineNo, line)
		}

		e := Entry{ID: fields[0]}
		if e.Exclude, err = parseFlag(fields[1]); err != nil {
			return nil, fmt.Errorf("bad exclude flag at line %d: %w", lineNo, err)
		}
		if e.Reverse, err = parseFlag(fields[2]); err != nil {
			return nil, fmt.Errorf("bad reverse flag at line %d: %w", lineNo, err)
		}
		if len(fields) == 4 {
			e.Label = fields[3]
		}

		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project log: %w", err)
	}

	return entries, nil
}

// ReplayFile replays the log at path.
func ReplayFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open project log for replay: %w", err)
	}
	defer f.Close()

	return Replay(f)
}

// Fold reduces an ordered entry list to the final per-id state: later
// entries override earlier ones, except that an empty label keeps the
// last non-empty label seen. Fold is pure so the replay contract can be
// tested without touching the filesystem.
func Fold(entries []Entry) map[string]Entry {
	final := make(map[string]Entry)
	for _, e := range entries {
		prev, seen := final[e.ID]
		if seen && e.Label == "" {
			e.Label = prev.Label
		}
		final[e.ID] = e
	}
	return final
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("flag must be 0 or 1, got %q", s)
}
