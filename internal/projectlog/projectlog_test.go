package projectlog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCreateOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repeatmatcher.log")

	if _, err := Open(path); !errors.Is(err, ErrMissing) {
		t.Fatalf("Open of a missing log = %v, want ErrMissing", err)
	}

	l, err := Create(path, map[string]string{"consensi": "consensi.fa", "verbose": "true"})
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if err = l.Append(Entry{ID: "seq1", Exclude: true}); err != nil {
		t.Fatalf("Append() = %v", err)
	}
	if err = l.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	if _, err = Create(path, nil); !errors.Is(err, ErrExists) {
		t.Fatalf("Create over an existing log = %v, want ErrExists", err)
	}

	// reopen and append more; both entries must replay in order
	if l, err = Open(path); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err = l.Append(Entry{ID: "seq2", Reverse: true, Label: "seq2#LINE/L1 tail"}); err != nil {
		t.Fatalf("Append() after reopen = %v", err)
	}
	l.Close()

	entries, err := ReplayFile(path)
	if err != nil {
		t.Fatalf("ReplayFile() = %v", err)
	}
	want := []Entry{
		{ID: "seq1", Exclude: true},
		{ID: "seq2", Reverse: true, Label: "seq2#LINE/L1 tail"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ReplayFile() = %+v, want %+v", entries, want)
	}

	// the header must have been echoed
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "consensi: consensi.fa") {
		t.Errorf("log header missing config echo:\n%s", raw)
	}
}

func TestReplay(t *testing.T) {
	in := strings.Join([]string{
		"# RepeatMatcher project log",
		"consensi: consensi.fa",
		"log: repeatmatcher.log",
		"",
		"seq1\t0\t0\tseq1#DNA/hAT desc",
		"# curator paused here",
		"seq1\t1\t0\t",
		"seq2\t0\t1\tseq2#LTR/Gypsy? maybe",
	}, "\n") + "\n"

	entries, err := Replay(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Replay() = %v", err)
	}

	want := []Entry{
		{ID: "seq1", Label: "seq1#DNA/hAT desc"},
		{ID: "seq1", Exclude: true},
		{ID: "seq2", Reverse: true, Label: "seq2#LTR/Gypsy? maybe"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Replay() = %+v, want %+v", entries, want)
	}
}

// a label with a line break would be truncated on replay, so Append
// must refuse it outright instead of corrupting the log
func TestAppend_rejectsLineBreaks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repeatmatcher.log")
	l, err := Create(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	tests := []struct {
		name  string
		entry Entry
	}{
		{"newline in label", Entry{ID: "seq1", Label: "seq1#DNA/hAT line one\nline two"}},
		{"carriage return in label", Entry{ID: "seq1", Label: "seq1#DNA/hAT one\rtwo"}},
		{"tab in id", Entry{ID: "seq\t1", Label: "seq1#DNA/hAT fine"}},
		{"newline in id", Entry{ID: "seq\n1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.Append(tt.entry); err == nil {
				t.Fatal("Append accepted an entry that cannot round-trip")
			}
		})
	}

	// nothing may have reached the log
	entries, err := ReplayFile(path)
	if err != nil {
		t.Fatalf("ReplayFile() = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected entries still replayed: %+v", entries)
	}
}

func TestReplay_malformed(t *testing.T) {
	if _, err := Replay(strings.NewReader("seq1\t2\t0\tlabel\n")); err == nil {
		t.Error("Replay accepted a flag that is neither 0 nor 1")
	}
}

func TestFold(t *testing.T) {
	entries := []Entry{
		{ID: "seq1", Label: "seq1#DNA/hAT desc"},
		{ID: "seq1", Exclude: true}, // empty label must not clear the first one
		{ID: "seq2", Reverse: true},
		{ID: "seq2", Reverse: false, Label: "seq2#LINE/L1 renamed"},
	}

	got := Fold(entries)

	want := map[string]Entry{
		"seq1": {ID: "seq1", Exclude: true, Label: "seq1#DNA/hAT desc"},
		"seq2": {ID: "seq2", Label: "seq2#LINE/L1 renamed"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fold() = %+v, want %+v", got, want)
	}
}

// replaying a log twice must land on the same state as replaying it once
func TestFold_idempotent(t *testing.T) {
	entries := []Entry{
		{ID: "seq1", Label: "seq1#DNA/hAT one"},
		{ID: "seq1", Exclude: true},
		{ID: "seq1", Exclude: true, Reverse: true, Label: "seq1#DNA/hAT-Charlie two"},
		{ID: "seq2", Label: "seq2#Unknown x"},
	}

	once := Fold(entries)
	twice := Fold(append(append([]Entry{}, entries...), entries...))

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Fold(entries) != Fold(entries+entries):\n%+v\n%+v", once, twice)
	}
}
