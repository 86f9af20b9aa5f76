package evidence

import (
	"strings"
	"testing"

	"github.com/Arielyuan/RepeatMatcher/internal/curation"
	"github.com/Arielyuan/RepeatMatcher/internal/taxonomy"
)

const consensiFixture = `>seq1#DNA/hAT-Charlie desc one
ACGTACGTAC
GTACGTacgt
>seq2 desc two
TTTTGGGG
>seq3#LTR/Gypsy? maybe gypsy
CCCC
`

func TestReadConsensi(t *testing.T) {
	store := curation.NewStore(taxonomy.New())
	if err := readConsensi(strings.NewReader(consensiFixture), store); err != nil {
		t.Fatalf("readConsensi() = %v", err)
	}

	tests := []struct {
		id        string
		class     string
		ambiguous bool
		note      string
		seq       string
	}{
		{"seq1", "DNA/hAT-Charlie", false, "desc one", "ACGTACGTAC\nGTACGTacgt"},
		{"seq2", taxonomy.Unclassified, false, "desc two", "TTTTGGGG"},
		{"seq3", "LTR/Gypsy", true, "maybe gypsy", "CCCC"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec, err := store.Get(tt.id)
			if err != nil {
				t.Fatalf("Get(%s) = %v", tt.id, err)
			}
			if rec.Class != tt.class {
				t.Errorf("Class = %q, want %q", rec.Class, tt.class)
			}
			if rec.Ambiguous != tt.ambiguous {
				t.Errorf("Ambiguous = %v, want %v", rec.Ambiguous, tt.ambiguous)
			}
			if rec.Note != tt.note {
				t.Errorf("Note = %q, want %q", rec.Note, tt.note)
			}
			if rec.Seq != tt.seq {
				t.Errorf("Seq = %q, want %q (line breaks must be preserved)", rec.Seq, tt.seq)
			}
		})
	}

	// current label defaults to a canonical render of the original
	rec, _ := store.Get("seq2")
	if rec.CurrentLabel != "seq2#Unknown desc two" {
		t.Errorf("CurrentLabel = %q", rec.CurrentLabel)
	}
	if rec.OriginalLabel != "seq2 desc two" {
		t.Errorf("OriginalLabel = %q", rec.OriginalLabel)
	}
}

func TestReadConsensi_errors(t *testing.T) {
	store := curation.NewStore(taxonomy.New())

	if err := readConsensi(strings.NewReader(""), store); err == nil {
		t.Error("empty input should fail")
	}
	if err := readConsensi(strings.NewReader("ACGT\n>seq1\nACGT\n"), store); err == nil {
		t.Error("sequence before the first header should fail")
	}
}
