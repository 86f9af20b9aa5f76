// Package export serializes final curation decisions to the two output
// FASTA files: kept sequences and excluded sequences. The pass is
// all-or-nothing: both files are written to temp paths and renamed into
// place only after both succeed, so a failure never leaves one output
// fresh and the other stale.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Arielyuan/RepeatMatcher/internal/curation"
)

// lineWidth is the wrap column for sequences that had to be rebuilt
// (reverse-complemented); untouched sequences keep their input breaks.
const lineWidth = 60

// Export writes every record to keepPath or, when its exclude flag is
// set, to excludePath, in lexicographic id order. Reverse-flagged
// sequences are reverse-complemented before writing.
func Export(store *curation.Store, keepPath, excludePath string) error {
	var keep, excluded strings.Builder

	kept, dropped := 0, 0
	for _, id := range store.IDs() {
		rec, err := store.Get(id)
		if err != nil {
			return err // unreachable: IDs come from the store itself
		}

		out := &keep
		if rec.Exclude {
			out = &excluded
			dropped++
		} else {
			kept++
		}

		body := rec.Seq
		if rec.Reverse {
			body = wrap(ReverseComplement(stripWhitespace(rec.Seq)), lineWidth)
		}

		fmt.Fprintf(out, ">%s\n%s\n", rec.CurrentLabel, strings.TrimRight(body, "\n"))
	}

	if err := writeBoth(keepPath, keep.String(), excludePath, excluded.String()); err != nil {
		return err
	}

	log.Infof("exported %d kept and %d excluded consensi", kept, dropped)
	return nil
}

// writeBoth lands both outputs atomically: temp files next to the
// targets, renamed only after both writes succeeded.
func writeBoth(keepPath, keepData, excludePath, excludeData string) error {
	keepTmp, err := writeTemp(keepPath, keepData)
	if err != nil {
		return err
	}

	excludeTmp, err := writeTemp(excludePath, excludeData)
	if err != nil {
		os.Remove(keepTmp)
		return err
	}

	if err = os.Rename(keepTmp, keepPath); err != nil {
		os.Remove(keepTmp)
		os.Remove(excludeTmp)
		return fmt.Errorf("failed to move kept output into place: %w", err)
	}
	if err = os.Rename(excludeTmp, excludePath); err != nil {
		os.Remove(excludeTmp)
		return fmt.Errorf("failed to move excluded output into place: %w", err)
	}

	return nil
}

func writeTemp(target, data string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp*")
	if err != nil {
		return "", fmt.Errorf("failed to open output %s: %w", target, err)
	}

	if _, err = f.WriteString(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write output %s: %w", target, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to flush output %s: %w", target, err)
	}

	return f.Name(), nil
}

// complements pairs each nucleotide with its complement, both cases.
// Unknown characters (N, IUPAC ambiguity codes) pass through unchanged.
var complements = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
}

// ReverseComplement returns the sequence read backwards with each base
// substituted by its pairing base, case preserved.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[len(seq)-1-i]
		if comp, ok := complements[c]; ok {
			c = comp
		}
		out[i] = c
	}
	return string(out)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func wrap(seq string, width int) string {
	var sb strings.Builder
	for start := 0; start < len(seq); start += width {
		end := start + width
		if end > len(seq) {
			end = len(seq)
		}
		sb.WriteString(seq[start:end])
		if end < len(seq) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
