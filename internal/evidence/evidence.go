// Package evidence reads the per-identifier evidence files produced by
// the upstream modeling pipeline (consensi FASTA, cross_match self and
// reference alignments, BLASTX peptide searches, RNA fold images) and
// merges them into the annotation store. Every source except the
// consensi FASTA is optional: a missing or unreadable secondary source
// is a warning, never a failed load.
package evidence

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Arielyuan/RepeatMatcher/internal/curation"
)

// Sources names the input files for one project. Consensi is required;
// empty fields mean "this evidence was not generated".
type Sources struct {
	Consensi      string
	SelfAlign     string
	RefAlign      string
	PeptideRepeat string
	PeptideNR     string
	FoldDir       string
}

// Load populates store from every configured source. Only a consensi
// failure is fatal.
func Load(src Sources, store *curation.Store) error {
	f, err := os.Open(src.Consensi)
	if err != nil {
		return fmt.Errorf("failed to open consensi FASTA %s: %w", src.Consensi, err)
	}
	if err = readConsensi(f, store); err != nil {
		f.Close()
		return fmt.Errorf("failed to parse consensi FASTA %s: %w", src.Consensi, err)
	}
	f.Close()
	log.Debugf("loaded %d consensi from %s", store.Len(), src.Consensi)

	optional := []struct {
		name string
		path string
		read func(*os.File) error
	}{
		{"self-alignment", src.SelfAlign, func(f *os.File) error { return readSelfAlignments(f, store) }},
		{"reference-alignment", src.RefAlign, func(f *os.File) error { return readRefAlignments(f, store) }},
		{"repeat-peptide hits", src.PeptideRepeat, func(f *os.File) error {
			return readPeptideHits(f, store.SetPeptideRepeatHits)
		}},
		{"NR peptide hits", src.PeptideNR, func(f *os.File) error {
			return readPeptideHits(f, store.SetPeptideNRHits)
		}},
	}

	for _, opt := range optional {
		if opt.path == "" {
			continue
		}

		f, err := os.Open(opt.path)
		if err != nil {
			log.Warnf("skipping %s evidence: %v", opt.name, err)
			continue
		}
		if err = opt.read(f); err != nil {
			log.Warnf("skipping the rest of the %s evidence in %s: %v", opt.name, opt.path, err)
		}
		f.Close()
	}

	if src.FoldDir != "" {
		resolveFoldImages(src.FoldDir, store)
	}

	return nil
}

// stripClass removes a "#class" suffix from an identifier as it appears
// in alignment and search reports.
func stripClass(id string) string {
	if i := strings.IndexByte(id, '#'); i >= 0 {
		return id[:i]
	}
	return id
}

// isScoreRow reports whether a whitespace-split report line is a data
// row: it starts with two integers.
func isScoreRow(fields []string) bool {
	if len(fields) < 2 {
		return false
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return false
	}
	if _, err := strconv.Atoi(fields[1]); err != nil {
		return false
	}
	return true
}
