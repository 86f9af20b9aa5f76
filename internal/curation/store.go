// Package curation owns the in-memory annotation state for one project:
// one SequenceRecord per consensus identifier, every mutation rule, and
// the canonical label format. Evidence parsers fill records in through
// the Set/Add methods; the presentation layer mutates them only through
// Apply, which returns the change to be logged.
package curation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Arielyuan/RepeatMatcher/internal/taxonomy"
)

// ErrNotFound is returned when an id has no record in the store.
var ErrNotFound = errors.New("no record for id")

// SelfAlignment is one pairwise self-comparison hit, stored from the
// perspective of the record that holds it.
type SelfAlignment struct {
	Name  string
	Start int
	End   int

	Partner      string
	PartnerStart int
	PartnerEnd   int

	// Complement is true when the partner aligns in reverse orientation.
	Complement bool
}

// SequenceRecord accumulates all evidence and curation state for one
// consensus identifier. Identity fields are set once at load; curation
// fields change only through Apply or replayed log entries.
type SequenceRecord struct {
	ID string

	// OriginalLabel is the header as first seen in the consensi FASTA.
	OriginalLabel string

	// CurrentLabel is the canonical, curator-editable label.
	CurrentLabel string

	// Class is the taxonomy class encoded in CurrentLabel.
	Class string

	// Note is the free-text annotation encoded in CurrentLabel.
	Note string

	// Seq is the nucleotide sequence with input line breaks preserved.
	Seq string

	SelfAlignments    []SelfAlignment
	RefAlignment      string
	PeptideRepeatHits string
	PeptideNRHits     string
	FoldImage         string

	// Reviewed is true iff at least one decision for this id was logged.
	Reviewed  bool
	Exclude   bool
	Reverse   bool
	Ambiguous bool

	// curated guards the label against being clobbered by the consensi
	// parser when a replayed rename arrived before the evidence load
	curated bool
}

// Intent is one curation request from the presentation layer. Nil
// fields mean "leave unchanged".
type Intent struct {
	Class     *string
	Note      *string
	Reverse   *bool
	Exclude   *bool
	Ambiguous *bool
}

// Change is the diff an accepted intent produces, in the shape the
// project log records. Label == "" means the label did not change.
type Change struct {
	ID      string
	Exclude bool
	Reverse bool
	Label   string
}

// Store maps sequence identifiers to their records. Not safe for
// concurrent use; curation is strictly one intent at a time.
type Store struct {
	records map[string]*SequenceRecord
	tax     *taxonomy.Index
}

// NewStore returns an empty store validating classes against tax.
func NewStore(tax *taxonomy.Index) *Store {
	return &Store{
		records: make(map[string]*SequenceRecord),
		tax:     tax,
	}
}

// Taxonomy returns the index the store validates against.
func (s *Store) Taxonomy() *taxonomy.Index { return s.tax }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Get returns the record for id or ErrNotFound.
func (s *Store) Get(id string) (*SequenceRecord, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return rec, nil
}

// Ensure returns the record for id, creating a synthetic one when the
// id was first referenced by secondary evidence or a replayed log.
func (s *Store) Ensure(id string) *SequenceRecord {
	if rec, ok := s.records[id]; ok {
		return rec
	}

	rec := &SequenceRecord{
		ID:           id,
		Class:        taxonomy.Unclassified,
		CurrentLabel: FormatLabel(id, taxonomy.Unclassified, false, ""),
	}
	s.records[id] = rec
	return rec
}

// SetSequence fills the identity fields from the consensi FASTA. The
// first header for an id wins; replayed curation labels are kept.
func (s *Store) SetSequence(id, header, class string, ambiguous bool, note, seq string) {
	rec := s.Ensure(id)
	if rec.Seq != "" {
		log.Warnf("duplicate consensi entry for %s, keeping the first", id)
		return
	}

	rec.OriginalLabel = header
	rec.Seq = seq
	if !rec.curated {
		rec.Class = class
		rec.Note = note
		rec.Ambiguous = ambiguous
		rec.CurrentLabel = FormatLabel(id, class, ambiguous, note)
	}
}

// AddSelfAlignment appends one self-comparison hit. Deduplication is
// the self-alignment parser's job.
func (s *Store) AddSelfAlignment(id string, hit SelfAlignment) {
	rec := s.Ensure(id)
	rec.SelfAlignments = append(rec.SelfAlignments, hit)
}

// AppendRefAlignment appends verbatim reference-alignment text.
func (s *Store) AppendRefAlignment(id, text string) {
	rec := s.Ensure(id)
	if rec.RefAlignment != "" && !strings.HasSuffix(rec.RefAlignment, "\n") {
		rec.RefAlignment += "\n"
	}
	rec.RefAlignment += text
}

// SetPeptideRepeatHits records the repeat-peptide search block for id.
// The first block wins.
func (s *Store) SetPeptideRepeatHits(id, text string) {
	rec := s.Ensure(id)
	if rec.PeptideRepeatHits == "" {
		rec.PeptideRepeatHits = text
	}
}

// SetPeptideNRHits records the NR search block for id. The first block
// wins.
func (s *Store) SetPeptideNRHits(id, text string) {
	rec := s.Ensure(id)
	if rec.PeptideNRHits == "" {
		rec.PeptideNRHits = text
	}
}

// SetFoldImage associates a folding-image path with id.
func (s *Store) SetFoldImage(id, path string) {
	s.Ensure(id).FoldImage = path
}

// Apply validates and applies one curation intent, returning the change
// to append to the project log. Unknown ids leave the store untouched.
// Unknown classes are accepted with a warning: the taxonomy is
// advisory, not enforced.
func (s *Store) Apply(id string, in Intent) (Change, error) {
	rec, err := s.Get(id)
	if err != nil {
		return Change{}, err
	}

	class, note, ambiguous := rec.Class, rec.Note, rec.Ambiguous
	exclude, reverse := rec.Exclude, rec.Reverse

	relabeled := false
	if in.Class != nil {
		// the class runs to the first space in the canonical label and
		// the label is one log line: no whitespace of any kind survives
		class = strings.TrimSuffix(strings.Join(strings.Fields(*in.Class), ""), "?")
		if class == "" {
			class = taxonomy.Unclassified
		}
		if !s.tax.Known(class) {
			log.Warnf("class %q for %s is not in the repeat taxonomy, saving anyway", class, id)
		}
		relabeled = true
	}
	if in.Note != nil {
		// fold line breaks and tabs so the note can never split a
		// line-oriented log entry
		note = strings.Join(strings.Fields(*in.Note), " ")
		relabeled = true
	}
	if in.Ambiguous != nil {
		ambiguous = *in.Ambiguous
		relabeled = true
	}
	if in.Exclude != nil {
		exclude = *in.Exclude
	}
	if in.Reverse != nil {
		reverse = *in.Reverse
	}

	label := FormatLabel(id, class, ambiguous, note)

	rec.Class = class
	rec.Note = note
	rec.Ambiguous = ambiguous
	rec.Exclude = exclude
	rec.Reverse = reverse
	rec.CurrentLabel = label
	rec.Reviewed = true
	rec.curated = rec.curated || relabeled

	change := Change{ID: id, Exclude: exclude, Reverse: reverse}
	if relabeled {
		change.Label = label
	}
	return change, nil
}

// ApplyLogged applies the folded outcome of replayed log entries for
// one id: flags verbatim, the label re-parsed when present, and the
// record marked reviewed. Records are created as needed since replay
// runs before the evidence load.
func (s *Store) ApplyLogged(id string, exclude, reverse bool, label string) {
	rec := s.Ensure(id)

	rec.Exclude = exclude
	rec.Reverse = reverse
	rec.Reviewed = true

	if label != "" {
		_, class, ambiguous, note := ParseLabel(label)
		if class == "" {
			class = taxonomy.Unclassified
		}
		rec.Class = class
		rec.Ambiguous = ambiguous
		rec.Note = note
		rec.CurrentLabel = FormatLabel(id, class, ambiguous, note)
		rec.curated = true
	}
}

// IDs returns every known id in lexicographic order, the order used
// for listings and export.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GroupedByClass buckets ids under their taxonomy display group. Every
// group is present, even with zero members, so hierarchical listings
// are stable.
func (s *Store) GroupedByClass() (groups []string, byGroup map[string][]string) {
	groups = s.tax.Groups()
	byGroup = make(map[string][]string, len(groups))
	for _, g := range groups {
		byGroup[g] = []string{}
	}

	for _, id := range s.IDs() {
		rec := s.records[id]
		g := s.tax.Classify(rec.Class)
		byGroup[g] = append(byGroup[g], id)
	}

	return groups, byGroup
}
