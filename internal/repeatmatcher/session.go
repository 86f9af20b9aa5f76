// Package repeatmatcher wires the curation core together for one
// project: evidence loading, log replay, intent handling, and export.
// It is the surface a presentation layer (today the CLI in /cmd) drives
// curation through, without knowing how state is stored or persisted.
package repeatmatcher

import (
	"fmt"
	"os"

	"github.com/Arielyuan/RepeatMatcher/config"
	"github.com/Arielyuan/RepeatMatcher/internal/curation"
	"github.com/Arielyuan/RepeatMatcher/internal/evidence"
	"github.com/Arielyuan/RepeatMatcher/internal/export"
	"github.com/Arielyuan/RepeatMatcher/internal/projectlog"
	"github.com/Arielyuan/RepeatMatcher/internal/taxonomy"
)

// Session is one curator's open project: the annotation store, the
// log it persists decisions to, and the configuration both came from.
// Intents are processed strictly one at a time.
type Session struct {
	Conf  *config.Config
	Store *curation.Store
	Log   *projectlog.Log
}

// New starts a fresh project: it creates the log (refusing to clobber
// an existing one), echoes the configuration into its header, and runs
// the evidence load. A failed load removes the just-created log so no
// partial project is left behind.
func New(conf *config.Config) (*Session, error) {
	l, err := projectlog.Create(conf.Log, conf.Header())
	if err != nil {
		return nil, err
	}

	store := curation.NewStore(taxonomy.New())
	if err = evidence.Load(sources(conf), store); err != nil {
		l.Close()
		os.Remove(conf.Log)
		return nil, err
	}

	return &Session{Conf: conf, Store: store, Log: l}, nil
}

// Resume reopens an existing project: the log is replayed and folded
// into a fresh store before the evidence load re-runs, so curated
// labels and flags survive and evidence fields are re-derived.
func Resume(conf *config.Config) (*Session, error) {
	l, err := projectlog.Open(conf.Log)
	if err != nil {
		return nil, err
	}

	entries, err := projectlog.ReplayFile(conf.Log)
	if err != nil {
		l.Close()
		return nil, err
	}

	store := curation.NewStore(taxonomy.New())
	for id, e := range projectlog.Fold(entries) {
		store.ApplyLogged(id, e.Exclude, e.Reverse, e.Label)
	}

	if err = evidence.Load(sources(conf), store); err != nil {
		l.Close()
		return nil, err
	}

	return &Session{Conf: conf, Store: store, Log: l}, nil
}

// ApplyIntent validates and applies one curation intent, then appends
// the accepted change to the project log before acknowledging. A change
// that cannot be logged is rolled back: in-memory state only ever holds
// decisions the log holds too.
func (s *Session) ApplyIntent(id string, in curation.Intent) (curation.Change, error) {
	rec, err := s.Store.Get(id)
	if err != nil {
		return curation.Change{}, err
	}
	snapshot := *rec

	change, err := s.Store.Apply(id, in)
	if err != nil {
		return curation.Change{}, err
	}

	err = s.Log.Append(projectlog.Entry{
		ID:      change.ID,
		Exclude: change.Exclude,
		Reverse: change.Reverse,
		Label:   change.Label,
	})
	if err != nil {
		*rec = snapshot
		return curation.Change{}, fmt.Errorf("change not persisted, discarding it: %w", err)
	}

	return change, nil
}

// ListGroups returns the taxonomy display groups in order and the ids
// bucketed under each.
func (s *Session) ListGroups() ([]string, map[string][]string) {
	return s.Store.GroupedByClass()
}

// Record returns the full record for id.
func (s *Session) Record(id string) (*curation.SequenceRecord, error) {
	return s.Store.Get(id)
}

// ExportAll writes the kept and excluded FASTA outputs.
func (s *Session) ExportAll() error {
	return export.Export(s.Store, s.Conf.Keep, s.Conf.Excluded)
}

// Reviewed counts the records with at least one logged decision.
func (s *Session) Reviewed() int {
	count := 0
	for _, id := range s.Store.IDs() {
		if rec, err := s.Store.Get(id); err == nil && rec.Reviewed {
			count++
		}
	}
	return count
}

// Close releases the project log.
func (s *Session) Close() error {
	return s.Log.Close()
}

func sources(conf *config.Config) evidence.Sources {
	return evidence.Sources{
		Consensi:      conf.Consensi,
		SelfAlign:     conf.SelfAlign,
		RefAlign:      conf.RefAlign,
		PeptideRepeat: conf.PeptideRepeat,
		PeptideNR:     conf.PeptideNR,
		FoldDir:       conf.FoldDir,
	}
}
