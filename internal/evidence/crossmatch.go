package evidence

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Arielyuan/RepeatMatcher/internal/curation"
)

// cross_match report rows, whitespace-delimited:
//
//	score sub del ins qid qbeg qend (qleft) tid tbeg tend (tleft)
//	score sub del ins qid qbeg qend (qleft) C tid (tleft) tend tbeg
//
// The "C" in column 9 marks a complemented target, whose coordinates
// are then listed high-to-low. A row is a data row when it starts with
// two integers; everything else is alignment body or banner text.

// span is one participant's half of an alignment, parsed to typed
// fields so whitespace differences in the source can never split a
// dedup key.
type span struct {
	name  string
	start int
	end   int
}

func (a span) less(b span) bool {
	if a.name != b.name {
		return a.name < b.name
	}
	if a.start != b.start {
		return a.start < b.start
	}
	return a.end < b.end
}

// pairKey identifies one unordered alignment pair with orientation.
type pairKey struct {
	a, b       span
	complement bool
}

func newPairKey(a, b span, complement bool) pairKey {
	if b.less(a) {
		a, b = b, a
	}
	return pairKey{a: a, b: b, complement: complement}
}

// readSelfAlignments parses the self-comparison report. Every accepted
// row is recorded under both participants with roles swapped, and a
// seen-set over canonical span pairs drops repeats, including the same
// alignment re-reported from the partner's perspective.
func readSelfAlignments(r io.Reader, store *curation.Store) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	seen := make(map[pairKey]bool)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if !isScoreRow(fields) {
			continue
		}

		query, partner, complement, ok := parseSelfRow(fields)
		if !ok {
			log.Debugf("unparsable self-alignment row: %q", strings.Join(fields, " "))
			continue
		}

		key := newPairKey(query, partner, complement)
		if seen[key] {
			continue
		}
		seen[key] = true

		store.AddSelfAlignment(query.name, curation.SelfAlignment{
			Name:         query.name,
			Start:        query.start,
			End:          query.end,
			Partner:      partner.name,
			PartnerStart: partner.start,
			PartnerEnd:   partner.end,
			Complement:   complement,
		})

		// the mirrored entry, unless the row is its own mirror
		if query != partner {
			store.AddSelfAlignment(partner.name, curation.SelfAlignment{
				Name:         partner.name,
				Start:        partner.start,
				End:          partner.end,
				Partner:      query.name,
				PartnerStart: query.start,
				PartnerEnd:   query.end,
				Complement:   complement,
			})
		}
	}

	return scanner.Err()
}

// parseSelfRow extracts both participants from a score row.
func parseSelfRow(fields []string) (query, partner span, complement bool, ok bool) {
	if len(fields) < 11 {
		return query, partner, false, false
	}

	query.name = stripClass(fields[4])
	var err error
	if query.start, err = strconv.Atoi(fields[5]); err != nil {
		return query, partner, false, false
	}
	if query.end, err = strconv.Atoi(fields[6]); err != nil {
		return query, partner, false, false
	}

	if fields[8] == "C" {
		// complemented partner: id, (left), end, start
		if len(fields) < 13 {
			return query, partner, false, false
		}
		partner.name = stripClass(fields[9])
		if partner.end, err = strconv.Atoi(fields[11]); err != nil {
			return query, partner, false, false
		}
		if partner.start, err = strconv.Atoi(fields[12]); err != nil {
			return query, partner, false, false
		}
		return query, partner, true, true
	}

	partner.name = stripClass(fields[8])
	if partner.start, err = strconv.Atoi(fields[9]); err != nil {
		return query, partner, false, false
	}
	if partner.end, err = strconv.Atoi(fields[10]); err != nil {
		return query, partner, false, false
	}
	return query, partner, false, true
}

// readRefAlignments parses the reference-alignment report. A score row
// switches the active identifier (column 5, class tag stripped); the
// row and every following non-data line are appended verbatim to that
// identifier's block.
func readRefAlignments(r io.Reader, store *curation.Store) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	active := ""
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)

		if isScoreRow(fields) && len(fields) > 4 {
			active = stripClass(fields[4])
			store.AppendRefAlignment(active, line+"\n")
			continue
		}

		if active == "" {
			continue // banner text before the first score row
		}
		store.AppendRefAlignment(active, line+"\n")
	}

	return scanner.Err()
}
