package curation

import "strings"

// Labels are the single canonical encoding of a record's identity,
// class, ambiguity marker, and free-text annotation:
//
//	id#class[?] freeText
//
// The same format appears in consensi FASTA headers, project log
// entries, and exported FASTA, so parse and format must round-trip.

// FormatLabel builds the canonical label. The "?" ambiguity marker is
// appended to the class exactly once.
func FormatLabel(id, class string, ambiguous bool, note string) string {
	var sb strings.Builder
	sb.WriteString(id)
	sb.WriteByte('#')
	sb.WriteString(strings.TrimSuffix(class, "?"))
	if ambiguous {
		sb.WriteByte('?')
	}
	if note != "" {
		sb.WriteByte(' ')
		sb.WriteString(note)
	}
	return sb.String()
}

// ParseLabel splits a canonical label (or a raw FASTA header, which has
// the same shape) into its parts. A label without "#" has no class; the
// caller substitutes the unclassified sentinel.
func ParseLabel(label string) (id, class string, ambiguous bool, note string) {
	label = strings.TrimSpace(label)

	head := label
	if i := strings.IndexByte(label, ' '); i >= 0 {
		head, note = label[:i], strings.TrimSpace(label[i+1:])
	}

	id = head
	if i := strings.IndexByte(head, '#'); i >= 0 {
		id, class = head[:i], head[i+1:]
	}

	if strings.HasSuffix(class, "?") {
		class = strings.TrimSuffix(class, "?")
		ambiguous = true
	}

	return id, class, ambiguous, note
}
