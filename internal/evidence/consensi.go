package evidence

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Arielyuan/RepeatMatcher/internal/curation"
	"github.com/Arielyuan/RepeatMatcher/internal/taxonomy"
)

// readConsensi parses the primary FASTA stream. Headers have the same
// shape as canonical labels (">id#class description" or
// ">id description", class defaulting to the unclassified sentinel).
// Body lines are kept with their line breaks so the curation display
// and the exporter see the sequence as it was modeled.
func readConsensi(r io.Reader, store *curation.Store) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header string
	var body []string
	count := 0

	flush := func() {
		if header == "" {
			return
		}
		id, class, ambiguous, note := curation.ParseLabel(header)
		if class == "" {
			class = taxonomy.Unclassified
		}
		store.SetSequence(id, header, class, ambiguous, note, strings.Join(body, "\n"))
		count++
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			header = strings.TrimSpace(line[1:])
			body = body[:0]
			continue
		}
		if header == "" {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return fmt.Errorf("sequence data before the first FASTA header: %q", line)
		}
		body = append(body, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no FASTA records found")
	}
	return nil
}
