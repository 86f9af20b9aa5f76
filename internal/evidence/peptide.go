package evidence

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NoHits is the sentinel stored when a peptide search found nothing
// for a query.
const NoHits = "No hits found"

// readPeptideHits segments a BLASTX report into per-query blocks and
// records each through record (one of the store's peptide setters).
// Blocks start at a "BLASTX" line; the query id comes from the
// "Query=" line with its class tag stripped. Header and trailer
// boilerplate is trimmed so only the hit lines are kept.
func readPeptideHits(r io.Reader, record func(id, text string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var block []string
	flush := func() {
		if len(block) > 0 {
			recordPeptideBlock(block, record)
		}
		block = block[:0]
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "BLASTX") {
			flush()
		}
		block = append(block, line)
	}
	flush()

	return scanner.Err()
}

// recordPeptideBlock extracts the query id and hit text of one block.
func recordPeptideBlock(block []string, record func(id, text string)) {
	id := ""
	queryLine := -1
	for i, line := range block {
		if strings.HasPrefix(line, "Query=") {
			raw := strings.TrimSpace(strings.TrimPrefix(line, "Query="))
			if fields := strings.Fields(raw); len(fields) > 0 {
				id = stripClass(fields[0])
			}
			queryLine = i
			break
		}
	}
	if id == "" {
		log.Debugf("peptide search block without a Query= line, skipped")
		return
	}

	for _, line := range block {
		if strings.Contains(line, NoHits) {
			record(id, NoHits)
			return
		}
	}

	record(id, trimPeptideBlock(block[queryLine+1:]))
}

// trimPeptideBlock drops the boilerplate around the hit lines: the
// Length= echo before the alignments and the Lambda/Matrix/statistics
// trailer after them.
func trimPeptideBlock(lines []string) string {
	start := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Sequences producing significant alignments") ||
			strings.HasPrefix(trimmed, ">") {
			start = i
			break
		}
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "Lambda") ||
			strings.HasPrefix(trimmed, "Matrix:") ||
			strings.HasPrefix(trimmed, "Effective search space") ||
			strings.HasPrefix(trimmed, "Database:") {
			end = i
			break
		}
	}

	kept := lines[start:end]
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}

	return strings.Join(kept, "\n")
}
