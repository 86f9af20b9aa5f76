// Package taxonomy holds the static repeat-class hierarchy used to
// validate and group curated class labels. The taxonomy is advisory:
// an unrecognized class is still accepted, it just groups under Other.
package taxonomy

import "strings"

// Unclassified is the sentinel class assigned to consensi whose FASTA
// header carried no "#class" tag.
const Unclassified = "Unknown"

// groups is the list of top-level display groups in presentation
// order: the DNA families first, then RC, the retrotransposon
// families, tandem repeats, the RNA families, and the catch-alls last.
var groups = []string{
	"DNA",
	"DNA/CMC",
	"DNA/hAT",
	"DNA/Merlin",
	"DNA/MULE",
	"DNA/P",
	"DNA/PIF-Harbinger",
	"DNA/PiggyBac",
	"DNA/TcMar",
	"RC",
	"RC/Helitron",
	"LINE",
	"LINE/CR1",
	"LINE/I",
	"LINE/L1",
	"LINE/L2",
	"LINE/Penelope",
	"LINE/R2",
	"LINE/RTE",
	"LTR",
	"LTR/Copia",
	"LTR/ERV",
	"LTR/Gypsy",
	"LTR/Pao",
	"SINE",
	"SINE/MIR",
	"SINE/tRNA",
	"Satellite",
	"Simple_repeat",
	"Low_complexity",
	"rRNA",
	"tRNA",
	"snRNA",
	"scRNA",
	"srpRNA",
	"Other",
	"Unknown",
}

// classes is the flat list of permitted class labels, beyond the group
// names themselves. RepeatMasker-style two-level names.
var classes = []string{
	"DNA/CMC-EnSpm",
	"DNA/CMC-Transib",
	"DNA/hAT-Ac",
	"DNA/hAT-Blackjack",
	"DNA/hAT-Charlie",
	"DNA/hAT-Tip100",
	"DNA/MULE-MuDR",
	"DNA/TcMar-Mariner",
	"DNA/TcMar-Pogo",
	"DNA/TcMar-Tc1",
	"DNA/TcMar-Tc2",
	"DNA/TcMar-Tigger",
	"LINE/L1-Tx1",
	"LINE/R2-Hero",
	"LINE/RTE-BovB",
	"LINE/RTE-RTE",
	"LTR/ERV1",
	"LTR/ERVK",
	"LTR/ERVL",
	"LTR/ERVL-MaLR",
	"SINE/5S",
	"SINE/7SL",
	"SINE/Alu",
	"SINE/tRNA-RTE",
}

// Index is the queryable taxonomy. The zero value is unusable; call New.
type Index struct {
	groups []string
	known  map[string]bool
}

// New builds the fixed taxonomy index.
func New() *Index {
	known := make(map[string]bool, len(groups)+len(classes))
	for _, g := range groups {
		known[g] = true
	}
	for _, c := range classes {
		known[c] = true
	}

	return &Index{groups: groups, known: known}
}

// Known reports whether class is in the permitted list. A trailing "?"
// (the ambiguous-classification marker) is ignored.
func (x *Index) Known(class string) bool {
	return x.known[strings.TrimSuffix(class, "?")]
}

// Classify maps a raw class label to its top-level display group using
// the longest matching prefix (DNA/hAT-Charlie groups under DNA/hAT
// before falling back to DNA). Unmatched non-empty labels group under
// Other; the empty label groups under the Unclassified sentinel.
func (x *Index) Classify(class string) string {
	class = strings.TrimSuffix(class, "?")
	if class == "" {
		return Unclassified
	}

	best := ""
	for _, g := range x.groups {
		if class == g || strings.HasPrefix(class, g+"/") || strings.HasPrefix(class, g+"-") {
			if len(g) > len(best) {
				best = g
			}
		}
	}
	if best == "" {
		return "Other"
	}
	return best
}

// Groups returns the display groups in presentation order, general
// groups before their subgroups (DNA before DNA/hAT).
func (x *Index) Groups() []string {
	ordered := make([]string, len(x.groups))
	copy(ordered, x.groups)
	return ordered
}
