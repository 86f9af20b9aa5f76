package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/internal/repeatmatcher"
)

// exportCmd writes the final kept and excluded FASTA outputs.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the kept and excluded FASTA files",
	Long: `Export the curation results.

Every consensus goes to the kept output unless its exclude flag is set, in
which case it goes to the excluded output. Reverse-flagged consensi are
reverse-complemented. Both files are written atomically: a failure leaves
neither behind.`,
	Run:                        repeatmatcher.ExportCmd,
	SuggestionsMinimumDistance: 2,
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
