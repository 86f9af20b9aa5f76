package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/internal/repeatmatcher"
)

// showCmd prints one consensus record with all its evidence.
var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a consensus with its accumulated evidence",
	Long: `Show one consensus record: its current label, flags, self-alignments,
reference alignments, and peptide search hits.`,
	Run:                        repeatmatcher.ShowCmd,
	SuggestionsMinimumDistance: 2,
}

func init() {
	RootCmd.AddCommand(showCmd)
}
