package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/internal/repeatmatcher"
)

// annotateCmd records one curation decision for a consensus.
var annotateCmd = &cobra.Command{
	Use:   "annotate [id]",
	Short: "Record a curation decision for one consensus",
	Long: `Record a curation decision.

Updates the class, annotation note, and exclude/reverse/ambiguous flags of
one consensus and appends the accepted decision to the project log. An
unrecognized class is saved with a warning; the taxonomy is advisory.`,
	Example:                    "  repeatmatcher annotate rnd-1_family-12 --class LINE/L1 --note 'full length'",
	Run:                        repeatmatcher.AnnotateCmd,
	SuggestionsMinimumDistance: 2,
}

func init() {
	annotateCmd.Flags().String("class", "", "new taxonomy class for the consensus")
	annotateCmd.Flags().String("note", "", "new free-text annotation")
	annotateCmd.Flags().Bool("reverse", false, "reverse-complement the consensus on export")
	annotateCmd.Flags().Bool("exclude", false, "exclude the consensus from the kept output")
	annotateCmd.Flags().Bool("ambiguous", false, "mark the classification ambiguous (trailing ?)")

	RootCmd.AddCommand(annotateCmd)
}
