package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/internal/repeatmatcher"
)

// newCmd starts a fresh curation project from the evidence files.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new curation project from the evidence files",
	Long: `Start a new curation project.

Loads the consensi FASTA and every configured evidence source, then creates
the project log that will record curation decisions. Fails if a project log
already exists at the log path; use "resume" to continue one.`,
	Run:                        repeatmatcher.NewProjectCmd,
	SuggestionsMinimumDistance: 2,
}

func init() {
	RootCmd.AddCommand(newCmd)
}
