package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/internal/repeatmatcher"
)

// resumeCmd reopens an interrupted project and reports its progress.
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume an interrupted curation project",
	Long: `Resume a curation project.

Replays the project log to rebuild every curation decision, re-derives the
evidence from the input files, and reports how many consensi have been
reviewed so far.`,
	Run:                        repeatmatcher.ResumeProjectCmd,
	SuggestionsMinimumDistance: 2,
}

func init() {
	RootCmd.AddCommand(resumeCmd)
}
