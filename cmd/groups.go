package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/internal/repeatmatcher"
)

// groupsCmd lists consensi bucketed by taxonomy group.
var groupsCmd = &cobra.Command{
	Use:                        "groups",
	Short:                      "List consensi grouped by repeat taxonomy",
	Run:                        repeatmatcher.GroupsCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"ls", "list"},
}

func init() {
	groupsCmd.Flags().Bool("all", false, "include empty taxonomy groups")

	RootCmd.AddCommand(groupsCmd)
}
