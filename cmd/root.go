// Package cmd is for command line interactions with the RepeatMatcher
// application
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "repeatmatcher",
	Short: `Curate automatically generated repeat consensi.
Aggregates self-alignment, reference-alignment, peptide-search and folding
evidence per consensus and records curation decisions in a resumable log`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)

	RootCmd.PersistentFlags().StringP("consensi", "c", "", "path to the consensi FASTA (required)")
	RootCmd.PersistentFlags().StringP("self", "s", "", "path to the self-comparison cross_match report")
	RootCmd.PersistentFlags().StringP("align", "a", "", "path to the reference-library cross_match report")
	RootCmd.PersistentFlags().StringP("blastx", "b", "", "path to the repeat-peptide BLASTX report")
	RootCmd.PersistentFlags().StringP("nr", "n", "", "path to the NR BLASTX report")
	RootCmd.PersistentFlags().StringP("fold", "f", "", "directory of <id>.png secondary-structure images")
	RootCmd.PersistentFlags().StringP("log", "l", "", "path to the project log (default repeatmatcher.log)")
	RootCmd.PersistentFlags().StringP("keep", "k", "", "output FASTA of kept consensi")
	RootCmd.PersistentFlags().StringP("excluded", "x", "", "output FASTA of excluded consensi")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug diagnostics")

	viper.BindPFlag("consensi", RootCmd.PersistentFlags().Lookup("consensi"))
	viper.BindPFlag("self", RootCmd.PersistentFlags().Lookup("self"))
	viper.BindPFlag("align", RootCmd.PersistentFlags().Lookup("align"))
	viper.BindPFlag("blastx", RootCmd.PersistentFlags().Lookup("blastx"))
	viper.BindPFlag("nr", RootCmd.PersistentFlags().Lookup("nr"))
	viper.BindPFlag("fold", RootCmd.PersistentFlags().Lookup("fold"))
	viper.BindPFlag("log", RootCmd.PersistentFlags().Lookup("log"))
	viper.BindPFlag("keep", RootCmd.PersistentFlags().Lookup("keep"))
	viper.BindPFlag("excluded", RootCmd.PersistentFlags().Lookup("excluded"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initSettings reads an optional repeatmatcher.yaml from the working
// directory so evidence paths don't need re-typing on every command.
func initSettings() {
	viper.SetConfigName("repeatmatcher")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using settings from %s", viper.ConfigFileUsed())
	}
}
