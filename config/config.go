// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in repeatmatcher.yaml and those available from the command
// line. All evidence paths except the consensi FASTA are optional.
type Config struct {
	// path to the consensi FASTA (the only required input)
	Consensi string `mapstructure:"consensi"`

	// path to the cross_match self-comparison report
	SelfAlign string `mapstructure:"self"`

	// path to the cross_match alignment report against the reference repeat library
	RefAlign string `mapstructure:"align"`

	// path to the BLASTX report against the repeat-peptide database
	PeptideRepeat string `mapstructure:"blastx"`

	// path to the BLASTX report against NR
	PeptideNR string `mapstructure:"nr"`

	// directory of "<id>.png" secondary-structure images
	FoldDir string `mapstructure:"fold"`

	// path to the project log of curation decisions
	Log string `mapstructure:"log"`

	// output FASTA of kept consensi
	Keep string `mapstructure:"keep"`

	// output FASTA of excluded consensi
	Excluded string `mapstructure:"excluded"`

	// verbose toggles debug logging
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config populated by Viper settings (either from a
// local repeatmatcher.yaml or command line arguments), with the
// output and log paths defaulted from the consensi path.
func New() *Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	if c.Log == "" {
		c.Log = "repeatmatcher.log"
	}
	if c.Keep == "" {
		c.Keep = deriveOutput(c.Consensi, "curated")
	}
	if c.Excluded == "" {
		c.Excluded = deriveOutput(c.Consensi, "excluded")
	}

	return &c
}

// Validate checks the one required input.
func (c *Config) Validate() error {
	if c.Consensi == "" {
		return fmt.Errorf("no consensi FASTA specified [-c]")
	}
	return nil
}

// Header returns the key: value map echoed into a new project log so
// the file records the inputs it was curated against.
func (c *Config) Header() map[string]string {
	return map[string]string{
		"consensi": c.Consensi,
		"self":     c.SelfAlign,
		"align":    c.RefAlign,
		"blastx":   c.PeptideRepeat,
		"nr":       c.PeptideNR,
		"fold":     c.FoldDir,
		"keep":     c.Keep,
		"excluded": c.Excluded,
		"verbose":  strconv.FormatBool(c.Verbose),
	}
}

// deriveOutput builds "<base>.<tag>.fa" next to the consensi input.
func deriveOutput(consensi, tag string) string {
	if consensi == "" {
		return tag + ".fa"
	}

	ext := filepath.Ext(consensi)
	return strings.TrimSuffix(consensi, ext) + "." + tag + ".fa"
}
