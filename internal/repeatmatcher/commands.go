package repeatmatcher

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Arielyuan/RepeatMatcher/config"
	"github.com/Arielyuan/RepeatMatcher/internal/curation"
)

// NewProjectCmd starts a fresh curation project from the configured
// evidence files.
func NewProjectCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		cmd.Help()
		log.Fatal(err)
	}

	s, err := New(conf)
	if err != nil {
		log.Fatalf("failed to start project: %v", err)
	}
	defer s.Close()

	log.Infof("started project %s with %d consensi", conf.Log, s.Store.Len())
}

// ResumeProjectCmd reopens a project and reports its progress.
func ResumeProjectCmd(cmd *cobra.Command, args []string) {
	s := resume(cmd)
	defer s.Close()

	log.Infof("resumed project %s: %d of %d consensi reviewed",
		s.Conf.Log, s.Reviewed(), s.Store.Len())
}

// AnnotateCmd applies one curation decision to the id in args.
func AnnotateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		log.Fatal("no sequence id passed")
	}
	id := args[0]

	in := curation.Intent{}
	if cmd.Flags().Changed("class") {
		v, _ := cmd.Flags().GetString("class")
		in.Class = &v
	}
	if cmd.Flags().Changed("note") {
		v, _ := cmd.Flags().GetString("note")
		in.Note = &v
	}
	if cmd.Flags().Changed("reverse") {
		v, _ := cmd.Flags().GetBool("reverse")
		in.Reverse = &v
	}
	if cmd.Flags().Changed("exclude") {
		v, _ := cmd.Flags().GetBool("exclude")
		in.Exclude = &v
	}
	if cmd.Flags().Changed("ambiguous") {
		v, _ := cmd.Flags().GetBool("ambiguous")
		in.Ambiguous = &v
	}

	s := resume(cmd)
	defer s.Close()

	change, err := s.ApplyIntent(id, in)
	if err != nil {
		log.Fatalf("failed to annotate %s: %v", id, err)
	}

	rec, _ := s.Record(id)
	fmt.Printf("%s\texclude=%v\treverse=%v\n", rec.CurrentLabel, change.Exclude, change.Reverse)
}

// ShowCmd prints one record with its accumulated evidence.
func ShowCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		log.Fatal("no sequence id passed")
	}

	s := resume(cmd)
	defer s.Close()

	rec, err := s.Record(args[0])
	if err != nil {
		log.Fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "label\t%s\n", rec.CurrentLabel)
	fmt.Fprintf(w, "original\t%s\n", rec.OriginalLabel)
	fmt.Fprintf(w, "class\t%s (%s)\n", rec.Class, s.Store.Taxonomy().Classify(rec.Class))
	fmt.Fprintf(w, "length\t%d\n", len(strings.Join(strings.Fields(rec.Seq), "")))
	fmt.Fprintf(w, "reviewed\t%v\n", rec.Reviewed)
	fmt.Fprintf(w, "exclude\t%v\n", rec.Exclude)
	fmt.Fprintf(w, "reverse\t%v\n", rec.Reverse)
	fmt.Fprintf(w, "fold image\t%s\n", orNone(rec.FoldImage))
	w.Flush()

	if len(rec.SelfAlignments) > 0 {
		fmt.Printf("\nself-alignments (%d):\n", len(rec.SelfAlignments))
		aw := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintf(aw, "start\tend\tpartner\tpstart\tpend\torient\t\n")
		for _, h := range rec.SelfAlignments {
			orient := "+"
			if h.Complement {
				orient = "C"
			}
			fmt.Fprintf(aw, "%d\t%d\t%s\t%d\t%d\t%s\n",
				h.Start, h.End, h.Partner, h.PartnerStart, h.PartnerEnd, orient)
		}
		aw.Flush()
	}

	printBlock("reference alignments", rec.RefAlignment)
	printBlock("repeat-peptide hits", rec.PeptideRepeatHits)
	printBlock("NR hits", rec.PeptideNRHits)
}

// GroupsCmd lists every taxonomy group with its member ids.
func GroupsCmd(cmd *cobra.Command, args []string) {
	s := resume(cmd)
	defer s.Close()

	all, _ := cmd.Flags().GetBool("all")

	groups, byGroup := s.ListGroups()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "group\tcount\tids\t\n")
	for _, g := range groups {
		ids := byGroup[g]
		if len(ids) == 0 && !all {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", g, len(ids), strings.Join(ids, ","))
	}
	w.Flush()
}

// ExportCmd writes the final kept and excluded FASTA files.
func ExportCmd(cmd *cobra.Command, args []string) {
	s := resume(cmd)
	defer s.Close()

	if err := s.ExportAll(); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Infof("wrote %s and %s", s.Conf.Keep, s.Conf.Excluded)
}

// resume opens the configured project or dies with a one-line message.
func resume(cmd *cobra.Command) *Session {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		cmd.Help()
		log.Fatal(err)
	}

	s, err := Resume(conf)
	if err != nil {
		log.Fatalf("failed to resume project: %v", err)
	}
	return s
}

func printBlock(title, text string) {
	if text == "" {
		return
	}
	fmt.Printf("\n%s:\n%s\n", title, text)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
