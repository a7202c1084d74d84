package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtlist/causelist"
	"github.com/courtlist/causelist/index"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "causelist",
		Short: "Court cause-list extractor",
		Long: `Causelist extracts case entries from court daily cause lists and
answers court/serial lookups against them.

Inputs are MuPDF structured-text JSON or HTML cause lists. Convert a PDF
list first:

  mutool convert -F stext.json -o list.json list.pdf`,
		Version: version,
	}

	rootCmd.AddCommand(dumpCmd())
	rootCmd.AddCommand(lookupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <list-file>",
		Short: "Print every extracted case entry",
		Long: `Parse a cause list and print every complete entry, ordered by court
number and then serial number.

Example:
  causelist dump list.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := causelist.Open(args[0]).Index()
			if err != nil {
				return err
			}

			for _, key := range idx.SortedKeys() {
				if e, ok := idx.Lookup(key); ok {
					fmt.Fprintln(cmd.OutOrStdout(), index.Format(e))
				}
			}
			return nil
		},
	}
}

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <list-file>",
		Short: "Look up cases by court/serial reference",
		Long: `Parse a cause list and resolve court/serial references against it.
References take the form <court>/<serial>, for example 14/115.30, and are
separated by commas or newlines.

Example:
  causelist lookup list.json --refs "2/15,14/115.30"
  causelist lookup list.json --refs-file queries.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, _ := cmd.Flags().GetString("refs")
			refsFile, _ := cmd.Flags().GetString("refs-file")

			if refsFile != "" {
				data, err := os.ReadFile(refsFile)
				if err != nil {
					return fmt.Errorf("failed to read references: %w", err)
				}
				if refs != "" {
					refs += "\n"
				}
				refs += string(data)
			}

			parsed := index.ParseRefs(refs)
			if len(parsed) == 0 {
				return fmt.Errorf("no references given: use --refs or --refs-file")
			}

			idx, err := causelist.Open(args[0]).Index()
			if err != nil {
				return err
			}

			// A miss is an answer, not a failure: the NOT FOUND line is the
			// result for that reference.
			out := cmd.OutOrStdout()
			for _, ref := range parsed {
				if e, ok := idx.Lookup(ref); ok {
					fmt.Fprintln(out, index.Format(e))
				} else {
					fmt.Fprintf(out, "%s - NOT FOUND\n", ref)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("refs", "", "comma or newline separated court/serial references")
	cmd.Flags().String("refs-file", "", "file containing court/serial references")
	return cmd
}
