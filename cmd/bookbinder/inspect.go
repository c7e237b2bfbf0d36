// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookbinder/internal/pagelabel"
	"github.com/pdiddy/bookbinder/internal/rewrite"
	"github.com/pdiddy/bookbinder/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.pdf]",
	Short: "Print a document's outline and page-label ranges",
	Long: `Inspect reads a PDF and prints its page count, outline tree, and
page-label ranges. Run it on a rewrite's output to verify the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := rewrite.Inspect(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d pages\n", s.Path, s.PageCount)

	if len(s.Labels) == 0 {
		fmt.Println("\nNo page labels.")
	} else {
		fmt.Printf("\nPage labels (%d ranges):\n", len(s.Labels))
		for i, r := range s.Labels {
			fmt.Printf("  from page %-4d %s (first number %d, %d pages)",
				r.Start, r.Style, r.First, pagelabel.Length(s.Labels, i, s.PageCount))
			if r.Prefix != "" {
				fmt.Printf(" prefix %q", r.Prefix)
			}
			fmt.Println()
		}
	}

	if len(s.Outline) == 0 {
		fmt.Println("\nNo outline.")
		return nil
	}
	fmt.Printf("\nOutline (%d entries):\n", s.OutlineCount())
	printEntries(s.Outline, 1)
	return nil
}

func printEntries(entries []types.OutlineEntry, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%s%-60s p.%d\n", indent, e.Title, e.Page)
		printEntries(e.Kids, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
