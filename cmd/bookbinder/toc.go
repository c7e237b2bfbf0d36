// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookbinder/internal/outline"
)

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Work with the embedded table of contents",
}

var tocDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the embedded table of contents as a YAML document",
	Long: `Dump writes the embedded table of contents to a YAML file. Edit it to
adjust titles or page offsets, then feed it back with "rewrite --toc".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		if err := outline.WriteTOCFile(out); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d entries)\n", out, outline.Count(outline.BookTOC()))
		return nil
	},
}

func init() {
	tocDumpCmd.Flags().StringP("output", "o", "toc.yaml", "destination for the TOC document")

	tocCmd.AddCommand(tocDumpCmd)
	rootCmd.AddCommand(tocCmd)
}
