// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookbinder/internal/outline"
	"github.com/pdiddy/bookbinder/internal/rewrite"
	"github.com/pdiddy/bookbinder/pkg/types"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [book.pdf]",
	Short: "Write a copy of the book with outline and page labels",
	Long: `Rewrite opens the book PDF, inserts the bookmark tree from the embedded
table of contents, installs the two page-label ranges (Roman front matter,
Arabic main body), and writes the result to a new file next to the input.

The embedded table matches one specific edition of the book. If the target
pages no longer fit the document, the run fails before writing anything.
Use --toc to supply an edited table-of-contents document instead
(see "bookbinder toc dump").`,
	Args: cobra.ExactArgs(1),
	RunE: runRewrite,
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg := rewriteConfig(cmd)

	opts := rewrite.Options{
		Output: cfg.Output,
		Suffix: cfg.Suffix,
	}
	if cfg.TOCFile != "" {
		tf, err := outline.ReadTOCFile(cfg.TOCFile)
		if err != nil {
			return err
		}
		opts.TOC = tf.Entries
		opts.MainBodyStart = tf.MainBodyStart
	}

	_, err := rewrite.Rewrite(opts, args[0], os.Stdout)
	return err
}

// rewriteConfig merges flag values over config-file/env values.
func rewriteConfig(cmd *cobra.Command) types.RewriteConfig {
	cfg := types.RewriteConfig{
		Output:  viper.GetString("output"),
		Suffix:  viper.GetString("suffix"),
		TOCFile: viper.GetString("toc_file"),
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output = v
	}
	if v, _ := cmd.Flags().GetString("suffix"); v != "" {
		cfg.Suffix = v
	}
	if v, _ := cmd.Flags().GetString("toc"); v != "" {
		cfg.TOCFile = v
	}
	if cfg.Suffix == "" {
		cfg.Suffix = types.DefaultSuffix
	}
	return cfg
}

func init() {
	rewriteCmd.Flags().String("output", "", "output path (default: input path with suffix)")
	rewriteCmd.Flags().String("suffix", "", "suffix for the derived output name (default \"-bookmarked\")")
	rewriteCmd.Flags().String("toc", "", "YAML table-of-contents document to use instead of the embedded table")

	rootCmd.AddCommand(rewriteCmd)
}
