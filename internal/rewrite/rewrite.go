// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite produces a copy of the book PDF with an outline tree
// and front-matter/main-body page labels. One input file in, one output
// file out; the input is never modified.
package rewrite

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/pdiddy/bookbinder/internal/outline"
	"github.com/pdiddy/bookbinder/internal/pagelabel"
	"github.com/pdiddy/bookbinder/pkg/types"
)

// Options configures a rewrite run. The zero value uses the embedded
// table of contents and derives the output path from the input path.
type Options struct {
	// Output is an explicit output path. Empty means derive from the
	// input path using Suffix.
	Output string

	// Suffix names the derived output next to the input
	// (book.pdf -> book<Suffix>.pdf). Empty means types.DefaultSuffix.
	Suffix string

	// TOC replaces the embedded table of contents.
	TOC []types.OutlineEntry

	// MainBodyStart is the physical page where Arabic numbering begins.
	// Zero means the embedded table's Introduction page. Must be set
	// alongside TOC.
	MainBodyStart int
}

// toc returns the effective table and main-body start page.
func (o Options) toc() ([]types.OutlineEntry, int) {
	if o.TOC != nil {
		return o.TOC, o.MainBodyStart
	}
	return outline.BookTOC(), outline.MainBodyStart()
}

// DeriveOutputPath returns the output path for input: Output if set,
// otherwise the input path with suffix inserted before the extension.
func (o Options) DeriveOutputPath(input string) string {
	if o.Output != "" {
		return o.Output
	}
	suffix := o.Suffix
	if suffix == "" {
		suffix = types.DefaultSuffix
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

// Rewrite opens the document at input, inserts the outline tree, installs
// the two page-label ranges, and writes the result. It returns the output
// path. Progress lines go to w. Validation precedes all mutation, so a
// failed run never leaves an output file behind.
func Rewrite(opts Options, input string, w io.Writer) (string, error) {
	ctx, err := api.ReadContextFile(input)
	if err != nil {
		return "", &OpenError{Path: input, Err: err}
	}
	if err := api.ValidateContext(ctx); err != nil {
		return "", &OpenError{Path: input, Err: err}
	}
	fmt.Fprintf(w, "opened:  %s (%d pages)\n", input, ctx.PageCount)

	toc, mainBodyStart := opts.toc()

	if err := outline.Validate(toc, ctx.PageCount); err != nil {
		return "", &OutlineError{Err: err}
	}
	ranges := pagelabel.Build(mainBodyStart)
	if err := pagelabel.Validate(ranges, ctx.PageCount); err != nil {
		return "", &OutlineError{Err: err}
	}

	if err := pdfcpu.AddBookmarks(ctx, outline.Bookmarks(toc), true); err != nil {
		return "", &OutlineError{Err: err}
	}
	fmt.Fprintf(w, "outline: %d entries\n", outline.Count(toc))

	if err := pagelabel.Apply(ctx, ranges); err != nil {
		return "", &OutlineError{Err: err}
	}
	for i, r := range ranges {
		fmt.Fprintf(w, "labels:  %s from page %d (%d pages)\n",
			r.Style, r.Start, pagelabel.Length(ranges, i, ctx.PageCount))
	}

	output := opts.DeriveOutputPath(input)
	if err := api.WriteContextFile(ctx, output); err != nil {
		return "", &WriteError{Path: output, Err: err}
	}
	fmt.Fprintf(w, "wrote:   %s\n", output)
	return output, nil
}
