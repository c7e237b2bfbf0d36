// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/pdiddy/bookbinder/internal/outline"
	"github.com/pdiddy/bookbinder/internal/pagelabel"
	"github.com/pdiddy/bookbinder/pkg/types"
)

// Summary describes the navigation metadata of an existing document. It
// is how the operator checks a rewrite did what it should.
type Summary struct {
	Path      string
	PageCount int
	Outline   []types.OutlineEntry
	Labels    []types.LabelRange
}

// OutlineCount returns the number of outline entries in the document.
func (s *Summary) OutlineCount() int {
	return outline.Count(s.Outline)
}

// Inspect reads the document at path and reports its page count, outline
// tree, and page-label ranges.
func Inspect(path string) (*Summary, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	s := &Summary{Path: path, PageCount: ctx.PageCount}

	// The book ships without an outline; pdfcpu reports that as an
	// error, which for inspection just means an empty tree.
	if bms, err := pdfcpu.Bookmarks(ctx); err == nil {
		s.Outline = outline.FromBookmarks(bms)
	}

	labels, err := pagelabel.Read(ctx)
	if err != nil {
		return nil, err
	}
	s.Labels = labels

	return s, nil
}
