// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline holds the table of contents for the book and turns it
// into a PDF outline (bookmark) tree.
package outline

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/pdiddy/bookbinder/pkg/types"
)

// Count returns the total number of entries in the tree.
func Count(entries []types.OutlineEntry) int {
	n := 0
	for _, e := range entries {
		n += e.Count()
	}
	return n
}

// MaxPage returns the largest target page across the tree, or 0 for an
// empty tree.
func MaxPage(entries []types.OutlineEntry) int {
	max := 0
	for _, e := range entries {
		if m := e.MaxPage(); m > max {
			max = m
		}
	}
	return max
}

// Validate checks every entry in the tree against the document's page
// count. It runs before any document mutation, so a table that no longer
// matches the document (a re-paginated edition) fails the run without
// producing output.
func Validate(entries []types.OutlineEntry, pageCount int) error {
	for _, e := range entries {
		if e.Title == "" {
			return fmt.Errorf("outline entry targeting page %d has no title", e.Page)
		}
		if e.Page < 1 {
			return fmt.Errorf("outline entry %q targets page %d, pages are numbered from 1", e.Title, e.Page)
		}
		if e.Page > pageCount {
			return fmt.Errorf("outline entry %q targets page %d beyond document end (%d pages)", e.Title, e.Page, pageCount)
		}
		if err := Validate(e.Kids, pageCount); err != nil {
			return err
		}
	}
	return nil
}

// Bookmarks converts the tree into pdfcpu bookmarks, preserving titles,
// target pages, and nesting order.
func Bookmarks(entries []types.OutlineEntry) []pdfcpu.Bookmark {
	bms := make([]pdfcpu.Bookmark, 0, len(entries))
	for _, e := range entries {
		bm := pdfcpu.Bookmark{
			Title:    e.Title,
			PageFrom: e.Page,
		}
		if len(e.Kids) > 0 {
			bm.Kids = Bookmarks(e.Kids)
		}
		bms = append(bms, bm)
	}
	return bms
}

// FromBookmarks converts pdfcpu bookmarks read from a document back into
// outline entries, for inspection.
func FromBookmarks(bms []pdfcpu.Bookmark) []types.OutlineEntry {
	if len(bms) == 0 {
		return nil
	}
	entries := make([]types.OutlineEntry, 0, len(bms))
	for _, bm := range bms {
		entries = append(entries, types.OutlineEntry{
			Title: bm.Title,
			Page:  bm.PageFrom,
			Kids:  FromBookmarks(bm.Kids),
		})
	}
	return entries
}
