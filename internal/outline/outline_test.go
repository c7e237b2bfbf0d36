// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"
	"testing"

	"github.com/pdiddy/bookbinder/pkg/types"
)

// flattenPages appends every target page in depth-first (reading) order.
func flattenPages(entries []types.OutlineEntry, pages *[]int) {
	for _, e := range entries {
		*pages = append(*pages, e.Page)
		flattenPages(e.Kids, pages)
	}
}

func TestBookTOC(t *testing.T) {
	toc := BookTOC()
	if len(toc) == 0 {
		t.Fatal("embedded table is empty")
	}

	// Reading order: depth-first page sequence must never go backwards.
	var pages []int
	flattenPages(toc, &pages)
	for i := 1; i < len(pages); i++ {
		if pages[i] < pages[i-1] {
			t.Errorf("page order regresses at position %d: %d after %d", i, pages[i], pages[i-1])
		}
	}

	if got, want := len(pages), Count(toc); got != want {
		t.Errorf("flattened %d pages, Count = %d", got, want)
	}

	if first := pages[0]; first < 1 {
		t.Errorf("first entry targets page %d", first)
	}
	if MaxPage(toc) != pages[len(pages)-1] {
		t.Errorf("MaxPage = %d, last page in reading order = %d", MaxPage(toc), pages[len(pages)-1])
	}

	// The Introduction anchors the Arabic page-label range.
	found := false
	for _, e := range toc {
		if e.Title == "Introduction" {
			found = true
			if e.Page != MainBodyStart() {
				t.Errorf("Introduction at page %d, MainBodyStart = %d", e.Page, MainBodyStart())
			}
		}
	}
	if !found {
		t.Error("table has no Introduction entry")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		entries   []types.OutlineEntry
		pageCount int
		errPart   string
	}{
		{
			name: "valid tree",
			entries: []types.OutlineEntry{
				{Title: "Preface", Page: 3},
				{Title: "Part I", Page: 10, Kids: []types.OutlineEntry{
					{Title: "Chapter 1", Page: 12},
				}},
			},
			pageCount: 20,
		},
		{
			name:      "page beyond document end",
			entries:   []types.OutlineEntry{{Title: "Index", Page: 30}},
			pageCount: 20,
			errPart:   "beyond document end",
		},
		{
			name: "nested page beyond document end",
			entries: []types.OutlineEntry{
				{Title: "Part I", Page: 10, Kids: []types.OutlineEntry{
					{Title: "Chapter 1", Page: 25},
				}},
			},
			pageCount: 20,
			errPart:   `"Chapter 1"`,
		},
		{
			name:      "page zero",
			entries:   []types.OutlineEntry{{Title: "Cover", Page: 0}},
			pageCount: 20,
			errPart:   "numbered from 1",
		},
		{
			name:      "missing title",
			entries:   []types.OutlineEntry{{Page: 5}},
			pageCount: 20,
			errPart:   "no title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entries, tt.pageCount)
			if tt.errPart == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not contain %q", err, tt.errPart)
			}
		})
	}
}

func TestBookTOCWithinKnownEdition(t *testing.T) {
	// The 2004 printing runs 382 physical pages. The embedded table must
	// validate against it.
	if err := Validate(BookTOC(), 382); err != nil {
		t.Fatalf("embedded table does not fit the known edition: %v", err)
	}

	// A shorter document (a re-paginated edition) must be rejected.
	if err := Validate(BookTOC(), 100); err == nil {
		t.Fatal("expected error for a 100-page document")
	}
}

func TestBookmarksRoundTrip(t *testing.T) {
	entries := []types.OutlineEntry{
		{Title: "Introduction", Page: 19},
		{Title: "Part I - Getting Started", Page: 23, Kids: []types.OutlineEntry{
			{Title: "Chapter 1 - A Little Simple Math", Page: 27, Kids: []types.OutlineEntry{
				{Title: "1.1 Propositional Logic", Page: 27},
			}},
		}},
	}

	bms := Bookmarks(entries)
	if len(bms) != 2 {
		t.Fatalf("got %d top-level bookmarks, want 2", len(bms))
	}
	if bms[0].Title != "Introduction" || bms[0].PageFrom != 19 {
		t.Errorf("bookmark 0 = %q p.%d", bms[0].Title, bms[0].PageFrom)
	}
	if len(bms[1].Kids) != 1 || len(bms[1].Kids[0].Kids) != 1 {
		t.Fatal("nesting not preserved")
	}
	if got := bms[1].Kids[0].Kids[0].Title; got != "1.1 Propositional Logic" {
		t.Errorf("deep bookmark title = %q", got)
	}

	back := FromBookmarks(bms)
	if Count(back) != Count(entries) {
		t.Errorf("round trip count = %d, want %d", Count(back), Count(entries))
	}
	if back[1].Kids[0].Kids[0].Page != 27 {
		t.Errorf("round trip deep page = %d", back[1].Kids[0].Kids[0].Page)
	}
}
