// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for bookbinder: outline
// entries, page-label ranges, and tool configuration.
package types

// OutlineEntry is one node of a PDF outline (bookmark) tree. Sibling order
// is reading order; entries are built once and never mutated afterwards.
type OutlineEntry struct {
	// Title is the text shown in the viewer's navigation sidebar.
	Title string `json:"title" yaml:"title"`

	// Page is the 1-based physical page the entry jumps to.
	Page int `json:"page" yaml:"page"`

	// Kids are the entries nested beneath this one (sections under a
	// chapter, chapters under a part).
	Kids []OutlineEntry `json:"kids,omitempty" yaml:"kids,omitempty"`
}

// Count returns the number of entries in the subtree rooted at e,
// including e itself.
func (e OutlineEntry) Count() int {
	n := 1
	for _, k := range e.Kids {
		n += k.Count()
	}
	return n
}

// MaxPage returns the largest target page in the subtree rooted at e.
func (e OutlineEntry) MaxPage() int {
	max := e.Page
	for _, k := range e.Kids {
		if m := k.MaxPage(); m > max {
			max = m
		}
	}
	return max
}
