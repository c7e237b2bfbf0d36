// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// LabelStyle is a page-numbering style for a label range.
type LabelStyle string

const (
	// RomanLower numbers pages i, ii, iii, ...
	RomanLower LabelStyle = "roman"
	// RomanUpper numbers pages I, II, III, ...
	RomanUpper LabelStyle = "Roman"
	// Decimal numbers pages 1, 2, 3, ...
	Decimal LabelStyle = "decimal"
)

// PDFName returns the PDF number-tree style name for s
// ("r", "R", or "D" per the /PageLabels /S entry).
func (s LabelStyle) PDFName() (string, error) {
	switch s {
	case RomanLower:
		return "r", nil
	case RomanUpper:
		return "R", nil
	case Decimal:
		return "D", nil
	}
	return "", fmt.Errorf("unknown label style %q", string(s))
}

// Valid reports whether s is one of the supported styles.
func (s LabelStyle) Valid() bool {
	_, err := s.PDFName()
	return err == nil
}

// LabelRange assigns a numbering style to a run of pages. A range extends
// from Start to the page before the next range's Start, or to the last page
// of the document for the final range.
type LabelRange struct {
	// Start is the 1-based physical page the range begins at.
	Start int `json:"start" yaml:"start"`

	// Style is the numbering style for pages in the range.
	Style LabelStyle `json:"style" yaml:"style"`

	// First is the displayed number of the range's first page (>= 1).
	First int `json:"first" yaml:"first"`

	// Prefix is prepended to every displayed number in the range
	// (e.g. "A-" for appendix pages). Usually empty.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}
