// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagelabel builds and installs the /PageLabels number tree that
// maps physical pages to displayed page numbers. pdfcpu has no high-level
// page-label API, so the tree is written into the document catalog with
// pdfcpu's low-level object types.
package pagelabel

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/bookbinder/pkg/types"
)

// Build returns the label ranges for a book whose main body starts at
// mainBodyStart: Roman numerals for the front matter, Arabic numbering
// restarting at 1 from mainBodyStart on. A book with no front matter
// (mainBodyStart == 1) gets a single Arabic range.
func Build(mainBodyStart int) []types.LabelRange {
	if mainBodyStart <= 1 {
		return []types.LabelRange{
			{Start: 1, Style: types.Decimal, First: 1},
		}
	}
	return []types.LabelRange{
		{Start: 1, Style: types.RomanLower, First: 1},
		{Start: mainBodyStart, Style: types.Decimal, First: 1},
	}
}

// Validate checks that the ranges are well formed and jointly cover the
// whole document: the first range starts at page 1, starts are strictly
// ascending and within the page count, styles are known, and displayed
// numbers start at 1 or above.
func Validate(ranges []types.LabelRange, pageCount int) error {
	if len(ranges) == 0 {
		return fmt.Errorf("no label ranges")
	}
	if ranges[0].Start != 1 {
		return fmt.Errorf("first label range starts at page %d, must start at page 1", ranges[0].Start)
	}
	prev := 0
	for _, r := range ranges {
		if !r.Style.Valid() {
			return fmt.Errorf("label range at page %d has unknown style %q", r.Start, r.Style)
		}
		if r.First < 1 {
			return fmt.Errorf("label range at page %d starts numbering at %d, must be >= 1", r.Start, r.First)
		}
		if r.Start <= prev {
			return fmt.Errorf("label range starts must be strictly ascending: %d follows %d", r.Start, prev)
		}
		if r.Start > pageCount {
			return fmt.Errorf("label range starts at page %d beyond document end (%d pages)", r.Start, pageCount)
		}
		prev = r.Start
	}
	return nil
}

// Length returns the number of pages covered by ranges[i] in a document
// of pageCount pages.
func Length(ranges []types.LabelRange, i, pageCount int) int {
	end := pageCount
	if i+1 < len(ranges) {
		end = ranges[i+1].Start - 1
	}
	return end - ranges[i].Start + 1
}

// Apply installs the ranges as the document's /PageLabels number tree,
// replacing any existing page-label definitions. The tree is written as a
// single root node holding the /Nums array directly, which the PDF spec
// permits for small trees.
func Apply(ctx *model.Context, ranges []types.LabelRange) error {
	if err := Validate(ranges, ctx.PageCount); err != nil {
		return err
	}

	nums := pdftypes.Array{}
	for _, r := range ranges {
		style, err := r.Style.PDFName()
		if err != nil {
			return err
		}
		d := pdftypes.Dict{"S": pdftypes.Name(style)}
		if r.First != 1 {
			d["St"] = pdftypes.Integer(r.First)
		}
		if r.Prefix != "" {
			d["P"] = pdftypes.StringLiteral(r.Prefix)
		}
		// /PageLabels keys are 0-based page indices.
		nums = append(nums, pdftypes.Integer(r.Start-1), d)
	}

	ir, err := ctx.IndRefForNewObject(pdftypes.Dict{"Nums": nums})
	if err != nil {
		return fmt.Errorf("allocating page-label tree: %w", err)
	}

	rootDict, err := ctx.Catalog()
	if err != nil {
		return fmt.Errorf("resolving document catalog: %w", err)
	}
	rootDict["PageLabels"] = *ir

	return nil
}

// Read returns the document's page-label ranges, or nil if the document
// defines none. Only flat number trees with the styles Build produces are
// decoded; anything else is reported as an error.
func Read(ctx *model.Context) ([]types.LabelRange, error) {
	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("resolving document catalog: %w", err)
	}

	obj, found := rootDict.Find("PageLabels")
	if !found {
		return nil, nil
	}
	labelDict, err := ctx.DereferenceDict(obj)
	if err != nil {
		return nil, fmt.Errorf("resolving page-label tree: %w", err)
	}

	numsObj, found := labelDict.Find("Nums")
	if !found {
		return nil, fmt.Errorf("page-label tree has no Nums array")
	}
	numsResolved, err := ctx.Dereference(numsObj)
	if err != nil {
		return nil, fmt.Errorf("resolving Nums array: %w", err)
	}
	nums, ok := numsResolved.(pdftypes.Array)
	if !ok {
		return nil, fmt.Errorf("page-label Nums is %T, want array", numsResolved)
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("page-label Nums has %d elements, want an even count", len(nums))
	}

	var ranges []types.LabelRange
	for i := 0; i < len(nums); i += 2 {
		idxObj, err := ctx.Dereference(nums[i])
		if err != nil {
			return nil, err
		}
		idx, ok := idxObj.(pdftypes.Integer)
		if !ok {
			return nil, fmt.Errorf("page-label key is %T, want integer", idxObj)
		}

		entryObj, err := ctx.Dereference(nums[i+1])
		if err != nil {
			return nil, err
		}
		entry, ok := entryObj.(pdftypes.Dict)
		if !ok {
			return nil, fmt.Errorf("page-label value is %T, want dict", entryObj)
		}

		r := types.LabelRange{Start: int(idx) + 1, First: 1}
		if s, found := entry.Find("S"); found {
			name, ok := s.(pdftypes.Name)
			if !ok {
				return nil, fmt.Errorf("page-label style is %T, want name", s)
			}
			switch string(name) {
			case "r":
				r.Style = types.RomanLower
			case "R":
				r.Style = types.RomanUpper
			case "D":
				r.Style = types.Decimal
			default:
				return nil, fmt.Errorf("unsupported page-label style %q", string(name))
			}
		}
		if st, found := entry.Find("St"); found {
			n, ok := st.(pdftypes.Integer)
			if !ok {
				return nil, fmt.Errorf("page-label start value is %T, want integer", st)
			}
			r.First = int(n)
		}
		if p, found := entry.Find("P"); found {
			if lit, ok := p.(pdftypes.StringLiteral); ok {
				r.Prefix = string(lit)
			}
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
