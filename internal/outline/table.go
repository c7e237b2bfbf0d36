// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import "github.com/pdiddy/bookbinder/pkg/types"

// The table below matches the 2004 edition of "Specifying Systems" as
// distributed at lamport.azurewebsites.net/tla/book.html (book-21-07-04.pdf).
// Pages are 1-based physical pages of that file. If the publisher ever
// re-paginates the book, Validate catches the mismatch; there is no
// edition-detection mechanism.
//
// Part and chapter headings span two lines in the book ("Part I" over
// "Getting Started"); titles here merge them into one bookmark.

// introPage is the physical page of the Introduction, where the book's
// Arabic page numbering starts at 1. Pages before it are front matter,
// numbered with Roman numerals.
const introPage = 19

// MainBodyStart returns the physical page where Arabic numbering begins.
func MainBodyStart() int {
	return introPage
}

// BookTOC returns the table of contents for the book. Callers must treat
// the returned tree as read-only.
func BookTOC() []types.OutlineEntry {
	return bookTOC
}

var bookTOC = []types.OutlineEntry{
	{Title: "Contents", Page: 9},
	{Title: "Preface", Page: 13},
	{Title: "Acknowledgments", Page: 17},
	{Title: "Introduction", Page: introPage},
	{Title: "Part I - Getting Started", Page: 23, Kids: []types.OutlineEntry{
		{Title: "Chapter 1 - A Little Simple Math", Page: 27, Kids: []types.OutlineEntry{
			{Title: "1.1 Propositional Logic", Page: 27},
			{Title: "1.2 Sets", Page: 29},
			{Title: "1.3 Predicate Logic", Page: 30},
			{Title: "1.4 Formulas and Language", Page: 32},
		}},
		{Title: "Chapter 2 - Specifying a Simple Clock", Page: 33, Kids: []types.OutlineEntry{
			{Title: "2.1 Behaviors", Page: 33},
			{Title: "2.2 An Hour Clock", Page: 34},
			{Title: "2.3 A Closer Look at the Specification", Page: 37},
			{Title: "2.4 The Specification in TLA+", Page: 39},
			{Title: "2.5 An Alternative Specification", Page: 41},
		}},
		{Title: "Chapter 3 - An Asynchronous Interface", Page: 43},
		{Title: "Chapter 4 - A FIFO", Page: 53},
		{Title: "Chapter 5 - A Caching Memory", Page: 61},
		{Title: "Chapter 6 - Some More Math", Page: 83},
		{Title: "Chapter 7 - Writing a Specification: Some Advice", Page: 93},
	}},
	{Title: "Part II - More Advanced Topics", Page: 103, Kids: []types.OutlineEntry{
		{Title: "Chapter 8 - Liveness and Fairness", Page: 105},
		{Title: "Chapter 9 - Real Time", Page: 127},
		{Title: "Chapter 10 - Composing Specifications", Page: 143},
		{Title: "Chapter 11 - Advanced Examples", Page: 171},
	}},
	{Title: "Part III - The Tools", Page: 205, Kids: []types.OutlineEntry{
		{Title: "Chapter 12 - The Syntactic Analyzer", Page: 207},
		{Title: "Chapter 13 - The TLATeX Typesetter", Page: 213},
		{Title: "Chapter 14 - The TLC Model Checker", Page: 219},
	}},
	{Title: "Part IV - The TLA+ Language", Page: 269, Kids: []types.OutlineEntry{
		{Title: "Chapter 15 - The Syntax of TLA+", Page: 271},
		{Title: "Chapter 16 - The Operators of TLA+", Page: 285},
		{Title: "Chapter 17 - The Meaning of a Module", Page: 313},
		{Title: "Chapter 18 - The Standard Modules", Page: 335},
	}},
	{Title: "Index", Page: 353},
}
