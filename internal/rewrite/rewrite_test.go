// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookbinder/internal/outline"
	"github.com/pdiddy/bookbinder/internal/pagelabel"
	"github.com/pdiddy/bookbinder/pkg/types"
)

// writeTestPDF writes a minimal n-page PDF to path: a catalog, a flat page
// tree, and empty letter-sized pages, with a hand-computed xref table.
func writeTestPDF(t *testing.T, path string, pages int) {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	add := func(s string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(s)
	}

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	buf.WriteString("%PDF-1.4\n")
	add("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	add(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [ %s ] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		add(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", i+3))
	}

	xref := buf.Len()
	size := pages + 3
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", size)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xref)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestRewrite(t *testing.T) {
	const pages = 400 // larger than the deepest table entry

	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writeTestPDF(t, input, pages)

	var log bytes.Buffer
	output, err := Rewrite(Options{}, input, &log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "book-bookmarked.pdf"), output)
	assert.Contains(t, log.String(), "wrote:")

	s, err := Inspect(output)
	require.NoError(t, err)

	// The transformation never adds or removes pages.
	assert.Equal(t, pages, s.PageCount)

	// Every table entry survives with its target page unchanged.
	assert.Equal(t, outline.Count(outline.BookTOC()), s.OutlineCount())
	assert.Equal(t, outline.BookTOC(), s.Outline)

	// Roman front matter, then Arabic from the Introduction, covering
	// the whole document between them.
	require.Len(t, s.Labels, 2)
	assert.Equal(t, 1, s.Labels[0].Start)
	assert.Equal(t, types.RomanLower, s.Labels[0].Style)
	assert.Equal(t, outline.MainBodyStart(), s.Labels[1].Start)
	assert.Equal(t, types.Decimal, s.Labels[1].Style)
	assert.Equal(t, 1, s.Labels[1].First)
	assert.Equal(t,
		s.Labels[0].Start+pagelabel.Length(s.Labels, 0, s.PageCount),
		s.Labels[1].Start)
}

func TestRewriteIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writeTestPDF(t, input, 400)

	var log bytes.Buffer
	first, err := Rewrite(Options{Output: filepath.Join(dir, "a.pdf")}, input, &log)
	require.NoError(t, err)
	second, err := Rewrite(Options{Output: filepath.Join(dir, "b.pdf")}, input, &log)
	require.NoError(t, err)

	sa, err := Inspect(first)
	require.NoError(t, err)
	sb, err := Inspect(second)
	require.NoError(t, err)

	assert.Equal(t, sa.Outline, sb.Outline)
	assert.Equal(t, sa.Labels, sb.Labels)
	assert.Equal(t, sa.PageCount, sb.PageCount)
}

func TestRewriteTooFewPages(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "book.pdf")
	writeTestPDF(t, input, 10) // far fewer pages than the table expects

	var log bytes.Buffer
	_, err := Rewrite(Options{}, input, &log)

	var oe *OutlineError
	require.ErrorAs(t, err, &oe)
	assert.Contains(t, err.Error(), "beyond document end")

	// No output file on failure.
	_, statErr := os.Stat(filepath.Join(dir, "book-bookmarked.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRewriteMissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "absent.pdf")

	var log bytes.Buffer
	_, err := Rewrite(Options{}, input, &log)

	var oe *OpenError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, input, oe.Path)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRewriteNotAPDF(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "junk.pdf")
	require.NoError(t, os.WriteFile(input, []byte("not a pdf"), 0o644))

	var log bytes.Buffer
	_, err := Rewrite(Options{}, input, &log)

	var oe *OpenError
	require.ErrorAs(t, err, &oe)
}

func TestRewriteCustomTOC(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "draft.pdf")
	writeTestPDF(t, input, 10)

	opts := Options{
		TOC: []types.OutlineEntry{
			{Title: "Introduction", Page: 3},
			{Title: "Chapter 1", Page: 5, Kids: []types.OutlineEntry{
				{Title: "1.1 Basics", Page: 5},
			}},
		},
		MainBodyStart: 3,
	}

	var log bytes.Buffer
	output, err := Rewrite(opts, input, &log)
	require.NoError(t, err)

	s, err := Inspect(output)
	require.NoError(t, err)
	assert.Equal(t, 3, s.OutlineCount())
	require.Len(t, s.Labels, 2)
	assert.Equal(t, 3, s.Labels[1].Start)
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		input string
		want  string
	}{
		{
			name:  "default suffix",
			input: "book.pdf",
			want:  "book-bookmarked.pdf",
		},
		{
			name:  "custom suffix",
			opts:  Options{Suffix: "-toc"},
			input: "book.pdf",
			want:  "book-toc.pdf",
		},
		{
			name:  "explicit output wins",
			opts:  Options{Output: "out/final.pdf", Suffix: "-toc"},
			input: "book.pdf",
			want:  "out/final.pdf",
		},
		{
			name:  "input without extension",
			input: "book",
			want:  "book-bookmarked",
		},
		{
			name:  "input with directory",
			input: filepath.Join("some", "dir", "book.pdf"),
			want:  filepath.Join("some", "dir", "book-bookmarked.pdf"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.DeriveOutputPath(tt.input))
		})
	}
}
