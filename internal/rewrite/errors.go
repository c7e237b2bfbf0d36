// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import "fmt"

// OpenError reports an input document that is missing, unreadable, or not
// a parseable PDF.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// OutlineError reports an outline that cannot be inserted, most commonly
// because a target page lies beyond the document end. That means the
// table no longer matches the document's pagination.
type OutlineError struct {
	Err error
}

func (e *OutlineError) Error() string {
	return fmt.Sprintf("inserting outline: %v", e.Err)
}

func (e *OutlineError) Unwrap() error { return e.Err }

// WriteError reports an output document that cannot be created or
// serialized.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
