// errors.go defines sentinel errors for conversion failures.
//
// Design: conversions never silently drop content. A construct this module
// does not handle, or an event stream that violates the structural
// contract, aborts the whole conversion with an error wrapping one of
// these sentinels; callers select on them with errors.Is.
package markdown

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports an event stream that violates the structural
	// contract: mismatched Start/End markers, unterminated nesting, a
	// table without a head row, nesting deeper than MaxDepth, and so on.
	ErrMalformed = errors.New("malformed event stream")

	// ErrUnsupported reports an input construct this module recognizes
	// but does not convert: raw HTML, task list markers, footnote
	// references, math spans.
	ErrUnsupported = errors.New("unsupported construct")
)

// MaxDepth is the maximum container nesting depth accepted when
// unflattening an event stream. Nesting depth is controlled by the input
// document, so it is bounded to keep recursion over the resulting tree
// bounded as well.
const MaxDepth = 64

// InlineError is returned by ParseInline when the input parses to
// something other than a single trivial inline. It carries the full
// parsed document so the caller can decide what to do with it.
type InlineError struct {
	AST []Block
}

func (e *InlineError) Error() string {
	return fmt.Sprintf("input is not a simple inline (parsed to %d blocks)", len(e.AST))
}
