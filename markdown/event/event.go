// Package event defines the flat parse-event representation of a Markdown
// document: atomic content events plus paired Start/End structural markers.
//
// An event stream is what a streaming Markdown tokenizer produces. The
// markdown package restructures such streams into an AST and serializes
// ASTs back into streams; this package only defines the vocabulary both
// sides share.
//
// Design: Event and Tag are closed interface unions. Every variant is a
// small value type with an unexported marker method, so a type switch over
// the known variants is exhaustive by construction and new variants cannot
// be introduced outside this package.
package event

// Event is one unit of a flat tokenizer output stream: either atomic
// content, or a Start/End marker delimiting a structural container.
type Event interface {
	isEvent()
}

// Start opens a structural container identified by Tag.
type Start struct {
	Tag Tag
}

// End closes the innermost open container. It carries only the tag kind:
// the closing form of a tag is derived from the opening tag's identity and
// repeats none of its payload.
type End struct {
	Kind Kind
}

// Text is a run of plain textual content.
type Text string

// Code is an inline code span.
type Code string

// SoftBreak is a soft line break inside a paragraph.
type SoftBreak struct{}

// HardBreak is a hard line break inside a paragraph.
type HardBreak struct{}

// Rule is a thematic break.
type Rule struct{}

// HTML is a block of raw HTML.
type HTML string

// InlineHTML is a raw HTML span inside inline content.
type InlineHTML string

// TaskListMarker is a task list item checkbox; true when checked.
type TaskListMarker bool

// FootnoteReference is a reference to a footnote by label.
type FootnoteReference string

// Math is an inline or display math span.
type Math struct {
	Display bool
	Text    string
}

func (Start) isEvent()             {}
func (End) isEvent()               {}
func (Text) isEvent()              {}
func (Code) isEvent()              {}
func (SoftBreak) isEvent()         {}
func (HardBreak) isEvent()         {}
func (Rule) isEvent()              {}
func (HTML) isEvent()              {}
func (InlineHTML) isEvent()        {}
func (TaskListMarker) isEvent()    {}
func (FootnoteReference) isEvent() {}
func (Math) isEvent()              {}
