// unflatten.go regroups a flat event stream into a nested tree.
//
// A single linear pass with an explicit stack recovers the nesting
// structure from paired Start/End markers in O(n) without backtracking.
// The resulting tree is a short-lived intermediate: build.go consumes it
// immediately and it never escapes the package.
package markdown

import (
	"fmt"

	"github.com/ConnorGray/Markdown/markdown/event"
)

// node is one entry in the unflattened event tree: either an atomic event
// (never a Start/End marker; those are consumed structurally) or a nested
// container with the events that occurred between its Start/End pair.
type node struct {
	atom     event.Event // set when this node is atomic
	tag      event.Tag   // set when this node is a container
	children []node
}

func (n node) nested() bool { return n.tag != nil }

// unflatten converts a flat event sequence into a tree of nodes at the
// root nesting level. It returns ErrMalformed for an End marker that does
// not match the innermost open Start, an End with nothing open, an
// unterminated Start, or nesting deeper than MaxDepth.
func unflatten(events []event.Event) ([]node, error) {
	var root []node
	var stack []openFrame

	seq := func() *[]node {
		if len(stack) > 0 {
			return &stack[len(stack)-1].children
		}
		return &root
	}

	for _, ev := range events {
		switch ev := ev.(type) {
		case event.Start:
			if len(stack) >= MaxDepth {
				return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrMalformed, MaxDepth)
			}
			stack = append(stack, openFrame{tag: ev.Tag})
		case event.End:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: End(%s) with no open container", ErrMalformed, ev.Kind)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.tag.Kind() != ev.Kind {
				return nil, fmt.Errorf("%w: End(%s) closes open %s", ErrMalformed, ev.Kind, top.tag.Kind())
			}
			*seq() = append(*seq(), node{tag: top.tag, children: top.children})
		default:
			*seq() = append(*seq(), node{atom: ev})
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unterminated Start(%s)", ErrMalformed, stack[len(stack)-1].tag.Kind())
	}
	return root, nil
}

type openFrame struct {
	tag      event.Tag
	children []node
}
