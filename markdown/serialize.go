// serialize.go converts AST blocks back into a flat event stream.
//
// The emitted stream is structurally valid by construction: every Start is
// paired with an End at the same depth by the wrap primitive. The ordering
// reproduces exactly what tokenizing the equivalent source would emit, so
// FromEvents followed by ToEvents is the identity on well-formed streams.
package markdown

import "github.com/ConnorGray/Markdown/markdown/event"

// ToEvents converts AST blocks into a flat event sequence.
func ToEvents(blocks []Block) []event.Event {
	s := &serializer{}
	for _, b := range blocks {
		s.block(b)
	}
	return s.events
}

type serializer struct {
	events []event.Event
}

// wrap emits Start(tag), the children produced by emit, then the matching
// End. The closing marker is derived from the opening tag's kind.
func (s *serializer) wrap(tag event.Tag, emit func()) {
	s.events = append(s.events, event.Start{Tag: tag})
	emit()
	s.events = append(s.events, event.End{Kind: tag.Kind()})
}

func (s *serializer) block(b Block) {
	switch b := b.(type) {
	case Paragraph:
		s.wrap(event.Paragraph{}, func() {
			s.inlines(Inlines(b))
		})
	case List:
		s.wrap(event.List{Start: b.Start}, func() {
			for _, item := range b.Items {
				s.wrap(event.Item{}, func() {
					// A single-item list whose item is one paragraph is
					// tokenized without a Paragraph wrapper inside the
					// item; mirror that asymmetry for round-trip
					// fidelity.
					if len(b.Items) == 1 && len(item) == 1 {
						if para, ok := item[0].(Paragraph); ok {
							s.inlines(Inlines(para))
							return
						}
					}
					for _, block := range item {
						s.block(block)
					}
				})
			}
		})
	case Heading:
		s.wrap(event.Heading{Level: b.Level}, func() {
			s.inlines(b.Inlines)
		})
	case CodeBlock:
		s.wrap(event.CodeBlock{CodeKind: b.Kind}, func() {
			if b.Code != "" {
				s.events = append(s.events, event.Text(b.Code))
			}
		})
	case BlockQuote:
		s.wrap(event.BlockQuote{QuoteKind: b.Kind}, func() {
			for _, block := range b.Blocks {
				s.block(block)
			}
		})
	case Table:
		// Event framing of a table:
		//
		//   Table > TableHead > TableCell...
		//         > TableRow  > TableCell...
		s.wrap(event.Table{Alignments: b.Alignments}, func() {
			s.wrap(event.TableHead{}, func() {
				for _, header := range b.Headers {
					s.cell(header)
				}
			})
			for _, row := range b.Rows {
				s.wrap(event.TableRow{}, func() {
					for _, c := range row {
						s.cell(c)
					}
				})
			}
		})
	case Rule:
		s.events = append(s.events, event.Rule{})
	}
}

func (s *serializer) cell(content Inlines) {
	s.wrap(event.TableCell{}, func() {
		s.inlines(content)
	})
}

func (s *serializer) inlines(spans Inlines) {
	for _, span := range spans {
		switch span := span.(type) {
		case Text:
			s.events = append(s.events, event.Text(span))
		case Code:
			s.events = append(s.events, event.Code(span))
		case Emphasis:
			s.wrap(event.Emphasis{}, func() {
				s.inlines(Inlines(span))
			})
		case Strong:
			s.wrap(event.Strong{}, func() {
				s.inlines(Inlines(span))
			})
		case Strikethrough:
			s.wrap(event.Strikethrough{}, func() {
				s.inlines(Inlines(span))
			})
		case Link:
			tag := event.Link{Type: span.Type, Dest: span.Dest, Title: span.Title, ID: span.ID}
			s.wrap(tag, func() {
				s.inlines(span.Content)
			})
		case Image:
			tag := event.Image{Type: span.Type, Dest: span.Dest, Title: span.Title, ID: span.ID}
			s.wrap(tag, func() {
				s.inlines(span.Description)
			})
		case SoftBreak:
			s.events = append(s.events, event.SoftBreak{})
		case HardBreak:
			s.events = append(s.events, event.HardBreak{})
		}
	}
}
