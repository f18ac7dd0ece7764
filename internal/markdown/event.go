package markdown

import (
	"iter"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kind of a markdown [Event].
type EventKind int

const (
	EventStart EventKind = iota // A code block begins.
	EventEnd                    // A code block ends.
	EventText                   // Literal text, inside or outside a code block.
)

// Returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventText:
		return "text"
	default:
		return "unknown"
	}
}

// A structural event in a markdown document.
type Event struct {
	Kind EventKind // Event kind.
	Lang string    // Info-string language of the code block (start and end events only).
	Text string    // Verbatim text (text events only).
}

// Returns the event stream of a markdown document.
//
// Every fenced or indented code block yields a start event, one text event per
// line (line terminator included) and an end event. Inline text outside code
// blocks yields text events as well. When langs is non-empty, only fenced
// blocks whose language is listed produce events; indented blocks and fences
// without a language are skipped entirely.
//
// Walking stops as soon as the consumer stops iterating.
func Events(source []byte, langs ...string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		doc := goldmark.New().Parser().Parse(text.NewReader(source))

		ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			switch node := n.(type) {
			case *ast.FencedCodeBlock:
				lang := string(node.Language(source))
				if len(langs) > 0 && !slices.Contains(langs, lang) {
					return ast.WalkSkipChildren, nil
				}
				return emitBlock(yield, node, lang, source, entering), nil

			case *ast.CodeBlock:
				if len(langs) > 0 {
					return ast.WalkSkipChildren, nil
				}
				return emitBlock(yield, node, "", source, entering), nil

			case *ast.Text:
				if entering && !yield(Event{Kind: EventText, Text: string(node.Segment.Value(source))}) {
					return ast.WalkStop, nil
				}
			}
			return ast.WalkContinue, nil
		})
	}
}

// Yields the events of a single code block.
//
// On entry the start event and the block's lines are yielded; on exit the
// end event. Returns [ast.WalkStop] once the consumer stops iterating.
func emitBlock(yield func(Event) bool, block ast.Node, lang string, source []byte, entering bool) ast.WalkStatus {
	if !entering {
		if !yield(Event{Kind: EventEnd, Lang: lang}) {
			return ast.WalkStop
		}
		return ast.WalkContinue
	}

	if !yield(Event{Kind: EventStart, Lang: lang}) {
		return ast.WalkStop
	}

	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if !yield(Event{Kind: EventText, Text: string(seg.Value(source))}) {
			return ast.WalkStop
		}
	}

	return ast.WalkContinue
}
