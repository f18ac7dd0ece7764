package markdown

import (
	"fmt"
	"iter"
	"strings"
)

// Extracts commands from an event stream.
//
// Text events between a start and an end event are concatenated verbatim;
// text outside code blocks is ignored. The result is the concatenation split
// on line boundaries, in document order. Blank lines are kept as empty
// strings.
//
// A start event received while already inside a code block fails with
// [ErrParse] and no commands are returned.
func Extract(events iter.Seq[Event]) ([]string, error) {
	var code strings.Builder
	inside := false

	for ev := range events {
		switch ev.Kind {
		case EventStart:
			if inside {
				return nil, fmt.Errorf("%w: nested code block", ErrParse)
			}
			inside = true
		case EventEnd:
			inside = false
		case EventText:
			if inside {
				code.WriteString(ev.Text)
			}
		}
	}

	return splitLines(code.String()), nil
}

// Parses a markdown document and extracts its commands.
//
// See [Events] for the meaning of langs.
func Commands(source []byte, langs ...string) ([]string, error) {
	return Extract(Events(source, langs...))
}

// Splits s into lines.
//
// Lines end at "\n", with a preceding "\r" dropped. A trailing terminator does
// not produce an empty final line.
func splitLines(s string) []string {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
	}
	return lines
}
