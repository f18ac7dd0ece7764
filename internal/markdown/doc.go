// Package markdown extracts shell commands from the code blocks of a markdown
// document.
//
// Extraction is split in two halves. [Events] parses a document with goldmark
// and flattens its block structure into a stream of [Event] values: a start
// and end event around every code block, and text events for code lines and
// inline prose. [Extract] consumes any such stream, keeps the text found
// between start and end events, and splits it into one command per line.
// Keeping the halves apart lets callers feed synthetic streams to [Extract].
//
// Documents may open with a YAML front matter block. [SplitFrontMatter]
// separates it from the body so its content is never mistaken for markdown.
//
// Example usage:
//
//	fm, body, err := markdown.SplitFrontMatter(source)
//	if err != nil {
//	    return err
//	}
//
//	commands, err := markdown.Commands(body, "sh", "bash")
//	if err != nil {
//	    return err
//	}
package markdown
